package config

type mockConfig map[string]string

// NewMockConfig returns a Config backed by configMap, for tests. A key present with an empty value
// is returned as is by GetOrDefault.
func NewMockConfig(configMap map[string]string) Config {
	return mockConfig(configMap)
}

func (m mockConfig) Get(key string) string {
	return m[key]
}

func (m mockConfig) GetOrDefault(key, defaultValue string) string {
	if v, ok := m[key]; ok {
		return v
	}

	return defaultValue
}
