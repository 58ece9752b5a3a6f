package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultFileName         = ".env"
	defaultOverrideFileName = ".local.env"
)

// EnvLoader serves configuration from the process environment after merging the .env files of a
// folder into it. Variables already set in the environment always win over the files.
type EnvLoader struct {
	logger logger
}

type logger interface {
	Infof(format string, a ...any)
	Debugf(format string, a ...any)
	Fatalf(format string, a ...any)
}

// envFile is one file of the merge chain. Files later in the chain override earlier ones.
type envFile struct {
	path     string
	optional bool
}

// NewEnvFile loads, in increasing precedence, .env, .local.env and .<APP_ENV>.env from configFolder.
func NewEnvFile(configFolder string, logger logger) Config {
	conf := &EnvLoader{logger: logger}
	conf.read(configFolder)

	return conf
}

func (e *EnvLoader) read(folder string) {
	initialEnv := make(map[string]bool)

	for _, envVar := range os.Environ() {
		key, _, _ := strings.Cut(envVar, "=")
		initialEnv[key] = true
	}

	envMap := make(map[string]string)

	for _, f := range chain(folder, os.Getenv("APP_ENV")) {
		content, err := godotenv.Read(f.path)

		switch {
		case err == nil:
			for k, v := range content {
				envMap[k] = v
			}

			e.logger.Infof("loaded config from file: %v", f.path)
		case errors.Is(err, fs.ErrNotExist):
			e.logger.Debugf("config file %v not found", f.path)
		case !f.optional:
			e.logger.Fatalf("failed to load config from file: %v, err: %v", f.path, err)
		}
	}

	for key, value := range envMap {
		if !initialEnv[key] {
			os.Setenv(key, value)
		}
	}
}

func chain(folder, appEnv string) []envFile {
	files := []envFile{
		{path: filepath.Join(folder, defaultFileName)},
		{path: filepath.Join(folder, defaultOverrideFileName), optional: true},
	}

	if appEnv != "" {
		files = append(files, envFile{path: filepath.Join(folder, fmt.Sprintf(".%s.env", appEnv))})
	}

	return files
}

func (*EnvLoader) Get(key string) string {
	return os.Getenv(key)
}

func (*EnvLoader) GetOrDefault(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultValue
}
