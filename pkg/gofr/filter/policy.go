package filter

import (
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"gofr.dev/filterable/pkg/gofr/config"
)

const (
	configAllowAll  = "FILTER_ALLOW_ALL"
	configAllowList = "FILTER_ALLOW_LIST"
)

// Policy decides which fields may be filtered on. The zero value denies every field.
type Policy struct {
	// AllowAll lets every field through and makes AllowList irrelevant.
	AllowAll bool `mapstructure:"allowAll"`
	// AllowList names the fields that may be filtered when AllowAll is false.
	AllowList []string `mapstructure:"allowList"`
}

// Allows reports whether field passes the policy.
func (p Policy) Allows(field string) bool {
	if p.AllowAll {
		return true
	}

	for _, f := range p.AllowList {
		if f == field {
			return true
		}
	}

	return false
}

// PolicyFromConfig reads FILTER_ALLOW_ALL and FILTER_ALLOW_LIST (comma separated).
// An unparsable FILTER_ALLOW_ALL counts as false.
func PolicyFromConfig(cfg config.Config) Policy {
	allowAll, _ := strconv.ParseBool(cfg.GetOrDefault(configAllowAll, "false"))

	var allowList []string

	for _, f := range strings.Split(cfg.Get(configAllowList), ",") {
		if f = strings.TrimSpace(f); f != "" {
			allowList = append(allowList, f)
		}
	}

	return Policy{AllowAll: allowAll, AllowList: allowList}
}

// DecodePolicy builds a Policy from component options such as
//
//	map[string]any{"allowAll": false, "allowList": []string{"location", "type"}}
//
// Strings are accepted for both keys ("true", "location,type"). Unknown keys are an error.
func DecodePolicy(options map[string]any) (Policy, error) {
	var p Policy

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &p,
	})
	if err != nil {
		return Policy{}, err
	}

	if err := decoder.Decode(options); err != nil {
		return Policy{}, err
	}

	return p, nil
}
