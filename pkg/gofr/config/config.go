// Package config reads application settings from .env files and the process environment.
package config

// Config is the read side of the application configuration.
type Config interface {
	Get(string) string
	GetOrDefault(string, string) string
}
