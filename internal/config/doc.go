// Package config handles configuration loading, parsing, and validation
// from defaults, an optional YAML file, a .env file and environment
// variables. It provides type-safe access to application settings while
// keeping configuration details separate from business logic.
package config
