// Package config loads configuration for programs built on the SDK from
// YAML files and the environment, with .env support. The SDK packages
// themselves take explicit Config structs; this loader exists for example
// apps and tools that want file/env driven setup.
package config
