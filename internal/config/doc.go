// Package config handles configuration loading, parsing, and validation
// from environment variables, an optional .env file and an optional
// config.yaml. It provides type-safe access to the settings needed by the
// HTTP server, the model dispatch core and the CLI while keeping
// configuration details separate from the documentation logic.
package config
