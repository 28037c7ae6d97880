// Package config loads configuration structs from environment variables and
// optional .env files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - `.env` in the working directory is read when it exists. A default file
//     that cannot be parsed is skipped and reported through WithLogger.
//     WithEnvFiles replaces it with an explicit list of files that must exist.
//   - Variables set in the process environment win over file values. The
//     process environment is never modified.
//   - Values are parsed into any struct using `env` field tags.
//
// # Usage
//
//	type Config struct {
//	    File      string `env:"BULLSHIT_FILE"`
//	    LogLevel  string `env:"BULLSHIT_LOG_LEVEL" envDefault:"warn"`
//	    LogFormat string `env:"BULLSHIT_LOG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// The package defines sentinel errors that can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrReadingEnvFile` – an env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`.
//
// # Testing
//
// WithEnvironment replaces the process environment with a map, so tests do
// not depend on the variables of the machine running them.
package config
