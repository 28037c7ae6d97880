package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/bullshit/pkg/logger"
)

// DefaultEnvFile is read when present and no other files are configured.
// It may be absent or belong to another tool, so a file that cannot be read
// or parsed is skipped with a warning.
const DefaultEnvFile = ".env"

// Option configures Load.
type Option func(*loader)

// WithEnvFiles replaces the default .env file. Listed files must exist;
// earlier files win over later ones for the same key.
func WithEnvFiles(files ...string) Option {
	return func(l *loader) {
		l.files = files
		l.required = true
	}
}

// WithPrefix only considers variables starting with prefix. The prefix is
// stripped before matching field tags.
func WithPrefix(prefix string) Option {
	return func(l *loader) {
		l.prefix = prefix
	}
}

// WithLogger sets the logger that reports skipped env files.
func WithLogger(log *slog.Logger) Option {
	return func(l *loader) {
		if log != nil {
			l.log = log
		}
	}
}

// WithEnvironment replaces the process environment as the source of
// variables. Values from env files are still applied underneath.
func WithEnvironment(vars map[string]string) Option {
	return func(l *loader) {
		l.environ = vars
	}
}

type loader struct {
	files    []string
	required bool
	prefix   string
	environ  map[string]string
	log      *slog.Logger
}

// Load parses env files and the environment into v according to its env
// struct tags. Values already present in the environment take precedence
// over values from files, matching godotenv.Load.
//
// Example:
//
//	type Config struct {
//		File     string `env:"BULLSHIT_FILE"`
//		LogLevel string `env:"BULLSHIT_LOG_LEVEL" envDefault:"warn"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	l := &loader{files: []string{DefaultEnvFile}, log: logger.Discard()}
	for _, opt := range opts {
		opt(l)
	}

	vars, err := l.readFiles()
	if err != nil {
		return err
	}

	environ := l.environ
	if environ == nil {
		environ = processEnv()
	}
	for k, val := range environ {
		vars[k] = val
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      l.prefix,
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrParsingConfig, err)
	}
	return nil
}

func (l *loader) readFiles() (map[string]string, error) {
	vars := make(map[string]string)
	for _, file := range l.files {
		values, err := godotenv.Read(file)
		if err != nil {
			if !l.required {
				if !os.IsNotExist(err) {
					l.log.Warn("skipping env file", logger.Path(file), logger.Error(err))
				}
				continue
			}
			return nil, fmt.Errorf("%w: %s: %w", ErrReadingEnvFile, file, err)
		}
		for k, val := range values {
			if _, ok := vars[k]; !ok {
				vars[k] = val
			}
		}
	}
	return vars, nil
}

func processEnv() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, val, ok := strings.Cut(kv, "="); ok {
			vars[k] = val
		}
	}
	return vars
}
