package locate

import (
	"os"
	"path/filepath"
)

// Env is the environment variable naming the dictionary file.
const Env = "BULLSHIT_FILE"

// Default file names relative to the home and config directories.
const (
	HomeFile   = ".bullshit"
	ConfigFile = "bullshit.txt"
	SystemFile = "/usr/share/bullshit.txt"
)

// Option customises the lookups used by Resolve.
type Option func(*resolver)

// WithHomeDir replaces os.UserHomeDir.
func WithHomeDir(fn func() (string, error)) Option {
	return func(r *resolver) {
		if fn != nil {
			r.homeDir = fn
		}
	}
}

// WithConfigDir replaces os.UserConfigDir.
func WithConfigDir(fn func() (string, error)) Option {
	return func(r *resolver) {
		if fn != nil {
			r.configDir = fn
		}
	}
}

// WithExists replaces the file existence check.
func WithExists(fn func(path string) bool) Option {
	return func(r *resolver) {
		if fn != nil {
			r.exists = fn
		}
	}
}

// WithSystemPath replaces the system-wide fallback. An empty path disables it.
func WithSystemPath(path string) Option {
	return func(r *resolver) {
		r.system = path
	}
}

type resolver struct {
	homeDir   func() (string, error)
	configDir func() (string, error)
	exists    func(string) bool
	system    string
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Resolve picks the dictionary path. override and envValue win when set, in
// that order, without checking the file exists. Otherwise the first existing
// file among ~/.bullshit, <config dir>/bullshit.txt, ~/.config/bullshit.txt
// and the system path is used, and ~/.bullshit is returned when none exists
// so the caller can report it as missing.
func Resolve(override, envValue string, opts ...Option) (string, error) {
	r := &resolver{
		homeDir:   os.UserHomeDir,
		configDir: os.UserConfigDir,
		exists:    fileExists,
		system:    SystemFile,
	}
	for _, opt := range opts {
		opt(r)
	}

	if override != "" {
		return override, nil
	}
	if envValue != "" {
		return envValue, nil
	}

	var candidates []string
	home, homeErr := r.homeDir()
	if homeErr == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, HomeFile))
	}
	if dir, err := r.configDir(); err == nil && dir != "" {
		candidates = append(candidates, filepath.Join(dir, ConfigFile))
	}
	if homeErr == nil && home != "" {
		candidates = append(candidates, filepath.Join(home, ".config", ConfigFile))
	}
	if r.system != "" {
		candidates = append(candidates, r.system)
	}

	for _, path := range candidates {
		if r.exists(path) {
			return path, nil
		}
	}
	if homeErr == nil && home != "" {
		return filepath.Join(home, HomeFile), nil
	}
	return "", ErrConfiguration
}
