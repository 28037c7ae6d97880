// Package logger builds *slog.Logger values from functional options and
// provides attribute helpers that keep key names consistent.
//
// Records go to stderr as text at warn level unless configured otherwise, so
// a command can print its results on stdout without interleaving logs.
//
// # Usage
//
//	import "github.com/dmitrymomot/bullshit/pkg/logger"
//
//	level, err := logger.ParseLevel(cfg.LogLevel)
//	if err != nil {
//	    return err
//	}
//	log := logger.New(
//	    logger.WithLevel(level),
//	    logger.WithVerbose(verbose),
//	    logger.WithAttr(logger.Component("cli")),
//	)
//	log.Debug("dictionary loaded", logger.Path(path), logger.Count(n))
//
// # Configuration
//
//   • WithFormat – output format, text or json.
//   • WithLevel / WithVerbose – minimum level.
//   • WithOutput – destination writer.
//   • WithAttr – static attributes for every record.
//
// SetAsDefault installs a logger as the slog default, so packages logging
// through slog directly share its output.
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally.
package logger
