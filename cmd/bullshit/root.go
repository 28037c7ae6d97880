package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bullshit/pkg/config"
	"github.com/dmitrymomot/bullshit/pkg/lexicon"
	"github.com/dmitrymomot/bullshit/pkg/locate"
	"github.com/dmitrymomot/bullshit/pkg/logger"
	"github.com/dmitrymomot/bullshit/pkg/sentence"
)

const description = `Generate one or more nonsense phrases by randomly combining words and
phrases from a dictionary file.

Each dictionary line holds a word and an optional tag:
  *  protocol     $  ending     %  suffix
  ^  opening      |  word that needs an ending
Untagged words are generic filler. Files ending in .yaml or .yml are read
as YAML with one list per category, and files starting with a "%name"
header use the sectioned format.`

// envPrefix namespaces the variables read into envConfig.
const envPrefix = "BULLSHIT_"

// envConfig holds settings taken from the environment and .env.
type envConfig struct {
	File      string `env:"FILE"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// Dump formats accepted by --output.
const (
	outputText     = "text"
	outputYAML     = "yaml"
	outputSections = "sections"
)

var (
	errInvalidCount  = errors.New("count must be a non-negative integer")
	errInvalidOutput = errors.New("output must be text, yaml or sections")
)

type flags struct {
	file      string
	sort      bool
	output    string
	verbose   bool
	skipEmpty bool
}

// app wires the command to its environment. Tests replace the writers and
// the config and lookup options.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	configOpts []config.Option
	locateOpts []locate.Option
	source     sentence.Source
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

// run executes the command and returns the process exit code. Failures are
// reported as a single line on stderr.
func (a *app) run(args []string) int {
	if args == nil {
		// cobra reads os.Args when given nil
		args = []string{}
	}
	cmd := a.command()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(a.stderr, "error: %s\n", oneLine(err))
		return 1
	}
	return 0
}

// oneLine flattens multi-line error text, such as YAML decoder reports.
func oneLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}

func (a *app) command() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "bullshit [n]",
		Short:         "Generate corporate jargon sentences",
		Long:          description,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.execute(f, args)
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "dictionary file (default: $BULLSHIT_FILE or ~/.bullshit)")
	fl.BoolVar(&f.sort, "sort", false, "print the dictionary sorted and exit")
	fl.StringVarP(&f.output, "output", "o", outputText, "format for --sort: text, yaml or sections")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log debug details to stderr")
	fl.BoolVar(&f.skipEmpty, "skip-empty", false, "leave out parts whose category is empty instead of failing")
	return cmd
}

func (a *app) execute(f flags, args []string) error {
	count, err := parseCount(args)
	if err != nil {
		return err
	}

	// config warnings are reported before the configured logger exists
	configOpts := append([]config.Option{
		config.WithPrefix(envPrefix),
		config.WithLogger(logger.New(logger.WithOutput(a.stderr))),
	}, a.configOpts...)

	var cfg envConfig
	if err := config.Load(&cfg, configOpts...); err != nil {
		return err
	}

	log, err := a.newLogger(cfg, f.verbose)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	path, err := locate.Resolve(f.file, cfg.File, a.locateOpts...)
	if err != nil {
		return err
	}

	lex, err := lexicon.Load(path)
	if err != nil {
		return err
	}
	log.Debug("dictionary loaded", logger.Path(path), categorySizes(lex))

	if f.sort {
		return dump(a.stdout, lex, f.output)
	}

	opts := []sentence.Option{sentence.WithLogger(log)}
	if a.source != nil {
		opts = append(opts, sentence.WithSource(a.source))
	}
	if f.skipEmpty {
		opts = append(opts, sentence.WithSkipEmpty())
	}
	return sentence.New(lex, opts...).Write(a.stdout, count)
}

func (a *app) newLogger(cfg envConfig, verbose bool) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithOutput(a.stderr),
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithVerbose(verbose),
		logger.WithAttr(logger.Component("bullshit")),
	), nil
}

func parseCount(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidCount, args[0])
	}
	return n, nil
}

func dump(w io.Writer, lex *lexicon.Lexicon, format string) error {
	switch format {
	case outputText:
		return lexicon.WriteText(w, lex)
	case outputYAML:
		return lexicon.WriteYAML(w, lex)
	case outputSections:
		return lexicon.WriteSections(w, lex)
	default:
		return fmt.Errorf("%w: %q", errInvalidOutput, format)
	}
}

func categorySizes(lex *lexicon.Lexicon) slog.Attr {
	attrs := make([]any, 0, len(lexicon.Categories()))
	for _, c := range lexicon.Categories() {
		attrs = append(attrs, slog.Int(c.String(), lex.Len(c)))
	}
	return slog.Group("categories", attrs...)
}
