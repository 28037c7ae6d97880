package main

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bullshit/pkg/config"
	"github.com/dmitrymomot/bullshit/pkg/lexicon"
	"github.com/dmitrymomot/bullshit/pkg/locate"
)

const dictionary = `TCP *
UDP *
going-forward $
-ize %
basically ^
leverage |
paradigm
synergy
`

func writeDictionary(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// testApp runs the command with an isolated environment and no home directory.
func testApp(env map[string]string) (*app, *bytes.Buffer, *bytes.Buffer) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	a := newApp(stdout, stderr)
	if env == nil {
		env = map[string]string{}
	}
	a.configOpts = []config.Option{config.WithEnvFiles(), config.WithEnvironment(env)}
	noDir := func() (string, error) { return "", errors.New("unavailable") }
	a.locateOpts = []locate.Option{
		locate.WithHomeDir(noDir),
		locate.WithConfigDir(noDir),
		locate.WithSystemPath(""),
	}
	return a, stdout, stderr
}

func lines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestRunGeneratesSentences(t *testing.T) {
	path := writeDictionary(t, "words.txt", dictionary)

	tests := []struct {
		name  string
		args  []string
		count int
	}{
		{"default count", []string{"-f", path}, 1},
		{"positional count", []string{"-f", path, "5"}, 5},
		{"long flag", []string{"--file", path, "3"}, 3},
		{"zero", []string{"0", "--file", path}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, stdout, stderr := testApp(nil)
			code := a.run(tt.args)

			require.Equal(t, 0, code, "stderr: %s", stderr.String())
			assert.Len(t, lines(stdout.String()), tt.count)
			assert.Empty(t, stderr.String())
			for _, line := range lines(stdout.String()) {
				assert.NotEmpty(t, line)
			}
		})
	}
}

func TestRunUsesEnvironmentFile(t *testing.T) {
	path := writeDictionary(t, "words.txt", dictionary)
	a, stdout, _ := testApp(map[string]string{"BULLSHIT_FILE": path})

	code := a.run([]string{"2"})
	require.Equal(t, 0, code)
	assert.Len(t, lines(stdout.String()), 2)
}

func TestRunMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	a, stdout, stderr := testApp(nil)

	code := a.run([]string{"-f", missing})
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Len(t, lines(stderr.String()), 1)
	assert.Contains(t, stderr.String(), "error: dictionary file not found")
	assert.Contains(t, stderr.String(), missing)
}

func TestRunReportsFailuresOnOneLine(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want string
	}{
		{
			name: "directory instead of file",
			path: func(t *testing.T) string { return t.TempDir() },
			want: "error: failed to read dictionary",
		},
		{
			name: "yaml type mismatch",
			path: func(t *testing.T) string {
				return writeDictionary(t, "bad.yaml", "words:\n  cloud: edge\n")
			},
			want: "error: " + lexicon.ErrMalformedEntry.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, stdout, stderr := testApp(nil)

			code := a.run([]string{"-f", tt.path(t)})
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout.String())
			assert.Len(t, lines(stderr.String()), 1)
			assert.True(t, strings.HasPrefix(stderr.String(), tt.want), stderr.String())
		})
	}
}

func TestRunSkipsBrokenDefaultEnvFile(t *testing.T) {
	path := writeDictionary(t, "words.txt", dictionary)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultEnvFile), []byte("export FOO bar baz\n"), 0o644))
	t.Chdir(dir)

	a, stdout, stderr := testApp(nil)
	a.configOpts = []config.Option{config.WithEnvironment(map[string]string{})}

	code := a.run([]string{"-f", path, "2"})
	require.Equal(t, 0, code, stderr.String())
	assert.Len(t, lines(stdout.String()), 2)
	assert.Contains(t, stderr.String(), "skipping env file")
	assert.NotContains(t, stderr.String(), "error:")
}

func TestRunWithoutConfiguration(t *testing.T) {
	a, stdout, stderr := testApp(nil)

	code := a.run(nil)
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), locate.ErrConfiguration.Error())
}

func TestRunMalformedDictionary(t *testing.T) {
	path := writeDictionary(t, "bad.txt", "one two three\n")
	a, stdout, stderr := testApp(nil)

	code := a.run([]string{"-f", path})
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), lexicon.ErrMalformedEntry.Error())
}

func TestRunEmptyCategory(t *testing.T) {
	path := writeDictionary(t, "ends.txt", "finally $\n")

	t.Run("fails by default", func(t *testing.T) {
		a, stdout, stderr := testApp(nil)
		code := a.run([]string{"-f", path, "3"})
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), lexicon.ErrEmptyCategory.Error())
	})

	t.Run("skip-empty prints empty lines", func(t *testing.T) {
		a, stdout, stderr := testApp(nil)
		code := a.run([]string{"-f", path, "--skip-empty", "3"})
		require.Equal(t, 0, code, "stderr: %s", stderr.String())
		assert.Equal(t, 3, strings.Count(stdout.String(), "\n"))
	})
}

func TestRunInvalidArguments(t *testing.T) {
	path := writeDictionary(t, "words.txt", dictionary)

	tests := []struct {
		name string
		args []string
	}{
		{"not a number", []string{"-f", path, "many"}},
		{"negative", []string{"-f", path, "--", "-2"}},
		{"too many args", []string{"-f", path, "1", "2"}},
		{"unknown flag", []string{"-f", path, "--loud"}},
		{"bad output", []string{"-f", path, "--sort", "-o", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, stdout, stderr := testApp(nil)
			code := a.run(tt.args)
			assert.Equal(t, 1, code)
			assert.Empty(t, stdout.String())
			assert.True(t, strings.HasPrefix(stderr.String(), "error: "), stderr.String())
		})
	}
}

func TestRunSort(t *testing.T) {
	path := writeDictionary(t, "words.txt", dictionary)

	t.Run("text", func(t *testing.T) {
		a, stdout, _ := testApp(nil)
		require.Equal(t, 0, a.run([]string{"-f", path, "--sort"}))

		reparsed, err := lexicon.Parse(strings.NewReader(stdout.String()))
		require.NoError(t, err)
		original, err := lexicon.Load(path)
		require.NoError(t, err)
		assert.True(t, original.Equal(reparsed))
		assert.True(t, strings.HasPrefix(stdout.String(), "TCP *\nUDP *\n"))
	})

	t.Run("yaml", func(t *testing.T) {
		a, stdout, _ := testApp(nil)
		require.Equal(t, 0, a.run([]string{"-f", path, "--sort", "--output", "yaml"}))

		reparsed, err := lexicon.ParseYAML(strings.NewReader(stdout.String()))
		require.NoError(t, err)
		assert.Equal(t, []string{"leverage"}, reparsed.Entries(lexicon.NoEnd))
	})
}

func TestRunSortSections(t *testing.T) {
	path := writeDictionary(t, "words.txt", dictionary)
	a, stdout, _ := testApp(nil)
	require.Equal(t, 0, a.run([]string{"-f", path, "--sort", "-o", "sections"}))

	sections := writeDictionary(t, "sections.txt", stdout.String())
	reparsed, err := lexicon.Load(sections)
	require.NoError(t, err)
	original, err := lexicon.Load(path)
	require.NoError(t, err)
	assert.True(t, original.Equal(reparsed))
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	path := writeDictionary(t, "words.txt", dictionary)
	a, stdout, stderr := testApp(nil)

	code := a.run([]string{"-f", path, "-v", "2"})
	require.Equal(t, 0, code)
	assert.Len(t, lines(stdout.String()), 2)
	assert.Contains(t, stderr.String(), "dictionary loaded")
	assert.Contains(t, stderr.String(), "sentence generated")
}

func TestRunInvalidLogLevel(t *testing.T) {
	path := writeDictionary(t, "words.txt", dictionary)
	a, _, stderr := testApp(map[string]string{"BULLSHIT_LOG_LEVEL": "loud"})

	code := a.run([]string{"-f", path})
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "invalid log level")
}

func TestRunJSONLogs(t *testing.T) {
	path := writeDictionary(t, "words.txt", dictionary)
	a, _, stderr := testApp(map[string]string{
		"BULLSHIT_LOG_LEVEL":  "debug",
		"BULLSHIT_LOG_FORMAT": "json",
	})

	require.Equal(t, 0, a.run([]string{"-f", path}))
	assert.Contains(t, stderr.String(), `"msg":"dictionary loaded"`)
	assert.Contains(t, stderr.String(), `"component":"bullshit"`)
}

func TestRunInstallsDefaultLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := writeDictionary(t, "words.txt", dictionary)
	a, _, stderr := testApp(nil)

	require.Equal(t, 0, a.run([]string{"-f", path}))
	slog.Warn("after run")
	assert.Contains(t, stderr.String(), "msg=\"after run\"")
	assert.Contains(t, stderr.String(), "component=bullshit")
}
