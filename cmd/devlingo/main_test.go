package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/devlingo/pkg/config"
	"github.com/japaniel/devlingo/pkg/corpus"
	"github.com/japaniel/devlingo/pkg/phrase"
	"github.com/japaniel/devlingo/pkg/writer"
)

func run(t *testing.T, reg func() *corpus.Registry, args ...string) (string, error) {
	t.Helper()
	// Keep a stray devlingo.yaml or env from leaking into tests.
	t.Setenv("DEVLINGO_OUTPUT_DIR", "")
	t.Setenv("DEVLINGO_FILE_PATTERN", "")
	t.Setenv("DEVLINGO_CATALOG", "")
	t.Setenv("DEVLINGO_LOG_LEVEL", "error")

	var out bytes.Buffer
	root, c := buildRoot(&out)
	if reg != nil {
		c.registry = reg
	}
	args = append(args, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func brokenRegistry() *corpus.Registry {
	r := corpus.Default().Records(phrase.Slack)[0]
	tr := make(map[string]string)
	for k, v := range r.Translations {
		if k != "ja" {
			tr[k] = v
		}
	}
	r.Translations = tr

	reg := corpus.NewRegistry()
	reg.Add(corpus.Batch{Name: "broken", Category: phrase.Slack, Difficulty: phrase.Easy, Records: []phrase.Record{r}})
	return reg
}

func TestGenerateDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "phrases")
	out, err := run(t, nil, "--out", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Generation complete")

	reg := corpus.Default()
	for _, c := range reg.Categories() {
		got, err := writer.ReadCategory(filepath.Join(dir, string(c)+".json"))
		require.NoError(t, err)
		assert.Len(t, got, len(reg.Records(c)))
	}
}

func TestGenerateSubcommandPattern(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, nil, "generate", "--out", dir, "--pattern", "phrases_%s.json")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "phrases_slack.json"))
	assert.NoError(t, err)
}

func TestGenerateValidationFailure(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, brokenRegistry, "generate", "--out", dir)
	require.Error(t, err)

	var ve *corpus.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "slack_001", ve.RecordID)

	_, statErr := os.Stat(filepath.Join(dir, "slack.json"))
	assert.True(t, os.IsNotExist(statErr))

	var buf bytes.Buffer
	reportError(&buf, err)
	assert.Contains(t, buf.String(), "slack_001")
	assert.Contains(t, buf.String(), "translations[ja]")
}

func TestGenerateValidationFailureCreatesNoCatalog(t *testing.T) {
	tmp := t.TempDir()
	dbPath := filepath.Join(tmp, "catalog.db")
	_, err := run(t, brokenRegistry, "generate", "--out", filepath.Join(tmp, "out"), "--catalog", dbPath)
	require.Error(t, err)

	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr), "catalog must not be created")
	_, statErr = os.Stat(filepath.Join(tmp, "out"))
	assert.True(t, os.IsNotExist(statErr), "output dir must not be created")
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, nil, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Corpus valid")

	_, err = run(t, brokenRegistry, "validate")
	assert.Error(t, err)
}

func TestStatsCommand(t *testing.T) {
	out, err := run(t, nil, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "CATEGORY")
	assert.Contains(t, out, "slack")
	assert.Contains(t, out, "email")

	dir := t.TempDir()
	_, err = run(t, nil, "--out", dir)
	require.NoError(t, err)

	fromOut, err := run(t, nil, "stats", "--from", dir)
	require.NoError(t, err)
	assert.Equal(t, out, fromOut)
}

func TestStatsFromCatalog(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	want, err := run(t, nil, "stats")
	require.NoError(t, err)

	_, err = run(t, nil, "stats", "--catalog", dbPath)
	require.Error(t, err, "missing catalog must not be created by stats")

	_, err = run(t, nil, "generate", "--out", t.TempDir(), "--catalog", dbPath)
	require.NoError(t, err)

	got, err := run(t, nil, "stats", "--catalog", dbPath)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInitWritesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devlingo.yaml")
	t.Setenv("DEVLINGO_LOG_LEVEL", "error")
	t.Setenv("DEVLINGO_OUTPUT_DIR", "build/phrases")
	t.Setenv("DEVLINGO_FILE_PATTERN", "")
	t.Setenv("DEVLINGO_CATALOG", "")

	exec := func(args ...string) error {
		root, _ := buildRoot(io.Discard)
		root.SetArgs(append(args, "--config", path))
		return root.Execute()
	}
	require.NoError(t, exec("init"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "build/phrases", cfg.OutputDir)
	assert.Equal(t, writer.DefaultPattern, cfg.FilePattern)

	assert.Error(t, exec("init"), "existing config must not be overwritten")
	assert.NoError(t, exec("init", "--force"))
}

func TestInvalidPatternRejected(t *testing.T) {
	_, err := run(t, nil, "--out", t.TempDir(), "--pattern", "phrases.json")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "file_pattern"))
}

func TestReportErrorMulti(t *testing.T) {
	reg := brokenRegistry()
	r := reg.Records(phrase.Slack)[0]
	r.Context = ""
	reg2 := corpus.NewRegistry()
	reg2.Add(corpus.Batch{Name: "broken", Category: phrase.Slack, Difficulty: phrase.Easy, Records: []phrase.Record{r}})

	var buf bytes.Buffer
	reportError(&buf, corpus.Validate(reg2))
	assert.Contains(t, buf.String(), "2 problems found")
	assert.Contains(t, buf.String(), "context")
}
