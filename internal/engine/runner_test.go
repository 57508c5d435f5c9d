package engine

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daryltucker/syn/internal/config"
	"github.com/daryltucker/syn/internal/model"
	"github.com/daryltucker/syn/internal/output"
	"github.com/daryltucker/syn/internal/wordnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.WordNetPath = filepath.Join("..", "wordnet", "testdata", "sample.json")
	return cfg
}

func TestRun_PrintsSynonym(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, Run(testConfig(t), "happy", &stdout))
	assert.Equal(t, "felicitous\n", stdout.String())
}

func TestRun_InflectedQuery(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, Run(testConfig(t), "dogs", &stdout))
	assert.Equal(t, "Canis_familiaris\n", stdout.String())
}

func TestRun_FallbackPrintsWord(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, Run(testConfig(t), "xyzzynotaword", &stdout))
	assert.Equal(t, "xyzzynotaword\n", stdout.String())
}

func TestRun_All(t *testing.T) {
	cfg := testConfig(t)
	cfg.All = true

	var stdout bytes.Buffer
	require.NoError(t, Run(cfg, "gleefulness", &stdout))
	assert.Equal(t, "glee\ngleefulness\n", stdout.String())
}

func TestRun_JSON(t *testing.T) {
	cfg := testConfig(t)
	cfg.Format = config.FormatJSON

	var stdout bytes.Buffer
	require.NoError(t, Run(cfg, "happy", &stdout))

	var res model.Result
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
	assert.Equal(t, "happy", res.Word)
	assert.Equal(t, "felicitous", res.Synonym)
	assert.Equal(t, []string{"felicitous", "glad", "happy", "happy", "happy", "happy", "well-chosen"}, res.Candidates)
}

func TestRun_OEWNDirectory(t *testing.T) {
	cfg := testConfig(t)
	cfg.WordNetPath = filepath.Join("..", "wordnet", "testdata", "oewn")

	var stdout bytes.Buffer
	require.NoError(t, RunBatch(cfg, strings.NewReader("happy\ndogs\ngleefulness\n"), &stdout))
	assert.Equal(t, "felicitous\nCanis_familiaris\nglee\n", stdout.String())
}

func TestRun_DatabaseUnavailable(t *testing.T) {
	cfg := testConfig(t)
	cfg.WordNetPath = filepath.Join(t.TempDir(), "missing.json")

	var stdout bytes.Buffer
	err := Run(cfg, "happy", &stdout)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLookupUnavailable)
	assert.Empty(t, stdout.String())
}

func TestRunBatch_OneLinePerWord(t *testing.T) {
	in := strings.NewReader("happy\n\n  dogs  \r\n# comment\nxyzzynotaword\nhappy\n")

	var stdout bytes.Buffer
	require.NoError(t, RunBatch(testConfig(t), in, &stdout))
	assert.Equal(t, "felicitous\nCanis_familiaris\nxyzzynotaword\nfelicitous\n", stdout.String())
}

func TestRunBatch_EmptyInput(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, RunBatch(testConfig(t), strings.NewReader(""), &stdout))
	assert.Empty(t, stdout.String())
}

func TestRunBatch_JSON(t *testing.T) {
	cfg := testConfig(t)
	cfg.Format = config.FormatJSON

	var stdout bytes.Buffer
	require.NoError(t, RunBatch(cfg, strings.NewReader("geese\nxyzzy\n"), &stdout))

	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	var first, second model.Result
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, "goose", first.Synonym)
	assert.True(t, second.Fallback)
	assert.Equal(t, "xyzzy", second.Synonym)
}

func TestRunBatch_DatabaseUnavailable(t *testing.T) {
	cfg := testConfig(t)
	cfg.WordNetPath = filepath.Join(t.TempDir(), "missing.json")

	var stdout bytes.Buffer
	err := RunBatch(cfg, strings.NewReader("happy\n"), &stdout)
	assert.ErrorIs(t, err, ErrLookupUnavailable)
	assert.Empty(t, stdout.String())
}

// countingLexicon records how often each word is queried.
type countingLexicon struct {
	fakeLexicon
	calls map[string]int
}

func (c *countingLexicon) Synsets(word string) []wordnet.Synset {
	c.calls[word]++
	return c.fakeLexicon.Synsets(word)
}

func TestResolveAll_CachesRepeatedWords(t *testing.T) {
	lex := &countingLexicon{fakeLexicon: happyLexicon(), calls: make(map[string]int)}

	var stdout bytes.Buffer
	w := output.NewTextWriter(&stdout, false)
	require.NoError(t, resolveAll(New(lex), strings.NewReader("happy\nrun\nhappy\nhappy\nnope\nnope\n"), w))

	assert.Equal(t, "felicitous\nrun\nfelicitous\nfelicitous\nnope\nnope\n", stdout.String())
	assert.Equal(t, map[string]int{"happy": 1, "run": 1, "nope": 1}, lex.calls)
}

func TestResolveAll_CacheIsCaseSensitive(t *testing.T) {
	lex := &countingLexicon{fakeLexicon: happyLexicon(), calls: make(map[string]int)}

	var stdout bytes.Buffer
	w := output.NewTextWriter(&stdout, false)
	require.NoError(t, resolveAll(New(lex), strings.NewReader("Nope\nnope\n"), w))

	assert.Equal(t, "Nope\nnope\n", stdout.String())
	assert.Equal(t, 2, len(lex.calls))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stdin closed")
}

func TestResolveAll_ReadError(t *testing.T) {
	var stdout bytes.Buffer
	err := resolveAll(New(happyLexicon()), failingReader{}, output.NewTextWriter(&stdout, false))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read words: stdin closed")
	assert.Empty(t, stdout.String())
}
