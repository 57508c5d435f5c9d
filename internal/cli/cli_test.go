package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daryltucker/syn/internal/buildinfo"
	"github.com/daryltucker/syn/internal/engine"
	"github.com/daryltucker/syn/internal/model"
	"github.com/daryltucker/syn/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samplePath = filepath.Join("..", "wordnet", "testdata", "sample.json")

// execute runs a fresh root command and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestRoot_PrintsSynonym(t *testing.T) {
	out, err := execute(t, "--wordnet", samplePath, "happy")
	require.NoError(t, err)
	assert.Equal(t, "felicitous\n", out)
}

func TestRoot_FallbackPrintsWord(t *testing.T) {
	out, err := execute(t, "--wordnet", samplePath, "xyzzynotaword")
	require.NoError(t, err)
	assert.Equal(t, "xyzzynotaword\n", out)
}

func TestRoot_MissingArgument(t *testing.T) {
	out, err := execute(t, "--wordnet", samplePath)
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrArgumentMissing)
	assert.Empty(t, out)
}

func TestRoot_EmptyArgument(t *testing.T) {
	out, err := execute(t, "--wordnet", samplePath, "")
	assert.ErrorIs(t, err, engine.ErrArgumentMissing)
	assert.Empty(t, out)
}

func TestRoot_TooManyArguments(t *testing.T) {
	out, err := execute(t, "--wordnet", samplePath, "happy", "sad")
	require.Error(t, err)
	assert.NotErrorIs(t, err, engine.ErrArgumentMissing)
	assert.Empty(t, out)
}

func TestRoot_DatabaseUnavailable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	out, err := execute(t, "--wordnet", missing, "happy")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrLookupUnavailable)
	assert.Empty(t, out)
}

func TestRoot_JSON(t *testing.T) {
	out, err := execute(t, "--wordnet", samplePath, "--json", "gleefulness")
	require.NoError(t, err)

	var res model.Result
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, model.Result{
		Word:       "gleefulness",
		Synonym:    "glee",
		Candidates: []string{"glee", "gleefulness"},
	}, res)
}

func TestRoot_All(t *testing.T) {
	out, err := execute(t, "--wordnet", samplePath, "--all", "dog")
	require.NoError(t, err)
	assert.Equal(t, "Canis_familiaris\ndog\ndomestic_dog\n", out)
}

func TestRoot_ConfigFile(t *testing.T) {
	abs, err := filepath.Abs(samplePath)
	require.NoError(t, err)

	cfgPath := filepath.Join(t.TempDir(), "syn.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("wordnet_path: "+abs+"\n"), 0o644))

	out, err := execute(t, "--config", cfgPath, "geese")
	require.NoError(t, err)
	assert.Equal(t, "goose\n", out)
}

func TestRoot_BadConfigFile(t *testing.T) {
	out, err := execute(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"), "happy")
	require.Error(t, err)
	assert.Empty(t, out)
}

func TestRoot_Version(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, buildinfo.String()+"\n", out)
}

func TestRoot_DashPrefixedWord(t *testing.T) {
	out, err := execute(t, "--wordnet", samplePath, "--", "-ish")
	require.NoError(t, err)
	assert.Equal(t, "-ish\n", out)
}

func TestRoot_DashPrefixedWordWithoutSeparator(t *testing.T) {
	out, err := execute(t, "--wordnet", samplePath, "-ish")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown shorthand flag")
	assert.Empty(t, out)
}

func TestRoot_Stdin(t *testing.T) {
	out, err := executeWithInput(t, "happy\ngeese\n\nhappy\n", "--wordnet", samplePath, "--stdin")
	require.NoError(t, err)
	assert.Equal(t, "felicitous\ngoose\nfelicitous\n", out)
}

func TestRoot_StdinAll(t *testing.T) {
	out, err := executeWithInput(t, "gleefulness\nxyzzy\n", "--wordnet", samplePath, "--stdin", "--all")
	require.NoError(t, err)
	assert.Equal(t, "glee\ngleefulness\nxyzzy\n", out)
}

func TestRoot_StdinRejectsWordArgument(t *testing.T) {
	out, err := executeWithInput(t, "happy\n", "--wordnet", samplePath, "--stdin", "happy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--stdin takes no word arguments")
	assert.Empty(t, out)
}

func TestRoot_StdinDatabaseUnavailable(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	out, err := executeWithInput(t, "happy\n", "--wordnet", missing, "--stdin")
	assert.ErrorIs(t, err, engine.ErrLookupUnavailable)
	assert.Empty(t, out)
}

func TestRoot_UnknownLogLevelFromEnv(t *testing.T) {
	t.Setenv("SYN_LOG_LEVEL", "verbos")
	out, err := execute(t, "--wordnet", samplePath, "happy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level must be")
	assert.Empty(t, out)
}

func TestRoot_DebugFlagEnablesDebugLogging(t *testing.T) {
	prev := output.Logger
	t.Cleanup(func() { output.SetLogger(prev) })

	_, err := execute(t, "--wordnet", samplePath, "happy")
	require.NoError(t, err)
	assert.False(t, output.Logger.Enabled(context.Background(), slog.LevelDebug))

	out, err := execute(t, "--wordnet", samplePath, "--debug", "happy")
	require.NoError(t, err)
	assert.Equal(t, "felicitous\n", out)
	assert.True(t, output.Logger.Enabled(context.Background(), slog.LevelDebug))
}

func TestRoot_AllFromEnv(t *testing.T) {
	t.Setenv("SYN_ALL", "true")
	out, err := execute(t, "--wordnet", samplePath, "dog")
	require.NoError(t, err)
	assert.Equal(t, "Canis_familiaris\ndog\ndomestic_dog\n", out)
}
