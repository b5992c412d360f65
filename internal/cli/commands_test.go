package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/csvkit/pkg/csvkit"
)

func resetLoadFlags() {
	loadFlags = loadFlagValues{}
}

func resetAgeFlags() {
	ageFlags = ageFlagValues{}
}

// executeCommand runs the root command with args and returns captured stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetLoadFlags()
	resetAgeFlags()
	for _, name := range []string{"CSVKIT_EXTENSION", "CSVKIT_DELIMITER", "CSVKIT_OUTPUT_DIR"} {
		t.Setenv(name, "")
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		_ = rootCmd.PersistentFlags().Set("config", "")
		_ = rootCmd.PersistentFlags().Set("verbose", "false")
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadCmd_ArgsValidation(t *testing.T) {
	err := loadCmd.Args(loadCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, csvkit.ExitUsageError, csvkit.ExitCodeForError(err))

	err = loadCmd.Args(loadCmd, []string{"a", "b"})
	require.Error(t, err)
}

func TestAgeCmd_ArgsValidation(t *testing.T) {
	err := ageCmd.Args(ageCmd, []string{})
	require.Error(t, err)
	assert.Equal(t, csvkit.ExitUsageError, csvkit.ExitCodeForError(err))
}

func TestLoadCmd_PlainSummary(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"), "x,y\n1,2\n3,4\n")
	writeFile(t, filepath.Join(dir, "b.csv"), "z\n\"hello\"\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored")

	stdout, _, err := executeCommand(t, "load", dir, "--plain")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "TABLE\tROWS\tCOLUMNS", lines[0])
	assert.Equal(t, "a\t2\tx, y", lines[1])
	assert.Equal(t, "b\t1\tz", lines[2])
}

func TestLoadCmd_MissingDirectory(t *testing.T) {
	_, _, err := executeCommand(t, "load", filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
	assert.ErrorIs(t, err, csvkit.ErrNotFound)
	assert.Equal(t, csvkit.ExitNotFound, csvkit.ExitCodeForError(err))
}

func TestLoadCmd_VerboseLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"), "x\n1\n")

	_, stderr, err := executeCommand(t, "load", dir, "--plain", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "[VERBOSE]")
}

func TestLoadCmd_ConfigExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csv"), "x\n1\n")
	writeFile(t, filepath.Join(dir, "b.tsv"), "x\ty\n1\t2\n")
	cfgPath := filepath.Join(t.TempDir(), "csvkit.yaml")
	writeFile(t, cfgPath, "extension: .tsv\ndelimiter: \"\\t\"\n")

	stdout, _, err := executeCommand(t, "load", dir, "--plain", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "b\t1\tx, y")
	assert.NotContains(t, stdout, "\na\t")
}

func TestLoadCmd_MissingConfigFile(t *testing.T) {
	_, _, err := executeCommand(t, "load", t.TempDir(), "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, csvkit.ErrNotFound)
}

func TestLoadCmd_InvalidDelimiterFromEnv(t *testing.T) {
	dir := t.TempDir()
	resetLoadFlags()
	t.Setenv("CSVKIT_DELIMITER", ";;")
	rootCmd.SetArgs([]string{"load", dir, "--plain"})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, csvkit.ErrInvalidConfig)
	assert.Equal(t, csvkit.ExitConfigError, csvkit.ExitCodeForError(err))
}

func TestAgeCmd_WritesAnnotatedFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "staff.csv")
	writeFile(t, src, "name,hired\nann,2014-03-01\nbo,2024-06-16\n")

	stdout, stderr, err := executeCommand(t, "age", src, "--column", "hired", "--now", "2024-06-15T12:00:00Z")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Annotated 2 row(s) of "+src)

	outPath := filepath.Join(dir, "staff_age.csv")
	assert.Equal(t, "staff_age.csv written succesfully at "+outPath+"\n", stdout)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t,
		"name,hired,difference_in_years\n"+
			"ann,2014-03-01 00:00:00+00:00,10\n"+
			"bo,2024-06-16 00:00:00+00:00,-1\n",
		string(data))
}

func TestAgeCmd_OutDirAndName(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "staff.csv")
	writeFile(t, src, "name,hired\nann,2020-01-01\n")
	outDir := filepath.Join(dir, "out", "nested")

	_, _, err := executeCommand(t, "age", src,
		"--column", "hired",
		"--now", "2024-01-01",
		"--out-dir", outDir,
		"--out-name", "result.csv")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "result.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ann,2020-01-01 00:00:00+00:00,4")
}

func TestAgeCmd_OutputDirFromConfig(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "staff.csv")
	writeFile(t, src, "hired\n2020-01-01\n")
	outDir := filepath.Join(dir, "configured")
	cfgPath := filepath.Join(dir, "csvkit.yaml")
	writeFile(t, cfgPath, "output_dir: "+outDir+"\n")

	_, _, err := executeCommand(t, "age", src, "--column", "hired", "--now", "2024-01-01", "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(outDir, "staff_age.csv"))
}

func TestAgeCmd_UnknownColumn(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "staff.csv")
	writeFile(t, src, "name\nann\n")

	_, _, err := executeCommand(t, "age", src, "--column", "hired")
	require.Error(t, err)
	assert.ErrorIs(t, err, csvkit.ErrColumnNotFound)
	assert.Equal(t, csvkit.ExitParseError, csvkit.ExitCodeForError(err))
	assert.NoFileExists(t, filepath.Join(dir, "staff_age.csv"))
}

func TestAgeCmd_UnparseableDate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "staff.csv")
	writeFile(t, src, "hired\nnot a date\n")

	_, _, err := executeCommand(t, "age", src, "--column", "hired")
	require.Error(t, err)
	assert.ErrorIs(t, err, csvkit.ErrParse)
}

func TestAgeCmd_InvalidNow(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "staff.csv")
	writeFile(t, src, "hired\n2020-01-01\n")

	_, _, err := executeCommand(t, "age", src, "--column", "hired", "--now", "someday")
	require.Error(t, err)
	assert.Equal(t, csvkit.ExitUsageError, csvkit.ExitCodeForError(err))
}

func TestAgeCmd_MissingFile(t *testing.T) {
	_, _, err := executeCommand(t, "age", filepath.Join(t.TempDir(), "nope.csv"), "--column", "hired")
	require.Error(t, err)
	assert.ErrorIs(t, err, csvkit.ErrNotFound)
}

func TestDefaultAgeOutputName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"staff.csv", "staff_age.csv"},
		{"/data/in/staff.csv", "staff_age.csv"},
		{"report.tsv", "report_age.tsv"},
		{"noext", "noext_age"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultAgeOutputName(tt.source))
		})
	}
}
