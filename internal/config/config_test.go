package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/csvkit/pkg/csvkit"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `extension: .tsv
delimiter: "\t"
output_dir: ./exports
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, ".tsv", cfg.Extension)
	assert.Equal(t, "\t", cfg.Delimiter)
	assert.Equal(t, '\t', cfg.Comma())
	assert.Equal(t, "./exports", cfg.OutputDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MinimalYAMLKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("output_dir: out\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, ".csv", cfg.Extension)
	assert.Equal(t, ',', cfg.Comma())
	assert.Equal(t, "out", cfg.OutputDir)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDelimiter: ";",
		EnvOutputDir: "/tmp/out",
		EnvExtension: "",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	cfg.ApplyEnv(lookup)

	assert.Equal(t, ";", cfg.Delimiter)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, ".csv", cfg.Extension, "empty values do not override")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", *Default(), false},
		{"pipe", Config{Extension: ".psv", Delimiter: "|"}, false},
		{"multi-char delimiter", Config{Extension: ".csv", Delimiter: ",,"}, true},
		{"empty delimiter", Config{Extension: ".csv", Delimiter: ""}, true},
		{"quote delimiter", Config{Extension: ".csv", Delimiter: `"`}, true},
		{"newline delimiter", Config{Extension: ".csv", Delimiter: "\n"}, true},
		{"extension without dot", Config{Extension: "csv", Delimiter: ","}, true},
		{"bare dot", Config{Extension: ".", Delimiter: ","}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, csvkit.ErrInvalidConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
