package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/hexa/pkg/config"
	"github.com/agenthands/hexa/pkg/stdlib"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, stdlib.FormatDec, c.OutputFormat())
	assert.False(t, c.Quote)
	assert.False(t, c.RPN)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, c *config.Config)
	}{
		{
			name: "Overrides",
			yaml: "width: 32\nformat: hex\nquote: true\nrpn: true\ncache_size: 8\nhistory: /tmp/h\n",
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, 32, c.Width)
				assert.Equal(t, stdlib.FormatHex, c.OutputFormat())
				assert.True(t, c.Quote)
				assert.True(t, c.RPN)
				assert.Equal(t, 8, c.CacheSize)
				assert.Equal(t, "/tmp/h", c.History)
			},
		},
		{
			name: "PartialKeepsDefaults",
			yaml: "format: bin\n",
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, 64, c.Width)
				assert.Equal(t, "bin", c.Format)
				assert.Equal(t, 128, c.CacheSize)
			},
		},
		{
			name: "Empty",
			yaml: "",
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.Default(), c)
			},
		},
		{name: "BadWidth", yaml: "width: 16\n", wantErr: true},
		{name: "BadFormat", yaml: "format: little\n", wantErr: true},
		{name: "NegativeCache", yaml: "cache_size: -1\n", wantErr: true},
		{name: "UnknownKey", yaml: "colour: red\n", wantErr: true},
		{name: "Malformed", yaml: "width: [\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := config.Parse([]byte(tt.yaml), "test.yaml")
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "test.yaml")
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("width: 32\n"), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 32, c.Width)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadOptional(t *testing.T) {
	c, err := config.LoadOptional(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)

	c, err = config.LoadOptional("")
	require.NoError(t, err)
	assert.Equal(t, 64, c.Width)
}
