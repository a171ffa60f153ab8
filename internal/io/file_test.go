package ioutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"tannuk", "tannuk"},
		{"deck:with:colons", "deck_with_colons"},
		{"deck/with\\slashes", "deck_with_slashes"},
		{"deck|with|pipes", "deck_with_pipes"},
		{"deck?with*wildcards", "deck_with_wildcards"},
		{"trailing dots...", "trailing dots"},
		{"multiple   spaces", "multiple spaces"},
		{"  padded  ", "padded"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := SanitizeFileName(tt.input); got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decklist.txt")

	require.NoError(t, WriteFile(path, []byte("first")))
	require.NoError(t, WriteFile(path, []byte("second")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestWriteIndentedJSON_KeepsKeyOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")

	require.NoError(t, WriteIndentedJSON(path, []byte(`{"z":1,"a":{"y":2,"b":3}}`)))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "{\n  \"z\": 1,\n  \"a\": {\n    \"y\": 2,\n    \"b\": 3\n  }\n}\n"
	assert.Equal(t, want, string(got))
}

func TestWriteIndentedJSON_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.json")
	assert.Error(t, WriteIndentedJSON(path, []byte(`{broken`)))
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir))
	require.NoError(t, EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
