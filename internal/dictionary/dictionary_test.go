package dictionary

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/tuidrill/internal/vocab"
)

const gitDict = `name = "Git basics"
version = 2

[[items]]
id = "status"
prompt = "Show the working tree status"
answer = "git status"
aliases = ["git st"]
tags = ["basics"]
difficulty = 1

[[items]]
id = "log"
prompt = "Show commit history"
answer = "git log"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileAppliesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "git.toml", gitDict)

	set, unknown, err := LoadFile(path)
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, "Git basics", set.Name)
	assert.Equal(t, 2, set.Version)
	assert.Equal(t, vocab.DefaultLanguage, set.Language)
	require.Len(t, set.Items, 2)
	assert.Equal(t, []string{"git st"}, set.Items[0].Aliases)
	assert.Empty(t, set.Items[1].Aliases)
	assert.Equal(t, 0, set.Items[1].Difficulty)
}

func TestLoadFileReportsUnknownKeys(t *testing.T) {
	path := writeFile(t, t.TempDir(), "git.toml", "description = \"extra\"\n"+gitDict)

	_, unknown, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"description"}, unknown)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"missing": filepath.Join(dir, "missing.toml"),
		"syntax":  writeFile(t, dir, "syntax.toml", "name = \n"),
		"empty":   writeFile(t, dir, "empty.toml", "name = \"empty\"\n"),
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := LoadFile(path)
			var loadErr *LoadError
			require.True(t, errors.As(err, &loadErr))
			assert.Equal(t, path, loadErr.Path)
		})
	}

	_, _, err := LoadFile(cases["empty"])
	assert.ErrorIs(t, err, vocab.ErrNoItems)
}

func TestScanMissingDir(t *testing.T) {
	c, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, c.Entries())
}

func TestScanListsTomlFiles(t *testing.T) {
	dir := t.TempDir()
	gitPath := writeFile(t, dir, "b-git.toml", gitDict)
	brokenPath := writeFile(t, dir, "a-broken.toml", "name = \"broken\"\n")
	writeFile(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.toml"), 0o755))

	c, err := Scan(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, c.Dir())
	assert.Equal(t, []vocab.Entry{
		{ID: brokenPath, Name: "a-broken"},
		{ID: gitPath, Name: "Git basics"},
	}, c.Entries())
	assert.Contains(t, c.Broken(), brokenPath)
	assert.Equal(t, []vocab.Entry{{ID: gitPath, Name: "Git basics"}}, c.Usable())

	set, err := c.Load(gitPath)
	require.NoError(t, err)
	assert.Len(t, set.Items, 2)

	_, err = c.Load(brokenPath)
	assert.Error(t, err)
}
