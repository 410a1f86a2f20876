package generate

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ResolveOutDir(t *testing.T) {
	root := filepath.FromSlash("/work/app")
	home := filepath.FromSlash("/home/amos")

	assert.EqualValues(t, filepath.FromSlash("/work/app/generated"), ResolveOutDir("", root, home))
	assert.EqualValues(t, filepath.FromSlash("/work/app/generated"), ResolveOutDir("  ", root, home))
	assert.EqualValues(t, filepath.FromSlash("/home/amos/out"), ResolveOutDir("~/out", root, home))
	assert.EqualValues(t, filepath.FromSlash("/home/amos"), ResolveOutDir("~", root, home))
	assert.EqualValues(t, filepath.FromSlash("/work/app/relative/dir"), ResolveOutDir("relative/dir", root, home))
	assert.EqualValues(t, filepath.FromSlash("/work/app/bindings"), ResolveOutDir("./bindings/", root, home))
	assert.EqualValues(t, filepath.FromSlash("/work/other"), ResolveOutDir("../other", root, home))
}

func Test_ResolveOutDirAbsolute(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "abs", "dir")
	assert.EqualValues(t, abs, ResolveOutDir(abs, "/work/app", "/home/amos"))
}

func Test_ResolveOutDirTildeUser(t *testing.T) {
	root := filepath.FromSlash("/work/app")
	assert.EqualValues(t, filepath.FromSlash("/work/app/~weird"), ResolveOutDir("~weird", root, "/home/amos"))
}

func Test_NeedsHome(t *testing.T) {
	assert.True(t, NeedsHome("~"))
	assert.True(t, NeedsHome(" ~/stubs"))
	assert.False(t, NeedsHome("~weird"))
	assert.False(t, NeedsHome("stubs"))
	assert.False(t, NeedsHome(""))
}
