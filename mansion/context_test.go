package mansion

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/itchio/bridgegen/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

func Test_Register(t *testing.T) {
	app := kingpin.New("bridgegen", "test")
	ctx := NewContext(app)

	called := false
	ctx.Register(app.Command("targets", "List targets"), func(ctx *Context) {
		called = true
	})

	cmd, err := app.Parse([]string{"targets"})
	require.NoError(t, err)
	ctx.Commands[cmd](ctx)
	assert.True(t, called)
}

func Test_SettingsDefaults(t *testing.T) {
	root := t.TempDir()
	ctx := NewContext(kingpin.New("bridgegen", "test"))
	ctx.Root = root

	cfg, err := ctx.Settings()
	require.NoError(t, err)
	assert.EqualValues(t, root, cfg.Root)
	assert.EqualValues(t, config.DefaultProtocol, cfg.Protocol)
	assert.EqualValues(t, config.DefaultBridge, cfg.Bridge)
	assert.EqualValues(t, "", cfg.Out)
}

func Test_SettingsPrecedence(t *testing.T) {
	root := t.TempDir()
	contents := "protocol = \"api/bridge.json\"\nout = \"stubs\"\nbridge = \"Native\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, config.DefaultPath), []byte(contents), 0644))

	ctx := NewContext(kingpin.New("bridgegen", "test"))
	ctx.Root = root

	cfg, err := ctx.Settings()
	require.NoError(t, err)
	assert.EqualValues(t, "api/bridge.json", cfg.Protocol)
	assert.EqualValues(t, "stubs", cfg.Out)
	assert.EqualValues(t, "Native", cfg.Bridge)

	ctx.Out = "~/elsewhere"
	ctx.Bridge = "Host"
	cfg, err = ctx.Settings()
	require.NoError(t, err)
	assert.EqualValues(t, "api/bridge.json", cfg.Protocol)
	assert.EqualValues(t, "~/elsewhere", cfg.Out)
	assert.EqualValues(t, "Host", cfg.Bridge)
}

func Test_SettingsExplicitConfigMustExist(t *testing.T) {
	ctx := NewContext(kingpin.New("bridgegen", "test"))
	ctx.Root = t.TempDir()
	ctx.ConfigPath = "missing.toml"

	_, err := ctx.Settings()
	assert.Error(t, err)
}

func Test_HomeDirFailure(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "plan9" {
		t.Skip("home directory does not come from $HOME")
	}
	t.Setenv("HOME", "")
	ctx := NewContext(kingpin.New("bridgegen", "test"))

	_, err := ctx.HomeDir()
	assert.Error(t, err)
}
