package generate

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itchio/bridgegen/protocol"
	"github.com/itchio/bridgegen/targets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const getUserProtocol = `{"version":"1.0.0","methods":[{"name":"getUser","params":[{"name":"id","type":"uint"}],"returns":{"type":"string","desc":"user json"}}]}`

func makeProject(t *testing.T, contents string) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(root, "protocol.json"), []byte(contents), 0644))
	return root
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	bs, err := ioutil.ReadFile(path)
	require.NoError(t, err)
	return string(bs)
}

func Test_RunWritesAllTargets(t *testing.T) {
	root := makeProject(t, getUserProtocol)

	res, err := Run(Params{Root: root})
	require.NoError(t, err)

	dir := filepath.Join(root, "generated")
	assert.EqualValues(t, dir, res.Dir)
	assert.EqualValues(t, targets.All, res.Targets)

	var names []string
	for _, f := range res.Files {
		names = append(names, filepath.Base(f))
	}
	assert.EqualValues(t, []string{"JsBridge.d.ts", "JsBridge.js", "JsBridge.java", "JsBridge.h", "JsBridge.hpp"}, names)

	assert.Contains(t, readFile(t, filepath.Join(dir, "JsBridge.d.ts")), "getUser(id: number): string;")
	assert.Contains(t, readFile(t, filepath.Join(dir, "JsBridge.hpp")), "const char * JsBridge_getUser(uint64_t id);")
	for _, f := range res.Files {
		assert.Contains(t, readFile(t, f), "1.0.0")
	}
}

func Test_RunAllMatchesDefault(t *testing.T) {
	root := makeProject(t, getUserProtocol)

	def, err := Run(Params{Root: root, Out: "a"})
	require.NoError(t, err)
	all, err := Run(Params{Root: root, Out: "b", All: true})
	require.NoError(t, err)

	assert.EqualValues(t, def.Targets, all.Targets)
	for i := range def.Files {
		assert.EqualValues(t, readFile(t, def.Files[i]), readFile(t, all.Files[i]))
	}
}

func Test_RunSubsetAndOverwrite(t *testing.T) {
	root := makeProject(t, getUserProtocol)
	dir := filepath.Join(root, "out", "nested")
	require.NoError(t, os.MkdirAll(dir, 0755))

	bystander := filepath.Join(dir, "README.md")
	require.NoError(t, ioutil.WriteFile(bystander, []byte("keep me"), 0644))
	stale := filepath.Join(dir, "JsBridge.java")
	require.NoError(t, ioutil.WriteFile(stale, []byte("stale"), 0644))

	res, err := Run(Params{Root: root, Out: "out/nested", Lang: "java,cpp"})
	require.NoError(t, err)
	assert.EqualValues(t, []targets.Target{targets.Java, targets.CHeader}, res.Targets)

	assert.EqualValues(t, "keep me", readFile(t, bystander))
	assert.Contains(t, readFile(t, stale), "public interface JsBridge {")

	_, err = os.Stat(filepath.Join(dir, "JsBridge.d.ts"))
	assert.True(t, os.IsNotExist(err))
}

func Test_RunUnsupportedTargetWritesNothing(t *testing.T) {
	root := makeProject(t, getUserProtocol)

	_, err := Run(Params{Root: root, Lang: "foo"})
	require.Error(t, err)
	_, ok := err.(*targets.UnsupportedTargetError)
	assert.True(t, ok)
	assert.Contains(t, err.Error(), "foo")
	assert.Contains(t, err.Error(), "ts,js,java,objc,cpp")

	_, err = os.Stat(filepath.Join(root, "generated"))
	assert.True(t, os.IsNotExist(err))
}

func Test_RunMalformedSpecWritesNothing(t *testing.T) {
	root := makeProject(t, `{"version": "1.0.0"}`)

	_, err := Run(Params{Root: root})
	require.Error(t, err)
	assert.True(t, protocol.IsMalformed(err))

	_, err = os.Stat(filepath.Join(root, "generated"))
	assert.True(t, os.IsNotExist(err))
}

func Test_RunHomeAndAbsoluteOut(t *testing.T) {
	root := makeProject(t, getUserProtocol)
	home := t.TempDir()

	res, err := Run(Params{Root: root, Out: "~/bindings", Home: home, Lang: "ts"})
	require.NoError(t, err)
	assert.EqualValues(t, filepath.Join(home, "bindings"), res.Dir)
	assert.FileExists(t, filepath.Join(home, "bindings", "JsBridge.d.ts"))

	abs := filepath.Join(t.TempDir(), "abs")
	res, err = Run(Params{Root: root, Out: abs, Lang: "js"})
	require.NoError(t, err)
	assert.EqualValues(t, abs, res.Dir)
	assert.FileExists(t, filepath.Join(abs, "JsBridge.js"))
}

func Test_RunCustomProtocolAndBridge(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "spec"), 0755))
	require.NoError(t, ioutil.WriteFile(filepath.Join(root, "spec", "bridge.toml"), []byte(`
version = "2.0.0"

[[methods]]
name = "vibrate"
returns = "void"
`), 0644))

	res, err := Run(Params{Root: root, Protocol: "spec/bridge.toml", Bridge: "Native", Lang: "objc"})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.EqualValues(t, "Native.h", filepath.Base(res.Files[0]))

	contents := readFile(t, res.Files[0])
	assert.Contains(t, contents, "from bridge.toml")
	assert.Contains(t, contents, `#define NATIVE_VERSION @"2.0.0"`)
	assert.Contains(t, contents, "- (void)vibrate;")
}

func Test_RunIsStable(t *testing.T) {
	root := makeProject(t, getUserProtocol)

	first, err := Run(Params{Root: root})
	require.NoError(t, err)
	var before []string
	for _, f := range first.Files {
		before = append(before, readFile(t, f))
	}

	second, err := Run(Params{Root: root})
	require.NoError(t, err)
	for i, f := range second.Files {
		assert.EqualValues(t, before[i], readFile(t, f))
	}
}

func Test_Check(t *testing.T) {
	root := makeProject(t, getUserProtocol)

	_, drifts, err := Check(Params{Root: root, Lang: "ts,java"})
	require.NoError(t, err)
	require.Len(t, drifts, 2)
	assert.True(t, drifts[0].Missing)
	assert.True(t, drifts[1].Missing)

	_, err = os.Stat(filepath.Join(root, "generated"))
	assert.True(t, os.IsNotExist(err), "check must not write anything")

	_, err = Run(Params{Root: root, Lang: "ts,java"})
	require.NoError(t, err)

	_, drifts, err = Check(Params{Root: root, Lang: "ts,java"})
	require.NoError(t, err)
	assert.Empty(t, drifts)

	// the protocol moves on, bindings don't
	require.NoError(t, ioutil.WriteFile(filepath.Join(root, "protocol.json"), []byte(strings.Replace(getUserProtocol, "1.0.0", "1.1.0", 1)), 0644))

	_, drifts, err = Check(Params{Root: root, Lang: "ts"})
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.False(t, drifts[0].Missing)
	assert.Contains(t, drifts[0].Diff, `-export const VERSION = "1.0.0";`)
	assert.Contains(t, drifts[0].Diff, `+export const VERSION = "1.1.0";`)
}

func Test_Docs(t *testing.T) {
	root := makeProject(t, getUserProtocol)

	dest, err := Docs(Params{Root: root, Out: "docs"})
	require.NoError(t, err)
	assert.EqualValues(t, filepath.Join(root, "docs", "JsBridge.md"), dest)

	contents := readFile(t, dest)
	assert.Contains(t, contents, "### getUser")
	assert.Contains(t, contents, "user json")
}
