package targets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_SelectDefaults(t *testing.T) {
	def, err := Select("", false)
	require.NoError(t, err)
	all, err := Select("", true)
	require.NoError(t, err)

	assert.EqualValues(t, All, def)
	assert.EqualValues(t, def, all)

	// --all wins over --lang
	all, err = Select("ts", true)
	require.NoError(t, err)
	assert.EqualValues(t, All, all)
}

func Test_SelectSubset(t *testing.T) {
	res, err := Select("cpp, ts,ts,,java", false)
	require.NoError(t, err)
	assert.EqualValues(t, []Target{TypeScript, Java, CHeader}, res)

	res, err = Select(",", false)
	require.NoError(t, err)
	assert.EqualValues(t, All, res)
}

func Test_SelectUnsupported(t *testing.T) {
	_, err := Select("foo", false)
	require.Error(t, err)
	ute, ok := err.(*UnsupportedTargetError)
	require.True(t, ok)
	assert.EqualValues(t, []string{"foo"}, ute.Invalid)
	assert.Contains(t, err.Error(), "foo")
	assert.Contains(t, err.Error(), "ts,js,java,objc,cpp")
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = Select("ts,jav,swift", false)
	require.Error(t, err)
	assert.EqualValues(t, []string{"jav", "swift"}, err.(*UnsupportedTargetError).Invalid)
	assert.Contains(t, err.Error(), "jav -> java")
}

func Test_Suggest(t *testing.T) {
	assert.EqualValues(t, "ts", Suggest("TS"))
	assert.EqualValues(t, "objc", Suggest("objc+"))
	assert.EqualValues(t, "", Suggest("rust"))
	assert.EqualValues(t, "", Suggest("c"))
}

func Test_Filename(t *testing.T) {
	assert.EqualValues(t, "JsBridge.d.ts", TypeScript.Filename("JsBridge"))
	assert.EqualValues(t, "JsBridge.js", JavaScript.Filename("JsBridge"))
	assert.EqualValues(t, "JsBridge.java", Java.Filename("JsBridge"))
	assert.EqualValues(t, "JsBridge.h", ObjectiveC.Filename("JsBridge"))
	assert.EqualValues(t, "JsBridge.hpp", CHeader.Filename("JsBridge"))
	assert.EqualValues(t, "ts,js,java,objc,cpp", SupportedList())
}
