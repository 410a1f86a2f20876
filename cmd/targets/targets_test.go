package targets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Rows(t *testing.T) {
	rows := Rows("JsBridge")
	assert.Len(t, rows, 5)
	for _, row := range rows {
		assert.Len(t, row, len(Headers))
	}

	assert.EqualValues(t, "ts", rows[0][0])
	assert.EqualValues(t, "JsBridge.d.ts", rows[0][2])
	assert.EqualValues(t, "any", rows[0][3])

	assert.EqualValues(t, "cpp", rows[4][0])
	assert.EqualValues(t, "JsBridge.hpp", rows[4][2])
	assert.EqualValues(t, "void *", rows[4][3])
}
