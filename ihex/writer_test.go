package ihex

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failWriter struct{}

var errBroken = errors.New("broken")

func (failWriter) Write(p []byte) (int, error) {
	return 0, errBroken
}

func TestRecord(t *testing.T) {
	assert := assert.New(t)

	rec := Record{Address: 0x1000, Data: []byte{0x0f, 0xf1, 1, 2, 3}}
	assert.Equal(byte(0xe5), rec.Checksum())
	assert.Equal(":051000000FF1010203E5", rec.String())

	assert.Equal(":00000001FF", Record{Type: RECORD_EOF}.String())
}

func TestWriter_Contiguous(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	w := NewWriter(&out, 0)

	for n, b := range []byte{0x0f, 0xf1, 1, 2, 3} {
		assert.NoError(w.Emit(uint16(0x1000+n), b))
	}
	assert.Equal("", out.String())

	assert.NoError(w.Close())
	assert.Equal(":051000000FF1010203E5\n:00000001FF\n", out.String())
}

func TestWriter_Gap(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	w := NewWriter(&out, RECORD_BYTES)

	assert.NoError(w.Emit(0, 0xaa))
	assert.NoError(w.Emit(4, 0xbb))
	assert.NoError(w.Close())

	assert.Equal(":01000000AA55\n:01000400BB40\n:00000001FF\n", out.String())
}

func TestWriter_Full(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	w := NewWriter(&out, 0)

	for n := range 40 {
		assert.NoError(w.Emit(uint16(n), byte(n)))
	}
	assert.NoError(w.Close())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(3, len(lines))
	assert.True(strings.HasPrefix(lines[0], ":20000000000102"), lines[0])
	assert.True(strings.HasPrefix(lines[1], ":0800200020212223"), lines[1])
	assert.Equal(":00000001FF", lines[2])
}

func TestWriter_Wrap(t *testing.T) {
	assert := assert.New(t)

	var out strings.Builder
	w := NewWriter(&out, 4)

	assert.NoError(w.Emit(0xffff, 1))
	assert.NoError(w.Emit(0x0000, 2))
	assert.NoError(w.Close())

	assert.Equal(":01FFFF000100\n:0100000002FD\n:00000001FF\n", out.String())
}

func TestWriter_Error(t *testing.T) {
	assert := assert.New(t)

	w := NewWriter(failWriter{}, 2)

	assert.NoError(w.Emit(0, 1))
	assert.NoError(w.Emit(1, 2))
	assert.ErrorIs(w.Emit(2, 3), errBroken)
	assert.ErrorIs(w.Emit(3, 4), errBroken)
	assert.ErrorIs(w.Flush(), errBroken)
	assert.ErrorIs(w.Close(), errBroken)
}
