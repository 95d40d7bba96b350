package translate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 of a.s", From("line %d of %v", 3, "a.s"))
}

func TestFprintf(t *testing.T) {
	assert := assert.New(t)

	var sb strings.Builder
	n, err := Fprintf(&sb, "%v: %v", "out.hex", "broken")
	assert.NoError(err)
	assert.Equal(len("out.hex: broken"), n)
	assert.Equal("out.hex: broken", sb.String())
}
