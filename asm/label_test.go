package asm

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func labelNames(seq func(func(*Label) bool)) (names []string) {
	for l := range seq {
		names = append(names, l.String())
	}
	return
}

func TestLabelTable_Find(t *testing.T) {
	assert := assert.New(t)

	lt := &LabelTable{}

	start, err := lt.Add(nil, "start", 0x100)
	assert.NoError(err)
	assert.Equal("START", start.Name)

	assert.Equal(start, lt.Find(nil, "START"))
	assert.Equal(start, lt.Find(nil, "Start"))
	assert.Nil(lt.Find(nil, "stop"))
	assert.Equal(1, lt.Globals())
	assert.Equal(0, lt.Locals())
}

func TestLabelTable_Truncate(t *testing.T) {
	assert := assert.New(t)

	lt := &LabelTable{Chars: 4}

	l, err := lt.Add(nil, "counter", 1)
	assert.NoError(err)
	assert.Equal("COUN", l.Name)
	assert.Equal(l, lt.Find(nil, "countdown"))
}

func TestLabelTable_Scope(t *testing.T) {
	assert := assert.New(t)

	lt := &LabelTable{}

	one, _ := lt.Add(nil, "one", 0x10)
	two, _ := lt.Add(nil, "two", 0x20)

	loop1, err := lt.Add(one, "loop", 0x12)
	assert.NoError(err)
	loop2, err := lt.Add(two, "loop", 0x22)
	assert.NoError(err)

	assert.Equal(loop1, lt.Find(one, "loop"))
	assert.Equal(loop2, lt.Find(two, "loop"))
	assert.Nil(lt.Find(nil, "loop"))
	assert.Equal("ONE.LOOP", loop1.String())
	assert.Equal(one, loop1.Master)

	assert.Equal(2, lt.Globals())
	assert.Equal(2, lt.Locals())
	assert.Equal([]string{"ONE", "TWO", "ONE.LOOP", "TWO.LOOP"}, labelNames(lt.All()))
}

func TestLabelTable_Capacity(t *testing.T) {
	assert := assert.New(t)

	lt := &LabelTable{Capacity: 3}

	main, err := lt.Add(nil, "main", 0)
	assert.NoError(err)
	_, err = lt.Add(main, "a", 1)
	assert.NoError(err)
	_, err = lt.Add(nil, "other", 2)
	assert.NoError(err)

	_, err = lt.Add(main, "b", 3)
	assert.ErrorIs(err, ErrLabelTableFull)
	_, err = lt.Add(nil, "more", 3)
	assert.ErrorIs(err, ErrLabelTableFull)

	lt.Reset()
	assert.Equal(0, lt.Globals())
	assert.Equal(0, lt.Locals())
	_, err = lt.Add(nil, "more", 3)
	assert.NoError(err)
}

func TestLabelTable_Observe(t *testing.T) {
	assert := assert.New(t)

	lt := &LabelTable{}

	l, _ := lt.Add(nil, "here", 4)
	assert.False(lt.Observe(l, 4))
	assert.True(lt.Observe(l, 8))
	assert.Equal(uint32(8), l.Value)

	k, _ := lt.Add(nil, "k", 5)
	k.Flags |= LABEL_EQU
	assert.True(k.Constant())
	assert.False(lt.Observe(k, 12))
	assert.Equal(uint32(5), k.Value)
}

func TestLabelTable_Unused(t *testing.T) {
	assert := assert.New(t)

	lt := &LabelTable{}

	main, _ := lt.Add(nil, "main", 0)
	loop, _ := lt.Add(main, "loop", 2)
	lt.Add(main, "skip", 4)
	other, _ := lt.Add(nil, "other", 6)

	loop.Flags |= LABEL_USED
	other.Flags |= LABEL_USED
	assert.True(loop.Used())
	assert.False(main.Used())

	assert.Equal([]string{"MAIN", "MAIN.SKIP"}, labelNames(lt.Unused()))
	assert.Equal(4, len(slices.Collect(lt.All())))
}
