package internal

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int{}), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var first []int
	for v := range seq {
		first = append(first, v)
		if v == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, first)
}

func TestIterSeqFilter(t *testing.T) {
	assert := assert.New(t)

	odd := func(v int) bool { return v%2 == 1 }
	seq := IterSeqFilter(slices.Values([]int{1, 2, 3, 4, 5}), odd)
	assert.Equal([]int{1, 3, 5}, slices.Collect(seq))

	assert.Empty(slices.Collect(IterSeqFilter(slices.Values([]int{2, 4}), odd)))
}
