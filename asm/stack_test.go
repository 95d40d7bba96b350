package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[uint32]{}
	assert.True(s.Empty())
	assert.False(s.Full())

	assert.True(s.Push(0x12345678))
	assert.False(s.Empty())
	assert.Equal(1, s.Len())
	assert.Equal(uint32(0x12345678), s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[uint32]{}
	s.Push(0x12345678)
	s.Push(0xABCDEF01)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(uint32(0xABCDEF01), val)
	assert.Equal(1, s.Len())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(uint32(0x12345678), val)
	assert.Equal(0, s.Len())

	val, ok = s.Pop()
	assert.False(ok)
	assert.Equal(uint32(0), val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[byte]{}
	_, ok := s.Peek()
	assert.False(ok)

	s.Push('+')
	s.Push('*')

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(byte('*'), val)
	assert.Equal(2, s.Len())
}

func TestStack_Limit(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int]{Limit: EXPR_DEPTH}

	for i := range EXPR_DEPTH {
		assert.False(s.Full())
		assert.True(s.Push(i))
	}

	assert.True(s.Full())
	assert.False(s.Push(EXPR_DEPTH))
	assert.Equal(EXPR_DEPTH, s.Len())
}

func TestStack_Unbounded(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[int]{}
	for i := range 1000 {
		s.Push(i)
	}
	assert.False(s.Full())
	assert.Equal(1000, s.Len())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack[uint32]{}
	s.Reset()
	assert.True(s.Empty())

	s.Push(0x12345678)
	s.Push(0xABCDEF01)
	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, s.Len())
}
