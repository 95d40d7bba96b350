package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/eonasm/asm"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("test.star", `
_kib = 1024
max_errors = 16
max_labels = 4 * _kib
max_code = 512
record_bytes = 16
defines = {
    "RAM": 0x8000,
    "RAM_SIZE": 32 * _kib,
    "MINUS": -1,
}
print("loaded")
`)
	assert.NoError(err)

	expected := asm.DefaultLimits()
	expected.MaxErrors = 16
	expected.MaxLabels = 4096
	expected.MaxCode = 512
	expected.RecordBytes = 16
	assert.Equal(expected, cfg.Limits)

	assert.Equal(map[string]uint32{
		"RAM":      0x8000,
		"RAM_SIZE": 0x8000,
		"MINUS":    0xffffffff,
	}, cfg.Defines)
}

func TestLoad_Empty(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("empty.star", "")
	assert.NoError(err)
	assert.Equal(Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	tests := map[string]error{
		"bogus = 1":                    ErrConfigKey("bogus"),
		"max_errors = 'many'":          ErrConfigValue("max_errors"),
		"max_errors = 0":               ErrConfigRange("max_errors"),
		"record_bytes = 300":           ErrConfigRange("record_bytes"),
		"defines = [1]":                ErrConfigValue("defines"),
		"defines = {'X': 'y'}":         ErrConfigValue("X"),
		"defines = {'X': 0x100000000}": ErrConfigRange("X"),
		"defines = {1: 2}":             ErrConfigKey("1"),
	}

	for src, expected := range tests {
		_, err := Load("test.star", src)
		assert.Equal(expected, err, src)
	}

	_, err := Load("test.star", "max_errors = ")
	assert.Error(err)
}
