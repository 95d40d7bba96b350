// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads assembler settings from a Starlark file.
//
// A configuration file assigns integer globals to override the assembler
// limits, and a `defines` dict of predefined constants:
//
//	max_errors = 16
//	max_labels = 1024
//	defines = {"RAM": 0x8000, "RAM_SIZE": 32 * 1024}
//
// Globals starting with '_' are private to the file.
package config

import (
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/eonasm/asm"
)

// Config is a loaded configuration.
type Config struct {
	Limits  asm.Limits        // Assembler limits.
	Defines map[string]uint32 // Predefined constants.
}

// limitKeys maps configuration globals to their limit field.
var limitKeys = map[string]func(lim *asm.Limits) *int{
	"max_line":     func(lim *asm.Limits) *int { return &lim.MaxLine },
	"max_code":     func(lim *asm.Limits) *int { return &lim.MaxCode },
	"max_errors":   func(lim *asm.Limits) *int { return &lim.MaxErrors },
	"max_labels":   func(lim *asm.Limits) *int { return &lim.MaxLabels },
	"label_chars":  func(lim *asm.Limits) *int { return &lim.LabelChars },
	"record_bytes": func(lim *asm.Limits) *int { return &lim.RecordBytes },
	"max_passes":   func(lim *asm.Limits) *int { return &lim.MaxPasses },
	"expr_depth":   func(lim *asm.Limits) *int { return &lim.ExprDepth },
	"expr_nesting": func(lim *asm.Limits) *int { return &lim.ExprNesting },
}

// Default returns the configuration of the classical eon assembler.
func Default() Config {
	return Config{
		Limits:  asm.DefaultLimits(),
		Defines: map[string]uint32{},
	}
}

// Load executes a Starlark configuration. src may be nil to read filename,
// or a string, []byte or io.Reader holding the program text.
func Load(filename string, src any) (cfg Config, err error) {
	cfg = Default()

	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, nil)
	if err != nil {
		return
	}

	for _, key := range globals.Keys() {
		value := globals[key]
		switch {
		case strings.HasPrefix(key, "_"):
			continue
		case key == "defines":
			err = cfg.loadDefines(value)
		default:
			field, ok := limitKeys[key]
			if !ok {
				err = ErrConfigKey(key)
				return
			}
			var limit int
			limit, err = starlark.AsInt32(value)
			if err != nil {
				err = ErrConfigValue(key)
				return
			}
			if limit <= 0 {
				err = ErrConfigRange(key)
				return
			}
			*field(&cfg.Limits) = limit
		}
		if err != nil {
			return
		}
	}

	if cfg.Limits.RecordBytes > 0xff {
		err = ErrConfigRange("record_bytes")
	}

	return
}

// loadDefines reads the `defines` dict of name to integer.
func (cfg *Config) loadDefines(value starlark.Value) (err error) {
	dict, ok := value.(*starlark.Dict)
	if !ok {
		err = ErrConfigValue("defines")
		return
	}

	for _, item := range dict.Items() {
		name, ok := starlark.AsString(item[0])
		if !ok {
			err = ErrConfigKey(item[0].String())
			return
		}
		num, ok := item[1].(starlark.Int)
		if !ok {
			err = ErrConfigValue(name)
			return
		}
		v64, ok := num.Int64()
		if !ok || v64 < -0x80000000 || v64 > 0xffffffff {
			err = ErrConfigRange(name)
			return
		}
		cfg.Defines[name] = uint32(v64)
	}

	return
}
