package config

import (
	"github.com/ezrec/eonasm/translate"
)

var f = translate.From

type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("unknown config key %v", string(err))
}

type ErrConfigValue string

func (err ErrConfigValue) Error() string {
	return f("config %v is not an integer", string(err))
}

type ErrConfigRange string

func (err ErrConfigRange) Error() string {
	return f("config %v out of range", string(err))
}
