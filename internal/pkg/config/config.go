package config

import (
	"io"
	"time"
)

// Config defines a set of methods for retrieving configuration values of
// various types. Implementations handle retrieval and type conversion,
// returning zero values when a key is missing or malformed.
type Config interface {
	io.Closer

	// GetBool retrieves the value for key as a bool.
	GetBool(key string) bool

	// GetString retrieves the value for key as a string.
	GetString(key string) string

	// GetInt retrieves the value for key as an int.
	GetInt(key string) int

	// GetInt32 retrieves the value for key as an int32.
	GetInt32(key string) int32

	// GetInt64 retrieves the value for key as an int64.
	GetInt64(key string) int64

	// GetUint retrieves the value for key as a uint.
	GetUint(key string) uint

	// GetFloat64 retrieves the value for key as a float64.
	GetFloat64(key string) float64

	// GetSecond retrieves the value for key as a duration in seconds.
	GetSecond(key string) time.Duration

	// GetMinute retrieves the value for key as a duration in minutes.
	GetMinute(key string) time.Duration

	// GetHour retrieves the value for key as a duration in hours.
	GetHour(key string) time.Duration

	// GetArray retrieves the value for key as a slice of strings.
	GetArray(key string) []string
}
