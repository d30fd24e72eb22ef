package config

const (
	Debug        = true
	BuildVersion = "v0.1.0-BUILD_VERSION"

	DefaultRPCPort   = 6870
	DefaultCacheSize = 16
	MaxOperandBytes  = 4096

	EqualityExact = "exact"
	EqualityFloat = "float"
)
