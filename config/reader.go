package config

import (
	"fmt"
	"os"

	"github.com/MixinNetwork/rational/logger"
	"github.com/pelletier/go-toml"
)

type Custom struct {
	Node struct {
		DataDir         string `toml:"data-dir"`
		MemoryCacheSize int    `toml:"memory-cache-size"`
		Equality        string `toml:"equality"`
	} `toml:"node"`
	Storage struct {
		ValueLogGC bool `toml:"value-log-gc"`
		InMemory   bool `toml:"in-memory"`
	} `toml:"storage"`
	RPC struct {
		Port int `toml:"port"`
	} `toml:"rpc"`
	Log struct {
		Level   int    `toml:"level"`
		Filter  string `toml:"filter"`
		Limiter int    `toml:"limiter"`
	} `toml:"log"`
}

func Initialize(file string) (*Custom, error) {
	f, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(f)
}

func Parse(data []byte) (*Custom, error) {
	var config Custom
	err := toml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	config.fillDefaults()
	switch config.Node.Equality {
	case EqualityExact, EqualityFloat:
	default:
		return nil, fmt.Errorf("invalid equality mode %s", config.Node.Equality)
	}
	if config.RPC.Port < 0 || config.RPC.Port > 65535 {
		return nil, fmt.Errorf("invalid rpc port %d", config.RPC.Port)
	}
	return &config, nil
}

func Default() *Custom {
	var config Custom
	config.fillDefaults()
	return &config
}

func (c *Custom) fillDefaults() {
	if c.Node.MemoryCacheSize == 0 {
		c.Node.MemoryCacheSize = DefaultCacheSize
	}
	if c.Node.Equality == "" {
		c.Node.Equality = EqualityExact
	}
	if c.RPC.Port == 0 {
		c.RPC.Port = DefaultRPCPort
	}
	if c.Log.Level == 0 {
		c.Log.Level = logger.INFO
	}
}
