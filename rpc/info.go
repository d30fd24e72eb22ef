package rpc

import (
	"time"

	"github.com/MixinNetwork/rational/config"
	"github.com/VictoriaMetrics/fastcache"
)

type BootState struct {
	Version   string `msgpack:"V"`
	Count     int    `msgpack:"C"`
	Timestamp int64  `msgpack:"T"`
}

const BootStateKey = "boot"

func (impl *R) getInfo() (map[string]interface{}, error) {
	var stats fastcache.Stats
	impl.cache.UpdateStats(&stats)
	info := map[string]interface{}{
		"version":  config.BuildVersion,
		"uptime":   time.Since(impl.startAt).String(),
		"equality": impl.Custom.Node.Equality,
		"cache": map[string]interface{}{
			"entries": stats.EntriesCount,
			"gets":    stats.GetCalls,
			"misses":  stats.Misses,
		},
	}
	if impl.Store == nil {
		return info, nil
	}
	var boot BootState
	found, err := impl.Store.StateGet(BootStateKey, &boot)
	if err != nil {
		return info, err
	}
	if found {
		info["boot"] = map[string]interface{}{
			"version":   boot.Version,
			"count":     boot.Count,
			"timestamp": time.Unix(0, boot.Timestamp),
		}
	}
	return info, nil
}
