package storage

import (
	"time"

	"github.com/MixinNetwork/rational/config"
	"github.com/MixinNetwork/rational/logger"
	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
)

type BadgerStore struct {
	custom *config.Custom
	db     *badger.DB
	done   chan struct{}
}

func NewBadgerStore(custom *config.Custom, dir string) (*BadgerStore, error) {
	if custom == nil {
		custom = config.Default()
	}
	db, err := openDB(dir, custom.Storage.InMemory)
	if err != nil {
		return nil, err
	}
	store := &BadgerStore{
		custom: custom,
		db:     db,
		done:   make(chan struct{}),
	}
	if custom.Storage.ValueLogGC && !custom.Storage.InMemory {
		go store.loopValueLogGC()
	}
	return store, nil
}

func (store *BadgerStore) Close() error {
	select {
	case <-store.done:
		return nil
	default:
		close(store.done)
	}
	return store.db.Close()
}

func openDB(dir string, memory bool) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	if memory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	}
	opts = opts.WithSyncWrites(true)
	opts = opts.WithCompression(options.None)
	opts = opts.WithBlockCacheSize(0)
	opts = opts.WithIndexCacheSize(0)
	opts = opts.WithLoggingLevel(badger.WARNING)
	opts = opts.WithBaseLevelSize(16 << 20)
	return badger.Open(opts)
}

func (store *BadgerStore) loopValueLogGC() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-store.done:
			return
		case <-ticker.C:
		}
		lsm, vlog := store.db.Size()
		logger.Verbosef("Badger LSM %d VLOG %d\n", lsm, vlog)
		if lsm > 1024*1024*8 || vlog > 1024*1024*32 {
			err := store.db.RunValueLogGC(0.5)
			logger.Verbosef("Badger RunValueLogGC %v\n", err)
		}
	}
}
