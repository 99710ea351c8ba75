package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/port"
	"github.com/syndtr/goleveldb/leveldb"
	ldbstorage "github.com/syndtr/goleveldb/leveldb/storage"
)

var _ port.Snapshot = (*KV)(nil)

// KV persists JSON snapshots in a local leveldb database. Each store
// owns its key exclusively and rewrites the whole value on mutation.
type KV struct {
	db *leveldb.DB
}

func Open(path string) (KV, error) {
	const op = "storage.Open"
	log := slog.With("op", op)

	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return KV{}, fmt.Errorf("%s: storage is unavailable: %w", op, err)
	}
	log.Info("storage is available", "path", path)
	return KV{db}, nil
}

// OpenMemory backs the store with process memory. Used in tests.
func OpenMemory() KV {
	db, _ := leveldb.Open(ldbstorage.NewMemStorage(), nil)
	return KV{db}
}

func (s KV) Load(key string, v any) (bool, error) {
	const op = "KV.Load"

	data, err := s.db.Get([]byte(key), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %w", op, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		// an unreadable snapshot counts as an empty default
		slog.Warn("dropping unparseable snapshot",
			"op", op, "key", key, "err", err)
		return false, nil
	}
	return true, nil
}

func (s KV) Save(key string, v any) error {
	const op = "KV.Save"

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.db.Put([]byte(key), data, nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s KV) Delete(key string) error {
	const op = "KV.Delete"

	if err := s.db.Delete([]byte(key), nil); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s KV) Close() {
	const op = "KV.Close"
	log := slog.With("op", op)

	log.Info("closing storage...")

	if err := s.db.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("storage is closed")
}
