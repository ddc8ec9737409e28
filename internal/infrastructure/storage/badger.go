package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"

	"arcanum.games/engine/internal/domain"
)

const (
	savePrefix = "save/"
	sessionKey = "session/current"
)

// Badger keeps save records and the session in one embedded key-value
// store: records under save/<id>, the session under session/current,
// JSON values throughout.
type Badger struct {
	db *badger.DB
}

// Config holds the store's knobs. Path is required unless InMemory.
type Config struct {
	Path       string
	InMemory   bool
	SyncWrites bool
}

// DefaultConfig is the persistent setup: synced writes under path.
func DefaultConfig(path string) Config {
	return Config{Path: path, SyncWrites: true}
}

// InMemoryConfig serves tests: no disk, no sync.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// OpenBadger opens the store, creating the directory when needed. The
// caller owns Close.
func OpenBadger(cfg Config) (*Badger, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, fmt.Errorf("%w: badger store needs a path", domain.ErrDomain)
		}
		if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
			return nil, err
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger store: %w", err)
	}
	return &Badger{db: db}, nil
}

func (s *Badger) Close() error { return s.db.Close() }

func (s *Badger) Save(ctx context.Context, rec *domain.SaveRecord) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("%w: save record needs an id", domain.ErrDomain)
	}
	val, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(savePrefix+rec.ID), val)
	})
}

func (s *Badger) Load(ctx context.Context, id string) (*domain.SaveRecord, error) {
	raw, err := s.get(savePrefix + id)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: save %q", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	var rec domain.SaveRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("%w: save %q: %v", domain.ErrCorruptSave, id, err)
	}
	return &rec, nil
}

func (s *Badger) List(ctx context.Context) ([]domain.SaveSummary, error) {
	var out []domain.SaveSummary
	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		prefix := []byte(savePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var sum domain.SaveSummary
				// Skip unreadable entries, mirroring the FS store.
				if err := json.Unmarshal(v, &sum); err == nil && sum.ID != "" {
					out = append(out, sum)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return out, err
}

func (s *Badger) Delete(ctx context.Context, id string) error {
	key := []byte(savePrefix + id)
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: save %q", domain.ErrNotFound, id)
	}
	return err
}

func (s *Badger) SaveSession(ctx context.Context, sess *domain.Session) error {
	val, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(sessionKey), val)
	})
}

func (s *Badger) LoadSession(ctx context.Context) (*domain.Session, error) {
	raw, err := s.get(sessionKey)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: nothing stored yet", domain.ErrNoSession)
	}
	if err != nil {
		return nil, err
	}
	return decodeSession(raw)
}

func (s *Badger) get(key string) ([]byte, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	return raw, err
}
