package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-service/internal/config"
)

// Badger keeps documents in an embedded LSM key-value directory.
type Badger struct {
	db *badger.DB
}

// NewBadger opens the database directory, or an in-memory instance when cfg.InMemory is set.
func NewBadger(cfg config.BadgerConfig, logger *zap.Logger) (*Badger, error) {
	opts := badger.DefaultOptions(cfg.Path).WithLogger(nil)
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	} else if cfg.Path == "" {
		return nil, errors.New("BADGER_PATH not provided")
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	logger.Info("opened badger store", zap.String("path", cfg.Path), zap.Bool("in_memory", cfg.InMemory))
	return &Badger{db: db}, nil
}

func (b *Badger) Load(_ context.Context, key string) (string, bool, error) {
	if b.db.IsClosed() {
		return "", false, ErrClosed
	}
	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(value), true, nil
}

func (b *Badger) Save(_ context.Context, key, value string) error {
	if b.db.IsClosed() {
		return ErrClosed
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
}

// Ping reports whether the database is still open.
func (b *Badger) Ping(context.Context) error {
	if b.db.IsClosed() {
		return ErrClosed
	}
	return nil
}

// Close flushes and closes the database.
func (b *Badger) Close() {
	if !b.db.IsClosed() {
		_ = b.db.Close()
	}
}
