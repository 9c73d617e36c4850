package kv

import (
	"context"
	"fmt"

	memdb "github.com/hashicorp/go-memdb"
)

const memTable = "entries"

type memEntry struct {
	Key   string
	Value string
}

// MemStore keeps everything in process memory. Writes are committed
// transactions, readers see either the old or the new value.
type MemStore struct {
	db *memdb.MemDB
}

func NewMemStore() (*MemStore, error) {
	schema := &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			memTable: {
				Name: memTable,
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		return nil, fmt.Errorf("new memdb: %w", err)
	}
	return &MemStore{db: db}, nil
}

func (s *MemStore) Get(_ context.Context, key string) (string, bool, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()
	raw, err := txn.First(memTable, "id", key)
	if err != nil {
		return "", false, fmt.Errorf("memdb get %s: %w", key, err)
	}
	if raw == nil {
		return "", false, nil
	}
	return raw.(*memEntry).Value, true, nil
}

func (s *MemStore) Set(_ context.Context, key, value string) error {
	txn := s.db.Txn(true)
	if err := txn.Insert(memTable, &memEntry{Key: key, Value: value}); err != nil {
		txn.Abort()
		return fmt.Errorf("memdb set %s: %w", key, err)
	}
	txn.Commit()
	return nil
}

func (s *MemStore) Remove(_ context.Context, keys ...string) error {
	txn := s.db.Txn(true)
	for _, key := range keys {
		if _, err := txn.DeleteAll(memTable, "id", key); err != nil {
			txn.Abort()
			return fmt.Errorf("memdb delete %s: %w", key, err)
		}
	}
	txn.Commit()
	return nil
}

func (s *MemStore) Keys(_ context.Context, prefix string) ([]string, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()
	it, err := txn.Get(memTable, "id_prefix", prefix)
	if err != nil {
		return nil, fmt.Errorf("memdb scan: %w", err)
	}
	out := []string{}
	for raw := it.Next(); raw != nil; raw = it.Next() {
		out = append(out, raw.(*memEntry).Key)
	}
	return out, nil
}

func (s *MemStore) Close() error { return nil }
