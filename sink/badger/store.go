// Package badger implements a local BadgerDB-backed pair table.
//
// It serves as an offline destination: runs without Airtable access land
// their pairs here, and the stored records can be listed for inspection or
// later export.
package badger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"github.com/poiesic/qaforge/core"
	"github.com/poiesic/qaforge/sink"
)

const defaultSequenceBandwidth = 100

// Store is a sink.Sink writing pair records to a local BadgerDB table.
type Store struct {
	db     *badger.DB
	idSeq  *badger.Sequence
	logger *slog.Logger
}

var _ sink.Sink = (*Store)(nil)

// badgerLoggerAdapter adapts slog.Logger to badger.Logger interface.
type badgerLoggerAdapter struct {
	logger *slog.Logger
}

var _ badger.Logger = (*badgerLoggerAdapter)(nil)

func (bl *badgerLoggerAdapter) Errorf(msg string, items ...any) {
	bl.logger.Error(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Warningf(msg string, items ...any) {
	bl.logger.Warn(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Infof(msg string, items ...any) {
	bl.logger.Info(fmt.Sprintf(msg, items...))
}

func (bl *badgerLoggerAdapter) Debugf(msg string, items ...any) {
	bl.logger.Debug(fmt.Sprintf(msg, items...))
}

// OpenStore opens a BadgerDB pair table at the specified path.
// Creates the directory if it doesn't exist.
func OpenStore(filePath string, inMemory bool) (*Store, error) {
	var opts badger.Options

	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		info, err := os.Stat(filePath)
		if err != nil {
			if os.IsNotExist(err) {
				if err := os.MkdirAll(filePath, 0755); err != nil {
					return nil, err
				}
				info, err = os.Stat(filePath)
				if err != nil {
					return nil, err
				}
			} else {
				return nil, err
			}
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", filePath)
		}
		opts = badger.DefaultOptions(filePath)
	}

	opts.Logger = &badgerLoggerAdapter{logger: slog.Default()}
	opts.Compression = options.None

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	idSeq, err := db.GetSequence([]byte(pairRecordIDSeq), defaultSequenceBandwidth)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		idSeq:  idSeq,
		logger: slog.Default().With("component", "badger-sink"),
	}, nil
}

// withTx executes a function within a BadgerDB transaction.
// The transaction is automatically discarded if fn returns an error.
func (s *Store) withTx(fn func(tx *badger.Txn) error, isWrite bool) error {
	tx := s.db.NewTransaction(isWrite)
	defer tx.Discard()
	return fn(tx)
}

// Put appends one pair as a new record with a sequence-generated ID.
// Identical pairs get distinct records: the table is append-only and
// deliberately does not deduplicate.
func (s *Store) Put(ctx context.Context, pair core.QAPair) error {
	if err := core.ValidateQAPair(&pair); err != nil {
		return err
	}

	return s.withTx(func(tx *badger.Txn) error {
		nextID, err := s.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = s.idSeq.Next()
			if err != nil {
				return err
			}
		}

		record := core.PairRecord{
			Id:         core.ID(nextID),
			Question:   pair.Question,
			Answer:     pair.Answer,
			InsertedAt: time.Now().UTC(),
		}

		if err := tx.Set(makePairRecordKey(record.Id), MarshalPairRecord(&record)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Records returns all stored pair records ordered by ID.
func (s *Store) Records(ctx context.Context) ([]*core.PairRecord, error) {
	var records []*core.PairRecord

	err := s.withTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = pairRecordKeyPrefix()
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			err := item.Value(func(val []byte) error {
				record, err := UnmarshalPairRecord(val)
				if err != nil {
					return err
				}
				records = append(records, record)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}

	// Keys are text-formatted, so iteration order is lexicographic; restore
	// numeric insertion order.
	slices.SortFunc(records, func(a, b *core.PairRecord) int {
		if a.Id < b.Id {
			return -1
		}
		if a.Id > b.Id {
			return 1
		}
		return 0
	})

	return records, nil
}

// Close releases the ID sequence and closes the database.
func (s *Store) Close() error {
	if err := s.idSeq.Release(); err != nil {
		s.logger.Warn("failed to release id sequence", "err", err)
	}
	return s.db.Close()
}
