// SPDX-License-Identifier: MIT

// Package cache persists minimum ECD sizes in BadgerDB so repeated runs
// over the same graph collection skip the search.
//
// Entries are keyed by algorithm and by the labelled graph: relabelling
// vertices gives a different key. Infeasible graphs are cached as -1 like
// any other size.
package cache

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/katalvlaran/evencycle/core"
)

const keyPrefix = "ecd/v1/"

// Config holds configuration for a Store.
type Config struct {
	// Path is the database directory. Ignored when InMemory is true.
	Path string

	// InMemory keeps everything in RAM; used by tests.
	InMemory bool

	// SyncWrites fsyncs every write.
	SyncWrites bool

	// Logger receives BadgerDB's own messages. Nil silences them.
	Logger *slog.Logger

	// GCDiscardRatio is the value-log garbage ratio that triggers a
	// rewrite in CollectGarbage.
	GCDiscardRatio float64
}

// DefaultConfig returns a durable on-disk configuration at path.
func DefaultConfig(path string) Config {
	return Config{
		Path:           path,
		SyncWrites:     true,
		GCDiscardRatio: 0.5,
	}
}

// InMemoryConfig returns a configuration without disk I/O.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to BadgerDB's Logger interface.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Store is a size cache. It is safe for concurrent use.
type Store struct {
	db  *badger.DB
	cfg Config
}

// Open opens or creates the store described by cfg.
func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("cache: path is required for a persistent store")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, errors.Wrapf(err, "cache: create directory %s", cfg.Path)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)
	if cfg.Logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: cfg.Logger})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "cache: open badger database")
	}

	return &Store{db: db, cfg: cfg}, nil
}

// Key returns the cache key of g under algorithm. It covers the vertex set
// and the edge multiset; edge IDs and insertion order do not matter.
func Key(algorithm string, g *core.Graph) []byte {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00", algorithm)
	for _, v := range g.Vertices() {
		fmt.Fprintf(h, "v%s\x00", v)
	}
	pairs := make([]string, 0, g.EdgeCount())
	for _, e := range g.Edges() {
		a, b := e.From, e.To
		if b < a {
			a, b = b, a
		}
		pairs = append(pairs, a+"\x00"+b)
	}
	sort.Strings(pairs)
	for _, p := range pairs {
		fmt.Fprintf(h, "e%s\x00", p)
	}

	return append([]byte(keyPrefix), h.Sum(nil)...)
}

// Get returns the cached size under key. ok is false on a miss.
func (s *Store) Get(key []byte) (size int, ok bool, err error) {
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			n, err := strconv.Atoi(string(val))
			if err != nil {
				return errors.Wrapf(err, "corrupt entry %q", val)
			}
			size, ok = n, true
			return nil
		})
	})
	if err != nil {
		return 0, false, errors.Wrap(err, "cache: get")
	}

	return size, ok, nil
}

// Put stores size under key, replacing any previous entry.
func (s *Store) Put(key []byte, size int) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, []byte(strconv.Itoa(size)))
	})

	return errors.Wrap(err, "cache: put")
}

// CollectGarbage rewrites value-log files whose garbage exceeds the
// configured ratio. It is a no-op in memory.
func (s *Store) CollectGarbage() error {
	if s.cfg.InMemory || s.cfg.GCDiscardRatio <= 0 {
		return nil
	}
	for {
		err := s.db.RunValueLogGC(s.cfg.GCDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "cache: value log gc")
		}
	}
}

// Close flushes and closes the database.
func (s *Store) Close() error {
	return errors.Wrap(s.db.Close(), "cache: close")
}
