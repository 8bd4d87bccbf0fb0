package store

import (
	"errors"
	"sync"

	"github.com/on-the-ground/chaintable/hashtable"
	"go.uber.org/zap"
)

var ErrClosedStore = errors.New("store is closed")

var (
	_ CasStore[string] = (*InMemory[string])(nil)
	_ SetStore[string] = (*InMemory[string])(nil)
)

// InMemory is a CasStore and SetStore over a hashtable.HashTable. A single
// mutex serializes every operation.
type InMemory[K any] struct {
	mu     sync.Mutex
	table  *hashtable.HashTable[K, any]
	logger *zap.Logger
	closed bool
}

// NewInMemory returns an empty store keyed with the given hash and equality.
// A nil logger disables logging.
func NewInMemory[K any](
	hash hashtable.HashFunc[K],
	keyEqual hashtable.EqualFunc[K],
	logger *zap.Logger,
	options ...hashtable.Option,
) *InMemory[K] {
	logger = orNop(logger)
	return &InMemory[K]{
		table:  hashtable.New[K, any](hash, keyEqual, withLogger(logger, options)...),
		logger: logger,
	}
}

func NewInMemoryOf[K comparable](logger *zap.Logger, options ...hashtable.Option) *InMemory[K] {
	logger = orNop(logger)
	return &InMemory[K]{
		table:  hashtable.NewComparable[K, any](withLogger(logger, options)...),
		logger: logger,
	}
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// withLogger puts the store logger first so an explicit WithLogger option
// still wins.
func withLogger(logger *zap.Logger, options []hashtable.Option) []hashtable.Option {
	return append([]hashtable.Option{hashtable.WithLogger(logger)}, options...)
}

func (s *InMemory[K]) lock() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosedStore
	}
	return nil
}

func (s *InMemory[K]) Load(key K) (value any, ok bool, err error) {
	if err = s.lock(); err != nil {
		return
	}
	defer s.mu.Unlock()
	value, ok = s.table.Get(key)
	return
}

func (s *InMemory[K]) InsertIfAbsent(key K, value any) (inserted bool, err error) {
	if err = s.lock(); err != nil {
		return
	}
	defer s.mu.Unlock()
	if s.table.Contains(key) {
		s.logger.Debug("insert conflict", zap.Any("key", key))
		return false, nil
	}
	s.table.Put(key, value)
	return true, nil
}

func (s *InMemory[K]) CompareAndSwap(key K, old, new any) (swapped bool, err error) {
	if err = s.lock(); err != nil {
		return
	}
	defer s.mu.Unlock()
	actual, ok := s.table.Get(key)
	if !ok || !Equals(old, actual) {
		s.logger.Debug("compare and swap conflict", zap.Any("key", key), zap.Bool("present", ok))
		return false, nil
	}
	s.table.Put(key, new)
	return true, nil
}

func (s *InMemory[K]) CompareAndDelete(key K, old any) (deleted bool, err error) {
	if err = s.lock(); err != nil {
		return
	}
	defer s.mu.Unlock()
	actual, ok := s.table.Get(key)
	if !ok || !Equals(old, actual) {
		s.logger.Debug("compare and delete conflict", zap.Any("key", key), zap.Bool("present", ok))
		return false, nil
	}
	_, err = s.table.Remove(key)
	return err == nil, err
}

func (s *InMemory[K]) Get(key K) (value any, ok bool, err error) {
	return s.Load(key)
}

func (s *InMemory[K]) Set(key K, value any) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	s.table.Put(key, value)
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *InMemory[K]) Delete(key K) error {
	if err := s.lock(); err != nil {
		return err
	}
	defer s.mu.Unlock()
	if !s.table.Contains(key) {
		return nil
	}
	_, err := s.table.Remove(key)
	return err
}

func (s *InMemory[K]) Len() int {
	if err := s.lock(); err != nil {
		return 0
	}
	defer s.mu.Unlock()
	return s.table.Size()
}

// Close drops every entry, calling release on each when given, and reports the
// combined release errors. Closing twice is a no-op.
func (s *InMemory[K]) Close(release func(key K, value any) error) error {
	if err := s.lock(); err != nil {
		return nil
	}
	defer s.mu.Unlock()
	s.closed = true
	if release == nil {
		s.table.Destroy()
		return nil
	}
	return s.table.Teardown(release)
}
