package database

import (
	"sync"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Handle is the process-wide database handle. It is created once at startup,
// shared by every repository and closes the pool when the last holder releases it.
type Handle struct {
	mu   sync.Mutex
	db   *gorm.DB
	refs int
}

// NewHandle takes ownership of db with one reference held by the caller.
func NewHandle(db *gorm.DB) *Handle {
	return &Handle{db: db, refs: 1}
}

// Acquire adds a reference and returns the shared *gorm.DB.
func (h *Handle) Acquire() (*gorm.DB, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.refs == 0 {
		return nil, errors.New("database handle already closed")
	}
	h.refs++
	return h.db, nil
}

// Release drops a reference. The last release closes the underlying pool.
func (h *Handle) Release() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.refs == 0 {
		return errors.New("database handle released too many times")
	}
	h.refs--
	if h.refs > 0 {
		return nil
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return errors.Wrap(err, "database handle")
	}
	return errors.Wrap(sqlDB.Close(), "close database")
}

// Refs returns the current reference count.
func (h *Handle) Refs() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.refs
}
