package cache

import (
	"context"
	"fmt"
	"time"

	"licencas/models"

	lru "github.com/hashicorp/golang-lru"
)

// DEFAULT_MAX_SESSIONS limita quantas sessões ficam em memória; a menos usada sai primeiro.
const DEFAULT_MAX_SESSIONS = 256

type memoryEntry struct {
	table   models.LicenseTable
	expires time.Time
}

// MemoryStore mantém os snapshots no processo num LRU de tamanho fixo.
// ttl 0 = só expira por Invalidate ou por despejo do LRU.
type MemoryStore struct {
	entries *lru.Cache
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	m, _ := NewMemoryStoreSize(ttl, DEFAULT_MAX_SESSIONS)
	return m
}

// NewMemoryStoreSize cria o store com no máximo size sessões.
func NewMemoryStoreSize(ttl time.Duration, size int) (*MemoryStore, error) {
	if size <= 0 {
		size = DEFAULT_MAX_SESSIONS
	}
	entries, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &MemoryStore{entries: entries, ttl: ttl, now: time.Now}, nil
}

func (m *MemoryStore) Get(_ context.Context, session string) (models.LicenseTable, bool, error) {
	v, ok := m.entries.Get(session)
	if !ok {
		return nil, false, nil
	}
	e := v.(memoryEntry)
	if !e.expires.IsZero() && m.now().After(e.expires) {
		m.entries.Remove(session)
		return nil, false, nil
	}
	return e.table.Clone(), true, nil
}

func (m *MemoryStore) Set(_ context.Context, session string, table models.LicenseTable) error {
	e := memoryEntry{table: table.Clone()}
	if e.table == nil {
		e.table = models.LicenseTable{}
	}
	if m.ttl > 0 {
		e.expires = m.now().Add(m.ttl)
	}
	m.entries.Add(session, e)
	return nil
}

func (m *MemoryStore) Invalidate(_ context.Context, session string) error {
	m.entries.Remove(session)
	return nil
}

// Len é o número de sessões guardadas.
func (m *MemoryStore) Len() int {
	return m.entries.Len()
}
