package cache

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"licencas/loader"
	"licencas/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() models.LicenseTable {
	return models.LicenseTable{
		{ID: 1, Number: "LO-1", Type: "LO", Status: "Vigente", ValidUntil: models.ParseDate("2027-01-01"), IssuedAt: models.ParseDate("2023-01-01")},
		{ID: 2, Number: "LP-2", Type: "LP", Status: "Vencida", ValidUntil: models.ParseDate("2025-06-30")},
	}
}

type countingLoader struct {
	calls atomic.Int32
	table models.LicenseTable
	err   error
}

func (c *countingLoader) Load(context.Context) (models.LicenseTable, error) {
	c.calls.Add(1)
	return c.table, c.err
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (models.LicenseTable, bool, error) {
	return nil, false, errors.New("conexão recusada")
}
func (brokenStore) Set(context.Context, string, models.LicenseTable) error {
	return errors.New("conexão recusada")
}
func (brokenStore) Invalidate(context.Context, string) error { return nil }

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb, ttl), mr
}

func TestStores(t *testing.T) {
	redisStore, _ := newRedisStore(t, 0)
	stores := map[string]Store{
		"memory": NewMemoryStore(0),
		"redis":  redisStore,
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := store.Get(ctx, "s1")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set(ctx, "s1", sampleTable()))
			got, ok, err := store.Get(ctx, "s1")
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, sampleTable(), got)

			_, ok, err = store.Get(ctx, "s2")
			require.NoError(t, err)
			assert.False(t, ok, "sessões não compartilham snapshot")

			require.NoError(t, store.Invalidate(ctx, "s1"))
			_, ok, err = store.Get(ctx, "s1")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, store.Set(ctx, "vazio", nil))
			got, ok, err = store.Get(ctx, "vazio")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestMemoryStore_TTL(t *testing.T) {
	now := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	store := NewMemoryStore(time.Minute)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "s", sampleTable()))

	_, ok, _ := store.Get(ctx, "s")
	assert.True(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok, _ = store.Get(ctx, "s")
	assert.False(t, ok)
}

func TestMemoryStore_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(0)
	table := sampleTable()
	require.NoError(t, store.Set(ctx, "s", table))

	table[0].Number = "alterado"
	got, _, _ := store.Get(ctx, "s")
	assert.Equal(t, "LO-1", got[0].Number)

	got[1].Status = "alterado"
	again, _, _ := store.Get(ctx, "s")
	assert.Equal(t, "Vencida", again[1].Status)
}

func TestRedisStore_TTLAndCorruption(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "s", sampleTable()))
	assert.Equal(t, time.Minute, mr.TTL(key("s")))

	mr.FastForward(2 * time.Minute)
	_, ok, err := store.Get(ctx, "s")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, mr.Set(key("quebrado"), "{not json"))
	_, _, err = store.Get(ctx, "quebrado")
	assert.Error(t, err)
}

func TestSnapshots_LoadsOnce(t *testing.T) {
	l := &countingLoader{table: sampleTable()}
	store := NewMemoryStore(0)
	snaps := NewSnapshots(store, l)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		got, err := snaps.Get(ctx, "painel")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	}
	assert.EqualValues(t, 1, l.calls.Load())

	// sessão nova reaproveita o último snapshot lido
	_, err := snaps.Get(ctx, "outra")
	require.NoError(t, err)
	assert.EqualValues(t, 1, l.calls.Load())

	l.table = sampleTable()[:1]
	require.NoError(t, snaps.Invalidate(ctx, "painel"))
	got, err := snaps.Get(ctx, "painel")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 2, l.calls.Load())

	// "outra" segue com o snapshot dela até invalidar
	got, err = snaps.Get(ctx, "outra")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = snaps.Get(ctx, "terceira")
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.EqualValues(t, 2, l.calls.Load())
}

func TestSnapshots_ManySessionsBounded(t *testing.T) {
	l := &countingLoader{table: sampleTable()}
	store, err := NewMemoryStoreSize(0, 16)
	require.NoError(t, err)
	snaps := NewSnapshots(store, l)

	for i := 0; i < 200; i++ {
		_, err := snaps.Get(context.Background(), fmt.Sprintf("sessao-%d", i))
		require.NoError(t, err)
	}
	assert.EqualValues(t, 1, l.calls.Load())
	assert.Equal(t, 16, store.Len())

	// a mais antiga foi despejada, a mais recente continua
	_, ok, _ := store.Get(context.Background(), "sessao-0")
	assert.False(t, ok)
	_, ok, _ = store.Get(context.Background(), "sessao-199")
	assert.True(t, ok)
}

func TestSnapshots_LoadSurvivesCallerCancel(t *testing.T) {
	l := loader.LoaderFunc(func(ctx context.Context) (models.LicenseTable, error) {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", loader.ErrDataAccess, err)
		}
		return sampleTable(), nil
	})
	snaps := NewSnapshots(NewMemoryStore(0), l)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	got, err := snaps.Get(ctx, "s")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSnapshots_DefaultSession(t *testing.T) {
	l := &countingLoader{table: sampleTable()}
	snaps := NewSnapshots(NewMemoryStore(0), l)

	_, err := snaps.Get(context.Background(), "  ")
	require.NoError(t, err)
	_, err = snaps.Get(context.Background(), DEFAULT_SESSION)
	require.NoError(t, err)
	assert.EqualValues(t, 1, l.calls.Load())
}

func TestSnapshots_LoaderError(t *testing.T) {
	l := &countingLoader{err: loader.ErrDataAccess}
	snaps := NewSnapshots(NewMemoryStore(0), l)

	_, err := snaps.Get(context.Background(), "s")
	require.Error(t, err)
	assert.ErrorIs(t, err, loader.ErrDataAccess)

	// falha não fica em cache
	l.err = nil
	l.table = sampleTable()
	got, err := snaps.Get(context.Background(), "s")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSnapshots_StoreDown(t *testing.T) {
	l := &countingLoader{table: sampleTable()}
	snaps := NewSnapshots(brokenStore{}, l)

	got, err := snaps.Get(context.Background(), "s")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
