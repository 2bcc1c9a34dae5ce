package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"licencas/loader"
	"licencas/models"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DEFAULT_SESSION = "default"

// chave única no singleflight: uma leitura do banco por vez, qualquer que seja a sessão
const loadKey = "load"

// Store guarda um snapshot imutável da tabela por sessão.
type Store interface {
	Get(ctx context.Context, session string) (models.LicenseTable, bool, error)
	Set(ctx context.Context, session string, table models.LicenseTable) error
	Invalidate(ctx context.Context, session string) error
}

// Snapshots combina um Store com o Loader. Sessão nova recebe o último snapshot lido
// (imutável, compartilhado); o banco só é consultado na primeira leitura do processo
// ou depois de Invalidate.
type Snapshots struct {
	store  Store
	loader loader.Loader
	group  singleflight.Group

	mu        sync.RWMutex
	latest    models.LicenseTable
	hasLatest bool
}

func NewSnapshots(store Store, l loader.Loader) *Snapshots {
	return &Snapshots{store: store, loader: l}
}

// SessionKey normaliza o identificador de sessão vindo do cliente.
func SessionKey(session string) string {
	session = strings.TrimSpace(session)
	if session == "" {
		return DEFAULT_SESSION
	}
	return session
}

func (s *Snapshots) Get(ctx context.Context, session string) (models.LicenseTable, error) {
	session = SessionKey(session)

	table, ok, err := s.store.Get(ctx, session)
	if err != nil {
		// cache fora do ar não derruba o painel: segue direto para o banco
		zap.L().Warn("cache: get error", zap.String("session", session), zap.Error(err))
	} else if ok {
		return table, nil
	}

	loaded, ok := s.shared()
	if !ok {
		v, err, _ := s.group.Do(loadKey, func() (any, error) {
			// a carga é compartilhada: não pode morrer junto com o request de quem chegou primeiro
			table, err := s.loader.Load(context.WithoutCancel(ctx))
			if err != nil {
				return nil, err
			}
			return s.share(table), nil
		})
		if err != nil {
			return nil, fmt.Errorf("snapshot %q: %w", session, err)
		}
		loaded = v.(models.LicenseTable)
	}
	if err := s.store.Set(ctx, session, loaded); err != nil {
		zap.L().Warn("cache: set error", zap.String("session", session), zap.Error(err))
	}
	return loaded.Clone(), nil
}

func (s *Snapshots) shared() (models.LicenseTable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.hasLatest
}

func (s *Snapshots) share(table models.LicenseTable) models.LicenseTable {
	table = table.Clone()
	s.mu.Lock()
	s.latest, s.hasLatest = table, true
	s.mu.Unlock()
	return table
}

// Invalidate descarta o snapshot; a próxima leitura da sessão vai ao banco.
// Sessões que já têm snapshot continuam com o delas.
func (s *Snapshots) Invalidate(ctx context.Context, session string) error {
	session = SessionKey(session)
	zap.L().Info("cache: invalidate", zap.String("session", session))

	s.mu.Lock()
	s.latest, s.hasLatest = nil, false
	s.mu.Unlock()
	return s.store.Invalidate(ctx, session)
}
