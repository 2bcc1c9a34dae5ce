package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"licencas/models"

	"github.com/jinzhu/gorm"
	"go.uber.org/zap"
)

// ErrDataAccess indica falha de conexão ou de consulta. Não há retry: quem chama decide.
var ErrDataAccess = errors.New("falha de acesso aos dados")

// Loader lê a tabela de licenças inteira.
type Loader interface {
	Load(ctx context.Context) (models.LicenseTable, error)
}

// ConnectFunc abre a conexão com o banco (db.Connect em produção).
type ConnectFunc func() (*gorm.DB, error)

// GormLoader faz um único SELECT * FROM licencas. A conexão pode ser aberta só no
// primeiro Load: enquanto o banco estiver fora, cada Load tenta conectar de novo.
type GormLoader struct {
	mu      sync.Mutex
	db      *gorm.DB
	connect ConnectFunc
	table   string
}

func NewGormLoader(db *gorm.DB) *GormLoader {
	return &GormLoader{db: db, table: models.LICENSE_TABLE}
}

// NewLazyGormLoader não toca no banco até o primeiro Load (ou Ping).
func NewLazyGormLoader(connect ConnectFunc) *GormLoader {
	return &GormLoader{connect: connect, table: models.LICENSE_TABLE}
}

func (l *GormLoader) conn() (*gorm.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.db != nil {
		return l.db, nil
	}
	if l.connect == nil {
		return nil, fmt.Errorf("%w: banco não configurado", ErrDataAccess)
	}
	db, err := l.connect()
	if err != nil {
		zap.L().Warn("loader: banco indisponível", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}
	if db == nil {
		return nil, fmt.Errorf("%w: banco não configurado", ErrDataAccess)
	}
	l.db = db
	return db, nil
}

// Ping conecta se preciso e verifica o banco (usado pelo /health).
func (l *GormLoader) Ping(ctx context.Context) error {
	db, err := l.conn()
	if err != nil {
		return err
	}
	return ping(ctx, db)
}

func ping(ctx context.Context, db *gorm.DB) error {
	if sqlDB := db.DB(); sqlDB != nil {
		if err := sqlDB.PingContext(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrDataAccess, err)
		}
	}
	return nil
}

func (l *GormLoader) Load(ctx context.Context) (models.LicenseTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}

	db, err := l.conn()
	if err != nil {
		return nil, err
	}
	// jinzhu/gorm não propaga context; o ping usa o do request para falhar cedo.
	if err := ping(ctx, db); err != nil {
		return nil, err
	}

	var rows []models.License
	if err := db.Table(l.table).Find(&rows).Error; err != nil {
		zap.L().Error("loader: query error", zap.String("table", l.table), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrDataAccess, err)
	}

	zap.L().Debug("loader: tabela carregada", zap.String("table", l.table), zap.Int("rows", len(rows)))
	return models.LicenseTable(rows), nil
}

// Close fecha a conexão, se aberta.
func (l *GormLoader) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	return l.db.Close()
}

// LoaderFunc adapta uma função ao Loader.
type LoaderFunc func(ctx context.Context) (models.LicenseTable, error)

func (f LoaderFunc) Load(ctx context.Context) (models.LicenseTable, error) {
	return f(ctx)
}
