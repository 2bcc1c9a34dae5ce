package dashboard

import (
	"context"
	"fmt"
	"time"

	"licencas/cache"
	"licencas/models"
	"licencas/report"

	"go.uber.org/zap"
)

const (
	WARNING_NO_UPCOMING = "Não há próximos vencimentos para exportar."
	WARNING_NO_EXPIRED  = "Não há licenças vencidas para exportar."
	WARNING_NO_MATCH    = "Nenhuma licença corresponde aos filtros selecionados."
)

// Request é um evento de mudança de filtro: a sessão e o que está selecionado.
type Request struct {
	Session string
	Filter  report.Filter
}

// Page é tudo o que o painel mostra para um Request.
type Page struct {
	Session     string               `json:"sessao"`
	Today       string               `json:"hoje"`
	Summary     report.Summary       `json:"resumo"`
	Upcoming    report.View          `json:"proximos_vencimentos"`
	Expired     report.View          `json:"licencas_vencidas"`
	Types       report.TypeCount     `json:"tipos"`
	Options     report.FilterOptions `json:"filtros"`
	Filter      report.Filter        `json:"selecao"`
	Filtered    models.LicenseTable  `json:"licencas_filtradas"`
	Warnings    []string             `json:"avisos"`
	GeneratedAt time.Time            `json:"gerado_em"`
}

// CanExport indica se a visão tem linhas (o botão de exportar só aparece nesse caso).
func (p *Page) CanExport(kind report.Kind) bool {
	switch kind {
	case report.KindUpcoming:
		return !p.Upcoming.Empty()
	case report.KindExpired:
		return !p.Expired.Empty()
	}
	return false
}

// Service recalcula o painel a cada Request a partir do snapshot da sessão.
type Service struct {
	snapshots *cache.Snapshots
	location  *time.Location
	limit     int
	now       func() time.Time
}

func NewService(snapshots *cache.Snapshots, location *time.Location, limit int) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{snapshots: snapshots, location: location, limit: limit, now: time.Now}
}

// Today é a data de hoje no fuso configurado.
func (s *Service) Today() time.Time {
	return report.Today(s.now().In(s.location))
}

func (s *Service) Limit() int {
	return s.limit
}

func (s *Service) table(ctx context.Context, session string) (models.LicenseTable, error) {
	return s.snapshots.Get(ctx, session)
}

// Render: carrega o snapshot, recalcula as visões derivadas e devolve a página.
func (s *Service) Render(ctx context.Context, req Request) (*Page, error) {
	session := cache.SessionKey(req.Session)
	table, err := s.table(ctx, session)
	if err != nil {
		return nil, err
	}

	today := s.Today()
	upcoming, expired, err := report.Split(table, today)
	if err != nil {
		zap.L().Warn("dashboard: render failed", zap.String("session", session), zap.Error(err))
		return nil, err
	}
	types := report.TypeCounts(table)
	filtered := report.Apply(table, req.Filter)

	page := &Page{
		Session: session,
		Today:   today.Format(models.DATE_LAYOUT),
		Summary: report.Summary{
			Total:    len(table),
			Upcoming: upcoming.Len(),
			Expired:  expired.Len(),
			Types:    len(types),
		},
		Upcoming:    upcoming.Head(s.limit),
		Expired:     expired.Head(s.limit),
		Types:       types,
		Options:     report.Options(table),
		Filter:      req.Filter,
		Filtered:    filtered,
		Warnings:    []string{},
		GeneratedAt: s.now(),
	}
	if upcoming.Empty() {
		page.Warnings = append(page.Warnings, WARNING_NO_UPCOMING)
	}
	if expired.Empty() {
		page.Warnings = append(page.Warnings, WARNING_NO_EXPIRED)
	}
	if len(filtered) == 0 {
		page.Warnings = append(page.Warnings, WARNING_NO_MATCH)
	}
	return page, nil
}

// View devolve a visão completa (sem corte) para exportação.
func (s *Service) View(ctx context.Context, session string, kind report.Kind) (report.View, error) {
	table, err := s.table(ctx, session)
	if err != nil {
		return report.View{}, err
	}
	upcoming, expired, err := report.Split(table, s.Today())
	if err != nil {
		return report.View{}, err
	}
	switch kind {
	case report.KindUpcoming:
		return upcoming, nil
	case report.KindExpired:
		return expired, nil
	}
	return report.View{}, fmt.Errorf("visão desconhecida: %q", kind)
}

// Summary devolve as métricas do topo do painel e a contagem por tipo.
func (s *Service) Summary(ctx context.Context, session string) (report.Summary, report.TypeCount, error) {
	table, err := s.table(ctx, session)
	if err != nil {
		return report.Summary{}, nil, err
	}
	summary, err := report.Summarize(table, s.Today())
	if err != nil {
		return report.Summary{}, nil, err
	}
	return summary, report.TypeCounts(table), nil
}

func (s *Service) TypeCounts(ctx context.Context, session string) (report.TypeCount, error) {
	table, err := s.table(ctx, session)
	if err != nil {
		return nil, err
	}
	return report.TypeCounts(table), nil
}

// Filtered aplica o filtro ao snapshot inteiro.
func (s *Service) Filtered(ctx context.Context, req Request) (models.LicenseTable, report.FilterOptions, error) {
	table, err := s.table(ctx, req.Session)
	if err != nil {
		return nil, report.FilterOptions{}, err
	}
	return report.Apply(table, req.Filter), report.Options(table), nil
}

// Invalidate força uma nova leitura do banco no próximo Render da sessão.
func (s *Service) Invalidate(ctx context.Context, session string) error {
	return s.snapshots.Invalidate(ctx, session)
}
