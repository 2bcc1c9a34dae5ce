package report

import (
	"strconv"

	"licencas/models"
)

type Kind string

const (
	KindUpcoming Kind = "proximos_vencimentos"
	KindExpired  Kind = "licencas_vencidas"
)

const (
	COLUMN_DAYS_REMAINING = "Dias Restantes"
	COLUMN_DAYS_OVERDUE   = "Dias Vencidos"
)

// BaseColumns são as colunas exibidas das duas visões, antes da coluna de dias.
var BaseColumns = []string{
	"numero_licenca",
	"atividade",
	"razao_social",
	"tipo_licenca",
	"data_emissao",
	"validade",
	"status",
}

// Row é uma licença projetada nas colunas de exibição + o número de dias calculado.
type Row struct {
	Number      string      `json:"numero_licenca"`
	Activity    string      `json:"atividade"`
	CompanyName string      `json:"razao_social"`
	Type        string      `json:"tipo_licenca"`
	IssuedAt    models.Date `json:"data_emissao"`
	ValidUntil  models.Date `json:"validade"`
	Status      string      `json:"status"`
	Days        int         `json:"dias"`
}

func project(l models.License, days int) Row {
	return Row{
		Number:      l.Number,
		Activity:    l.Activity,
		CompanyName: l.CompanyName,
		Type:        l.Type,
		IssuedAt:    l.IssuedAt,
		ValidUntil:  l.ValidUntil,
		Status:      l.Status,
		Days:        days,
	}
}

// Cells devolve a linha na mesma ordem de View.Columns.
func (r Row) Cells() []string {
	return []string{
		r.Number,
		r.Activity,
		r.CompanyName,
		r.Type,
		r.IssuedAt.String(),
		r.ValidUntil.String(),
		r.Status,
		strconv.Itoa(r.Days),
	}
}

// View é uma visão derivada (próximos vencimentos ou vencidas), ordenada por validade.
type View struct {
	Kind    Kind     `json:"tipo"`
	Columns []string `json:"colunas"`
	Rows    []Row    `json:"linhas"`
}

func newView(kind Kind, rows []Row) View {
	days := COLUMN_DAYS_REMAINING
	if kind == KindExpired {
		days = COLUMN_DAYS_OVERDUE
	}
	cols := make([]string, 0, len(BaseColumns)+1)
	cols = append(cols, BaseColumns...)
	cols = append(cols, days)
	if rows == nil {
		rows = []Row{}
	}
	return View{Kind: kind, Columns: cols, Rows: rows}
}

// DaysColumn é o nome da última coluna.
func (v View) DaysColumn() string {
	if len(v.Columns) == 0 {
		return ""
	}
	return v.Columns[len(v.Columns)-1]
}

func (v View) Len() int { return len(v.Rows) }

func (v View) Empty() bool { return len(v.Rows) == 0 }

// Head devolve uma nova View com as n primeiras linhas (n <= 0 mantém todas).
func (v View) Head(n int) View {
	if n <= 0 || n >= len(v.Rows) {
		n = len(v.Rows)
	}
	rows := make([]Row, n)
	copy(rows, v.Rows[:n])
	cols := make([]string, len(v.Columns))
	copy(cols, v.Columns)
	return View{Kind: v.Kind, Columns: cols, Rows: rows}
}

// Records devolve as linhas como texto, sem cabeçalho.
func (v View) Records() [][]string {
	out := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		out = append(out, r.Cells())
	}
	return out
}

// Title é o rótulo usado em telas e nomes de planilha.
func (v View) Title() string {
	switch v.Kind {
	case KindUpcoming:
		return "Próximos Vencimentos"
	case KindExpired:
		return "Licenças Vencidas"
	}
	return string(v.Kind)
}
