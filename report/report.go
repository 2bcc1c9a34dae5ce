package report

import (
	"sort"
	"time"

	"licencas/models"
)

// Today reduz um instante à data de calendário no fuso do próprio instante.
func Today(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

type dated struct {
	license models.License
	day     time.Time
}

// parse valida todas as validades; a primeira inválida aborta o relatório.
func parse(table models.LicenseTable) ([]dated, error) {
	out := make([]dated, 0, len(table))
	for _, l := range table {
		d, err := l.ValidUntil.Time()
		if err != nil {
			return nil, &DateParseError{Number: l.Number, Raw: l.ValidUntil.Raw(), Err: err}
		}
		out = append(out, dated{license: l, day: d})
	}
	return out, nil
}

// daysBetween conta dias entre datas à meia-noite UTC, em segundos Unix:
// time.Duration satura em ~292 anos.
func daysBetween(from, to time.Time) int {
	return int((to.Unix() - from.Unix()) / 86400)
}

func build(kind Kind, items []dated, today time.Time) View {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].day.Before(items[j].day)
	})
	rows := make([]Row, 0, len(items))
	for _, it := range items {
		days := daysBetween(today, it.day)
		if kind == KindExpired {
			days = daysBetween(it.day, today)
		}
		rows = append(rows, project(it.license, days))
	}
	return newView(kind, rows)
}

// Split separa a tabela nas duas visões numa única passada.
// Validade > hoje vai para próximos vencimentos; validade <= hoje, para vencidas.
func Split(table models.LicenseTable, today time.Time) (upcoming View, expired View, err error) {
	items, err := parse(table)
	if err != nil {
		return View{}, View{}, err
	}
	today = Today(today)

	var up, ex []dated
	for _, it := range items {
		if it.day.After(today) {
			up = append(up, it)
		} else {
			ex = append(ex, it)
		}
	}
	return build(KindUpcoming, up, today), build(KindExpired, ex, today), nil
}

// Upcoming: licenças com validade depois de hoje, da mais próxima para a mais distante,
// com "Dias Restantes".
func Upcoming(table models.LicenseTable, today time.Time) (View, error) {
	up, _, err := Split(table, today)
	return up, err
}

// Expired: licenças com validade até hoje (inclusive), da mais antiga para a mais recente,
// com "Dias Vencidos".
func Expired(table models.LicenseTable, today time.Time) (View, error) {
	_, ex, err := Split(table, today)
	return ex, err
}

type Summary struct {
	Total    int `json:"total_registros"`
	Upcoming int `json:"proximos_vencimentos"`
	Expired  int `json:"licencas_vencidas"`
	Types    int `json:"tipos_licenca"`
}

func Summarize(table models.LicenseTable, today time.Time) (Summary, error) {
	up, ex, err := Split(table, today)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Total:    len(table),
		Upcoming: up.Len(),
		Expired:  ex.Len(),
		Types:    len(TypeCounts(table)),
	}, nil
}
