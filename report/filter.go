package report

import "licencas/models"

// Filter seleciona tipos e status. Slice nil significa "todos os valores observados";
// slice vazio (não nil) não seleciona nada.
type Filter struct {
	Types    []string `json:"tipos"`
	Statuses []string `json:"status"`
}

type FilterOptions struct {
	Types    []string `json:"tipos"`
	Statuses []string `json:"status"`
}

// Options lista os valores distintos de tipo e status na ordem em que aparecem.
func Options(table models.LicenseTable) FilterOptions {
	opts := FilterOptions{Types: []string{}, Statuses: []string{}}
	seenType := map[string]bool{}
	seenStatus := map[string]bool{}
	for _, l := range table {
		if !seenType[l.Type] {
			seenType[l.Type] = true
			opts.Types = append(opts.Types, l.Type)
		}
		if !seenStatus[l.Status] {
			seenStatus[l.Status] = true
			opts.Statuses = append(opts.Statuses, l.Status)
		}
	}
	return opts
}

// Apply devolve uma nova tabela só com as licenças cujo tipo E status foram selecionados.
func Apply(table models.LicenseTable, f Filter) models.LicenseTable {
	types := toSet(f.Types)
	statuses := toSet(f.Statuses)

	out := make(models.LicenseTable, 0, len(table))
	for _, l := range table {
		if types != nil && !types[l.Type] {
			continue
		}
		if statuses != nil && !statuses[l.Status] {
			continue
		}
		out = append(out, l)
	}
	return out
}

// IsAll indica se o filtro não restringe nada.
func (f Filter) IsAll() bool {
	return f.Types == nil && f.Statuses == nil
}

func toSet(values []string) map[string]bool {
	if values == nil {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
