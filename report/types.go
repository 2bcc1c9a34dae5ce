package report

import (
	"sort"

	"licencas/models"
)

type TypeTotal struct {
	Type  string `json:"tipo_licenca"`
	Count int    `json:"quantidade"`
}

// TypeCount é a contagem por tipo de licença, da maior para a menor (empate: ordem alfabética).
type TypeCount []TypeTotal

func TypeCounts(table models.LicenseTable) TypeCount {
	counts := map[string]int{}
	for _, l := range table {
		counts[l.Type]++
	}

	out := make(TypeCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TypeTotal{Type: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}

func (tc TypeCount) Total() int {
	total := 0
	for _, t := range tc {
		total += t.Count
	}
	return total
}

// Max é a maior contagem (0 para vazio).
func (tc TypeCount) Max() int {
	if len(tc) == 0 {
		return 0
	}
	return tc[0].Count
}
