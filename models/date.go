package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const DATE_LAYOUT = "2006-01-02"

var (
	ErrDateMissing = errors.New("data ausente")
	ErrDateInvalid = errors.New("data inválida")
)

// formatos aceitos quando a coluna vem como texto
var dateLayouts = []string{
	DATE_LAYOUT,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05-07:00",
	"02/01/2006",
}

// Date guarda uma data de calendário lida do banco. O valor bruto é mantido para que
// uma data inválida seja reportada (e não descartada) por quem monta o relatório.
type Date struct {
	raw   string
	day   time.Time
	set   bool
	valid bool
}

// NewDate cria uma Date válida a partir de um time.Time (só ano/mês/dia importam).
func NewDate(t time.Time) Date {
	return Date{raw: t.Format(DATE_LAYOUT), day: truncate(t), set: true, valid: true}
}

// ParseDate interpreta texto; o resultado pode ser inválido, veja Time.
func ParseDate(s string) Date {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}
	}
	d := Date{raw: s, set: true}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			d.day = truncate(t)
			d.valid = true
			break
		}
	}
	return d
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Time devolve a data à meia-noite UTC.
func (d Date) Time() (time.Time, error) {
	if !d.set {
		return time.Time{}, ErrDateMissing
	}
	if !d.valid {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateInvalid, d.raw)
	}
	return d.day, nil
}

// Raw é o valor como veio do banco.
func (d Date) Raw() string {
	return d.raw
}

func (d Date) String() string {
	if d.valid {
		return d.day.Format(DATE_LAYOUT)
	}
	return d.raw
}

// Scan implementa sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(v)
	case []byte:
		*d = ParseDate(string(v))
	case string:
		*d = ParseDate(v)
	default:
		return fmt.Errorf("models.Date: tipo não suportado %T", src)
	}
	return nil
}

// Value implementa driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	if !d.set {
		return nil, nil
	}
	if d.valid {
		return d.day, nil
	}
	return d.raw, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*d = ParseDate(s)
	if !d.set {
		// string vazia ainda é um valor presente (e inválido)
		*d = Date{set: true}
	}
	return nil
}
