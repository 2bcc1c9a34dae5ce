package web

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplates(t *testing.T) {
	tmpl := Templates()
	assert.NotNil(t, tmpl.Lookup("painel.html"))
	assert.NotNil(t, tmpl.Lookup("view"))
}

func TestSelected(t *testing.T) {
	selected := funcs["selected"].(func([]string, string) bool)
	assert.True(t, selected(nil, "LO"))
	assert.True(t, selected([]string{"LO", "LP"}, "LP"))
	assert.False(t, selected([]string{}, "LO"))
}
