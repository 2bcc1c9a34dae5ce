package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates devolve os templates do painel, prontos para gin.Engine.SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(files, "templates/*.html"))
}

var funcs = template.FuncMap{
	// seleção nil = tudo marcado
	"selected": func(selection []string, value string) bool {
		if selection == nil {
			return true
		}
		for _, s := range selection {
			if s == value {
				return true
			}
		}
		return false
	},
}
