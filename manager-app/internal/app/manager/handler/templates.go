package handler

import (
	"embed"
	"html/template"
)

//go:embed templates
var templatesFS embed.FS

// LoadTemplates разбирает встроенные шаблоны страниц
func LoadTemplates() (*template.Template, error) {
	return template.ParseFS(templatesFS,
		"templates/errors/*.html",
		"templates/catalogue/products/*.html",
	)
}
