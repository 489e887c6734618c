package handler

import (
	"embed"
	"html/template"

	"selmag/customer-app/internal/app/customer/entity"
)

//go:embed templates
var templatesFS embed.FS

var pageFuncs = template.FuncMap{
	// rating - выбранная в форме оценка, 0 если формы нет или оценка не выбрана
	"rating": func(payload any) int {
		if p, ok := payload.(entity.NewProductReviewPayload); ok && p.Rating != nil {
			return *p.Rating
		}
		return 0
	},
	"ratings": func() []int {
		return []int{1, 2, 3, 4, 5}
	},
}

// LoadTemplates разбирает встроенные шаблоны страниц
func LoadTemplates() (*template.Template, error) {
	return template.New("pages").Funcs(pageFuncs).ParseFS(templatesFS,
		"templates/errors/*.html",
		"templates/customer/products/*.html",
	)
}
