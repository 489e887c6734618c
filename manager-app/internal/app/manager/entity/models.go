package entity

type Product struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

// NewProductPayload - форма создания товара, проверяется Catalogue Service
type NewProductPayload struct {
	Title   string `form:"title" json:"title"`
	Details string `form:"details" json:"details"`
}

// UpdateProductPayload - форма редактирования; оба поля перезаписываются
type UpdateProductPayload struct {
	Title   string `form:"title" json:"title"`
	Details string `form:"details" json:"details"`
}
