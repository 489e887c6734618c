package entity

type NewProductPayload struct {
	Title   string `json:"title" validate:"notblank,min=3,max=50"`
	Details string `json:"details" validate:"max=1000"`
}

// UpdateProductPayload несёт итоговые значения обоих полей, а не разницу
type UpdateProductPayload struct {
	Title   string `json:"title" validate:"notblank,min=3,max=50"`
	Details string `json:"details" validate:"max=1000"`
}
