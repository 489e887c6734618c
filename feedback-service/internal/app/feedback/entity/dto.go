package entity

// NewProductReviewPayload - указатели отличают отсутствующее поле от нуля
type NewProductReviewPayload struct {
	ProductID *int   `json:"productId" validate:"required"`
	Rating    *int   `json:"rating" validate:"required,min=1,max=5"`
	Review    string `json:"review" validate:"max=1000"`
}

type NewFavouriteProductPayload struct {
	ProductID *int `json:"productId" validate:"required"`
}
