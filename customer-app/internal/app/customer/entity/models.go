package entity

type Product struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Details string `json:"details"`
}

type ProductReview struct {
	ID        string `json:"id"`
	ProductID int    `json:"productId"`
	Rating    int    `json:"rating"`
	Review    string `json:"review"`
	UserID    string `json:"userId"`
}

type FavouriteProduct struct {
	ID        string `json:"id"`
	ProductID int    `json:"productId"`
	UserID    string `json:"userId"`
}

// ProductPage - данные страницы товара
type ProductPage struct {
	Product     Product
	Reviews     []ProductReview
	InFavourite bool
}

// NewProductReviewPayload - форма отзыва; Rating пуст, если оценка не выбрана
type NewProductReviewPayload struct {
	Rating *int   `json:"rating"`
	Review string `json:"review"`
}
