package dto

// CreateBookRequest lists a book for sale. The seller is always the
// authenticated caller.
type CreateBookRequest struct {
	Title      string  `json:"title"      binding:"required"`
	Price      float64 `json:"price"      binding:"min=0"`
	Department string  `json:"department"`
	Image      string  `json:"image"`
	Location   string  `json:"location"`
	Stock      int     `json:"stock"      binding:"min=0"`
}

// PurchaseResponse reports a completed purchase.
type PurchaseResponse struct {
	BookID    int64 `json:"book_id"`
	Purchased bool  `json:"purchased"`
}
