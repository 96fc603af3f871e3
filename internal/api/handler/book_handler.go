package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/service"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/response"
)

// BookHandler handles the peer book marketplace.
type BookHandler struct {
	bookSvc service.BookService
}

// NewBookHandler creates the BookHandler.
func NewBookHandler(bookSvc service.BookService) *BookHandler {
	return &BookHandler{bookSvc: bookSvc}
}

// List returns all listings, including sold-out ones.
// GET /api/v1/books
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.bookSvc.ListBooks(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, books)
}

// Create lists a book for sale by the caller.
// POST /api/v1/books
func (h *BookHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid book payload")
		return
	}

	book, err := h.bookSvc.CreateBook(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, book)
}

// Purchase buys one copy of a listing.
// POST /api/v1/books/:id/purchase
func (h *BookHandler) Purchase(c *gin.Context) {
	bookID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.bookSvc.Purchase(c.Request.Context(), bookID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			response.NotFound(c, 13001, "book not found")
		case errors.Is(err, service.ErrOutOfStock):
			response.BadRequest(c, 13002, "book is out of stock")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete removes a listing. Only the seller may delete it.
// DELETE /api/v1/books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	bookID, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.bookSvc.DeleteBook(c.Request.Context(), userID, bookID); err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound):
			response.NotFound(c, 13001, "book not found")
		case errors.Is(err, service.ErrNotSeller):
			response.Forbidden(c, 13003, "only the seller can delete a listing")
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, nil)
}
