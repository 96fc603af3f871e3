package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/dto"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/repository"
)

var (
	ErrBookNotFound = errors.New("book not found")
	ErrOutOfStock   = errors.New("out of stock")
	ErrNotSeller    = errors.New("only the seller can delete a listing")
)

// BookService handles the peer marketplace.
type BookService interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	CreateBook(ctx context.Context, sellerID int64, req *dto.CreateBookRequest) (*model.Book, error)
	Purchase(ctx context.Context, bookID int64) (*dto.PurchaseResponse, error)
	DeleteBook(ctx context.Context, callerID, bookID int64) error
}

type bookService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewBookService creates the BookService.
func NewBookService(repo *repository.Repository, logger *zap.Logger) BookService {
	return &bookService{repo: repo, logger: logger}
}

func (s *bookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.Book.List(ctx)
}

func (s *bookService) CreateBook(ctx context.Context, sellerID int64, req *dto.CreateBookRequest) (*model.Book, error) {
	stock := req.Stock
	if stock <= 0 {
		stock = 1
	}
	book := &model.Book{
		Title:      req.Title,
		Price:      req.Price,
		SellerID:   sellerID,
		Department: req.Department,
		Image:      req.Image,
		Location:   req.Location,
		Stock:      stock,
	}
	if err := s.repo.Book.Create(ctx, book); err != nil {
		s.logger.Error("create book failed", zap.Error(err))
		return nil, err
	}
	return book, nil
}

// Purchase decrements stock through a single conditional update. The store
// decides between "sold" and "out of stock"; there is no read between the
// check and the write for another purchase to slip through.
func (s *bookService) Purchase(ctx context.Context, bookID int64) (*dto.PurchaseResponse, error) {
	if _, err := s.repo.Book.GetByID(ctx, bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		s.logger.Error("lookup book failed", zap.Error(err))
		return nil, err
	}

	sold, err := s.repo.Book.DecrementStock(ctx, bookID)
	if err != nil {
		s.logger.Error("decrement stock failed", zap.Error(err))
		return nil, err
	}
	if !sold {
		return nil, ErrOutOfStock
	}

	return &dto.PurchaseResponse{BookID: bookID, Purchased: true}, nil
}

// DeleteBook removes a listing; the caller id comes from token claims, and
// only the listing's seller passes the ownership check.
func (s *bookService) DeleteBook(ctx context.Context, callerID, bookID int64) error {
	book, err := s.repo.Book.GetByID(ctx, bookID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookNotFound
		}
		s.logger.Error("lookup book failed", zap.Error(err))
		return err
	}

	if book.SellerID != callerID {
		return ErrNotSeller
	}

	return s.repo.Book.Delete(ctx, bookID)
}
