package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/model"
)

// BookRepository is the marketplace data-access interface.
type BookRepository interface {
	List(ctx context.Context) ([]model.Book, error)
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	Create(ctx context.Context, book *model.Book) error
	DecrementStock(ctx context.Context, id int64) (bool, error)
	Delete(ctx context.Context, id int64) error
}

type bookRepo struct {
	db *gorm.DB
}

// NewBookRepo creates the GORM-backed BookRepository.
func NewBookRepo(db *gorm.DB) BookRepository {
	return &bookRepo{db: db}
}

func (r *bookRepo) List(ctx context.Context) ([]model.Book, error) {
	var books []model.Book
	if err := r.db.WithContext(ctx).Order("id").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (r *bookRepo) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).First(&book, id).Error; err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *bookRepo) Create(ctx context.Context, book *model.Book) error {
	return r.db.WithContext(ctx).Create(book).Error
}

// DecrementStock performs the purchase as one conditional update, so two
// concurrent purchases of the last unit cannot both succeed. Returns false
// when stock was already zero (or the id does not exist).
func (r *bookRepo) DecrementStock(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Book{}).
		Where("id = ? AND stock > 0", id).
		UpdateColumn("stock", gorm.Expr("stock - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *bookRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Book{}, id).Error
}
