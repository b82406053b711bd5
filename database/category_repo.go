package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusforge/showcase-backend/models"
)

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepo {
	return &categoryRepo{db}
}

// FindAll returns the reference categories with their option values,
// as consumed by the submit and edit forms.
func (r *categoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	categories := []models.Category{}
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_id")
		}).
		Order("category_id").
		Find(&categories).Error
	return categories, err
}

// FindByID returns a category by id, or (nil, nil) when absent.
func (r *categoryRepo) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).First(&category, "category_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

type categoryOptionValueRepo struct {
	db *gorm.DB
}

func NewCategoryOptionValueRepo(db *gorm.DB) CategoryOptionValueRepo {
	return &categoryOptionValueRepo{db}
}

// FindByID returns an option value by id, or (nil, nil) when absent.
func (r *categoryOptionValueRepo) FindByID(ctx context.Context, id uint) (*models.CategoryOptionValue, error) {
	var value models.CategoryOptionValue
	err := r.db.WithContext(ctx).First(&value, "option_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &value, nil
}
