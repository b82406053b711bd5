package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusforge/showcase-backend/models"
)

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{db}
}

// FindByUID returns a user by the auth provider's identifier, or
// (nil, nil) when the account is unknown.
func (r *userRepo) FindByUID(ctx context.Context, uid string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "uid = ?", uid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert inserts the user row or updates its role.
func (r *userRepo) Upsert(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}
