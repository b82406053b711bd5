package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/campusforge/showcase-backend/models"
)

type projectOptionRepo struct {
	db *gorm.DB
}

func NewProjectOptionRepo(db *gorm.DB) ProjectOptionRepo {
	return &projectOptionRepo{db}
}

// FindByProject returns the raw link rows for a project.
func (r *projectOptionRepo) FindByProject(ctx context.Context, projectID uint) ([]models.ProjectOption, error) {
	options := []models.ProjectOption{}
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("id").
		Find(&options).Error
	return options, err
}

// ResolveForProject resolves link rows to (categoryName, optionName)
// pairs in a single three-way outer join. Rows whose category or option
// no longer exists keep their place with nil names.
func (r *projectOptionRepo) ResolveForProject(ctx context.Context, projectID uint) ([]models.ProjectCategory, error) {
	pairs := []models.ProjectCategory{}
	err := r.db.WithContext(ctx).
		Table("project_options").
		Select("categories.category AS category_name, category_option_values.option_name AS option_name").
		Joins("LEFT JOIN categories ON categories.category_id = project_options.category_id").
		Joins("LEFT JOIN category_option_values ON category_option_values.option_id = project_options.option_id").
		Where("project_options.project_id = ?", projectID).
		Order("project_options.id").
		Scan(&pairs).Error
	return pairs, err
}

// ReplaceForProject swaps a project's option links for the given set.
func (r *projectOptionRepo) ReplaceForProject(ctx context.Context, projectID uint, options []models.ProjectOption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProjectOption{}, "project_id = ?", projectID).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].ID = 0
			options[i].ProjectID = &projectID
		}
		if len(options) == 0 {
			return nil
		}
		return tx.Create(&options).Error
	})
}
