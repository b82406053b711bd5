package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/campusforge/showcase-backend/models"
)

type projectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) ProjectRepo {
	return &projectRepo{db}
}

// FindByOwner returns all projects owned by uid, members preloaded in
// row order.
func (r *projectRepo) FindByOwner(ctx context.Context, uid string) ([]models.Project, error) {
	projects := []models.Project{}
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("member_id")
		}).
		Where("created_by_uid = ?", uid).
		Order("project_id").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].Members == nil {
			projects[i].Members = []models.TeamMember{}
		}
	}
	return projects, nil
}

// FindByID returns a project by its ID, or (nil, nil) when absent.
func (r *projectRepo) FindByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("member_id")
		}).
		First(&project, "project_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Add inserts a new project into the database, including any attached
// members and option links.
func (r *projectRepo) Add(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update updates an existing project in the database
func (r *projectRepo) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).
		Omit("Members", "Options", "created_at").
		Save(project).Error
}

// Delete removes a project from the database by id
func (r *projectRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Project{}, "project_id = ?", id).Error
}
