package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/campusforge/showcase-backend/models"
)

type teamMemberRepo struct {
	db *gorm.DB
}

func NewTeamMemberRepo(db *gorm.DB) TeamMemberRepo {
	return &teamMemberRepo{db}
}

// FindByProject returns the public projection (name and linkedin only)
// of a project's members in row order.
func (r *teamMemberRepo) FindByProject(ctx context.Context, projectID uint) ([]models.MemberSummary, error) {
	members := []models.MemberSummary{}
	err := r.db.WithContext(ctx).
		Model(&models.TeamMember{}).
		Select("name", "linkedin").
		Where("project_id = ?", projectID).
		Order("member_id").
		Scan(&members).Error
	return members, err
}

// ReplaceForProject swaps a project's member rows for the given set.
func (r *teamMemberRepo) ReplaceForProject(ctx context.Context, projectID uint, members []models.TeamMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.TeamMember{}, "project_id = ?", projectID).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].MemberID = 0
			members[i].ProjectID = &projectID
		}
		if len(members) == 0 {
			return nil
		}
		return tx.Create(&members).Error
	})
}
