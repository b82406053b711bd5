package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/campusforge/showcase-backend/models"
)

// Repositories are defined as interfaces so handlers can run against
// the in-memory implementations in database/inmem during tests.
//
// Point lookups (FindByID) return (nil, nil) when no row matches; a
// non-nil error always means the store itself failed.

type UserRepo interface {
	FindByUID(ctx context.Context, uid string) (*models.User, error)
	Upsert(ctx context.Context, user *models.User) error
}

type ProjectRepo interface {
	// FindByOwner returns the owner's projects with members preloaded
	// in member-row order. A project with no members carries an empty,
	// non-nil slice.
	FindByOwner(ctx context.Context, uid string) ([]models.Project, error)
	FindByID(ctx context.Context, id uint) (*models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
}

type TeamMemberRepo interface {
	FindByProject(ctx context.Context, projectID uint) ([]models.MemberSummary, error)
	ReplaceForProject(ctx context.Context, projectID uint, members []models.TeamMember) error
}

type CategoryRepo interface {
	FindAll(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id uint) (*models.Category, error)
}

type CategoryOptionValueRepo interface {
	FindByID(ctx context.Context, id uint) (*models.CategoryOptionValue, error)
}

type ProjectOptionRepo interface {
	FindByProject(ctx context.Context, projectID uint) ([]models.ProjectOption, error)
	// ResolveForProject joins link rows against categories and option
	// values with outer joins, so unresolved rows come back with nil
	// names instead of being dropped.
	ResolveForProject(ctx context.Context, projectID uint) ([]models.ProjectCategory, error)
	ReplaceForProject(ctx context.Context, projectID uint, options []models.ProjectOption) error
}

type Database struct {
	userRepo          UserRepo
	projectRepo       ProjectRepo
	teamMemberRepo    TeamMemberRepo
	categoryRepo      CategoryRepo
	optionValueRepo   CategoryOptionValueRepo
	projectOptionRepo ProjectOptionRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:          NewUserRepo(db),
		projectRepo:       NewProjectRepo(db),
		teamMemberRepo:    NewTeamMemberRepo(db),
		categoryRepo:      NewCategoryRepo(db),
		optionValueRepo:   NewCategoryOptionValueRepo(db),
		projectOptionRepo: NewProjectOptionRepo(db),
	}
}

// NewFromRepos assembles a Database from explicit repositories. Used by
// tests to swap in the inmem implementations.
func NewFromRepos(
	users UserRepo,
	projects ProjectRepo,
	members TeamMemberRepo,
	categories CategoryRepo,
	optionValues CategoryOptionValueRepo,
	projectOptions ProjectOptionRepo,
) Database {
	return Database{
		userRepo:          users,
		projectRepo:       projects,
		teamMemberRepo:    members,
		categoryRepo:      categories,
		optionValueRepo:   optionValues,
		projectOptionRepo: projectOptions,
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() UserRepo { return d.userRepo }

func (d Database) ProjectRepo() ProjectRepo { return d.projectRepo }

func (d Database) TeamMemberRepo() TeamMemberRepo { return d.teamMemberRepo }

func (d Database) CategoryRepo() CategoryRepo { return d.categoryRepo }

func (d Database) CategoryOptionValueRepo() CategoryOptionValueRepo { return d.optionValueRepo }

func (d Database) ProjectOptionRepo() ProjectOptionRepo { return d.projectOptionRepo }

// Migrate creates or updates the six showcase tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.CategoryOptionValue{},
		&models.Project{},
		&models.TeamMember{},
		&models.ProjectOption{},
	)
}
