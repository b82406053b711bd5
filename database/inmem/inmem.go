// Package inmem provides map-backed implementations of the database
// repositories for tests. The store counts every repository call so
// tests can assert that short-circuited requests never touch it.
package inmem

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campusforge/showcase-backend/database"
	"github.com/campusforge/showcase-backend/models"
)

type Store struct {
	mu sync.RWMutex

	users          map[string]models.User
	projects       map[uint]models.Project
	members        []models.TeamMember
	categories     map[uint]models.Category
	optionValues   map[uint]models.CategoryOptionValue
	projectOptions []models.ProjectOption

	nextProjectID uint
	nextMemberID  uint
	nextOptionID  uint
	nextLinkID    uint

	queries int
	failure error
}

func Open() *Store {
	return &Store{
		users:        make(map[string]models.User),
		projects:     make(map[uint]models.Project),
		categories:   make(map[uint]models.Category),
		optionValues: make(map[uint]models.CategoryOptionValue),
	}
}

// Database assembles a database.Database backed by this store.
func (s *Store) Database() database.Database {
	return database.NewFromRepos(
		&userRepo{s},
		&projectRepo{s},
		&teamMemberRepo{s},
		&categoryRepo{s},
		&optionValueRepo{s},
		&projectOptionRepo{s},
	)
}

// QueryCount reports how many repository operations have run.
func (s *Store) QueryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queries
}

// FailWith makes every subsequent repository operation return err,
// simulating an unreachable store.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

// touch records one repository operation and returns the configured
// failure, if any. Callers must hold the lock.
func (s *Store) touch() error {
	s.queries++
	return s.failure
}

// Seed helpers. These bypass the query counter.

func (s *Store) SeedUser(uid, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[uid] = models.User{UID: uid, Role: role}
}

func (s *Store) SeedCategory(id uint, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[id] = models.Category{CategoryID: id, Name: name}
}

func (s *Store) SeedOptionValue(id uint, name string, categoryID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cid := categoryID
	s.optionValues[id] = models.CategoryOptionValue{OptionID: id, OptionName: name, CategoryID: &cid}
}

func (s *Store) SeedProject(name, description, owner string) uint {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextProjectID++
	id := s.nextProjectID
	p := models.Project{
		ProjectID:          id,
		ProjectName:        name,
		ProjectDescription: description,
		CreatedAt:          time.Now().UTC(),
	}
	if owner != "" {
		o := owner
		p.CreatedByUID = &o
	}
	s.projects[id] = p
	return id
}

func (s *Store) SeedMember(projectID uint, name, linkedin string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextMemberID++
	pid := projectID
	s.members = append(s.members, models.TeamMember{
		MemberID:  s.nextMemberID,
		ProjectID: &pid,
		Name:      name,
		Linkedin:  linkedin,
	})
}

func (s *Store) SeedLink(projectID, categoryID, optionID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextLinkID++
	pid, cid, oid := projectID, categoryID, optionID
	s.projectOptions = append(s.projectOptions, models.ProjectOption{
		ID:         s.nextLinkID,
		ProjectID:  &pid,
		CategoryID: &cid,
		OptionID:   &oid,
	})
}

func (s *Store) membersOf(projectID uint) []models.TeamMember {
	out := []models.TeamMember{}
	for _, m := range s.members {
		if m.ProjectID != nil && *m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MemberID < out[j].MemberID })
	return out
}

func (s *Store) linksOf(projectID uint) []models.ProjectOption {
	out := []models.ProjectOption{}
	for _, l := range s.projectOptions {
		if l.ProjectID != nil && *l.ProjectID == projectID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type userRepo struct{ s *Store }

func (r *userRepo) FindByUID(_ context.Context, uid string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return nil, err
	}
	if u, ok := r.s.users[uid]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *userRepo) Upsert(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return err
	}
	r.s.users[user.UID] = *user
	return nil
}

type projectRepo struct{ s *Store }

func (r *projectRepo) FindByOwner(_ context.Context, uid string) ([]models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return nil, err
	}
	out := []models.Project{}
	for _, p := range r.s.projects {
		if p.OwnedBy(uid) {
			p.Members = r.s.membersOf(p.ProjectID)
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProjectID < out[j].ProjectID })
	return out, nil
}

func (r *projectRepo) FindByID(_ context.Context, id uint) (*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return nil, err
	}
	p, ok := r.s.projects[id]
	if !ok {
		return nil, nil
	}
	p.Members = r.s.membersOf(id)
	return &p, nil
}

func (r *projectRepo) Add(_ context.Context, project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return err
	}
	r.s.nextProjectID++
	project.ProjectID = r.s.nextProjectID
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	for i := range project.Members {
		r.s.nextMemberID++
		project.Members[i].MemberID = r.s.nextMemberID
		project.Members[i].ProjectID = &project.ProjectID
		r.s.members = append(r.s.members, project.Members[i])
	}
	for i := range project.Options {
		r.s.nextLinkID++
		project.Options[i].ID = r.s.nextLinkID
		project.Options[i].ProjectID = &project.ProjectID
		r.s.projectOptions = append(r.s.projectOptions, project.Options[i])
	}
	stored := *project
	stored.Members = nil
	stored.Options = nil
	r.s.projects[project.ProjectID] = stored
	return nil
}

func (r *projectRepo) Update(_ context.Context, project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return err
	}
	existing, ok := r.s.projects[project.ProjectID]
	if !ok {
		return nil
	}
	stored := *project
	stored.CreatedAt = existing.CreatedAt
	stored.Members = nil
	stored.Options = nil
	r.s.projects[project.ProjectID] = stored
	return nil
}

func (r *projectRepo) Delete(_ context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return err
	}
	delete(r.s.projects, id)
	kept := r.s.members[:0]
	for _, m := range r.s.members {
		if m.ProjectID == nil || *m.ProjectID != id {
			kept = append(kept, m)
		}
	}
	r.s.members = kept
	links := r.s.projectOptions[:0]
	for _, l := range r.s.projectOptions {
		if l.ProjectID == nil || *l.ProjectID != id {
			links = append(links, l)
		}
	}
	r.s.projectOptions = links
	return nil
}

type teamMemberRepo struct{ s *Store }

func (r *teamMemberRepo) FindByProject(_ context.Context, projectID uint) ([]models.MemberSummary, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return nil, err
	}
	out := []models.MemberSummary{}
	for _, m := range r.s.membersOf(projectID) {
		out = append(out, models.MemberSummary{Name: m.Name, Linkedin: m.Linkedin})
	}
	return out, nil
}

func (r *teamMemberRepo) ReplaceForProject(_ context.Context, projectID uint, members []models.TeamMember) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return err
	}
	kept := r.s.members[:0]
	for _, m := range r.s.members {
		if m.ProjectID == nil || *m.ProjectID != projectID {
			kept = append(kept, m)
		}
	}
	r.s.members = kept
	for i := range members {
		r.s.nextMemberID++
		members[i].MemberID = r.s.nextMemberID
		pid := projectID
		members[i].ProjectID = &pid
		r.s.members = append(r.s.members, members[i])
	}
	return nil
}

type categoryRepo struct{ s *Store }

func (r *categoryRepo) FindAll(_ context.Context) ([]models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return nil, err
	}
	out := []models.Category{}
	for _, c := range r.s.categories {
		c.Options = []models.CategoryOptionValue{}
		for _, v := range r.s.optionValues {
			if v.CategoryID != nil && *v.CategoryID == c.CategoryID {
				c.Options = append(c.Options, v)
			}
		}
		sort.Slice(c.Options, func(i, j int) bool { return c.Options[i].OptionID < c.Options[j].OptionID })
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CategoryID < out[j].CategoryID })
	return out, nil
}

func (r *categoryRepo) FindByID(_ context.Context, id uint) (*models.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return nil, err
	}
	if c, ok := r.s.categories[id]; ok {
		return &c, nil
	}
	return nil, nil
}

type optionValueRepo struct{ s *Store }

func (r *optionValueRepo) FindByID(_ context.Context, id uint) (*models.CategoryOptionValue, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return nil, err
	}
	if v, ok := r.s.optionValues[id]; ok {
		return &v, nil
	}
	return nil, nil
}

type projectOptionRepo struct{ s *Store }

func (r *projectOptionRepo) FindByProject(_ context.Context, projectID uint) ([]models.ProjectOption, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return nil, err
	}
	return r.s.linksOf(projectID), nil
}

func (r *projectOptionRepo) ResolveForProject(_ context.Context, projectID uint) ([]models.ProjectCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return nil, err
	}
	out := []models.ProjectCategory{}
	for _, l := range r.s.linksOf(projectID) {
		var pair models.ProjectCategory
		if l.CategoryID != nil {
			if c, ok := r.s.categories[*l.CategoryID]; ok {
				name := c.Name
				pair.CategoryName = &name
			}
		}
		if l.OptionID != nil {
			if v, ok := r.s.optionValues[*l.OptionID]; ok {
				name := v.OptionName
				pair.OptionName = &name
			}
		}
		out = append(out, pair)
	}
	return out, nil
}

func (r *projectOptionRepo) ReplaceForProject(_ context.Context, projectID uint, options []models.ProjectOption) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.touch(); err != nil {
		return err
	}
	kept := r.s.projectOptions[:0]
	for _, l := range r.s.projectOptions {
		if l.ProjectID == nil || *l.ProjectID != projectID {
			kept = append(kept, l)
		}
	}
	r.s.projectOptions = kept
	for i := range options {
		r.s.nextLinkID++
		options[i].ID = r.s.nextLinkID
		pid := projectID
		options[i].ProjectID = &pid
		r.s.projectOptions = append(r.s.projectOptions, options[i])
	}
	return nil
}
