package client

import (
	"context"
	"fmt"
	"strings"
)

// Confirmer stands in for the delete-confirmation modal: it is asked
// before any destructive action and may veto it.
type Confirmer func(projectID uint) bool

// ProfileView drives the profile page state: the in-memory project
// list, the search box and the expanded card. Not safe for concurrent
// use; it models a single user's view.
type ProfileView struct {
	client   *Client
	session  *Session
	projects []Project
	expanded map[uint]bool
}

func NewProfileView(c *Client, session *Session) *ProfileView {
	return &ProfileView{
		client:   c,
		session:  session,
		expanded: make(map[uint]bool),
	}
}

// Load fetches the project list. On failure the previous list is kept
// so the view degrades to stale data rather than going blank.
func (v *ProfileView) Load(ctx context.Context) error {
	projects, err := v.client.ProfileProjects(ctx, v.session)
	if err != nil {
		return err
	}
	v.projects = projects
	return nil
}

func (v *ProfileView) Projects() []Project { return v.projects }

// Search filters the in-memory list; no server round-trip. Called on
// every keystroke by the UI.
func (v *ProfileView) Search(term string) []Project {
	return FilterProjects(v.projects, term)
}

// ToggleExpanded flips one card's expanded state and reports the new
// state.
func (v *ProfileView) ToggleExpanded(projectID uint) bool {
	v.expanded[projectID] = !v.expanded[projectID]
	return v.expanded[projectID]
}

func (v *ProfileView) Expanded(projectID uint) bool { return v.expanded[projectID] }

// Delete removes a project after confirmation. The local list shrinks
// only when the backend confirms the delete; there is no optimistic
// update. Returns false when the confirmer vetoed the action.
func (v *ProfileView) Delete(ctx context.Context, projectID uint, confirm Confirmer) (bool, error) {
	if confirm != nil && !confirm(projectID) {
		return false, nil
	}

	if err := v.client.DeleteProject(ctx, v.session, projectID); err != nil {
		return false, err
	}

	kept := v.projects[:0]
	for _, p := range v.projects {
		if p.ProjectID != projectID {
			kept = append(kept, p)
		}
	}
	v.projects = kept
	delete(v.expanded, projectID)
	return true, nil
}

// EditURL returns the external edit route for a project; the edit flow
// itself lives outside this client.
func EditURL(projectID uint) string {
	return fmt.Sprintf("/edit/%d", projectID)
}

// FilterProjects keeps projects whose name contains term, compared
// case-insensitively. An empty term keeps everything.
func FilterProjects(projects []Project, term string) []Project {
	if term == "" {
		return projects
	}
	needle := strings.ToLower(term)
	out := []Project{}
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.ProjectName), needle) {
			out = append(out, p)
		}
	}
	return out
}
