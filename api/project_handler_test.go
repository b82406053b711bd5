package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusforge/showcase-backend/auth"
	"github.com/campusforge/showcase-backend/database/inmem"
	"github.com/campusforge/showcase-backend/rolestore"
)

type stubVerifier struct {
	tokens map[string]auth.Identity
}

func (v stubVerifier) Verify(_ context.Context, token string) (auth.Identity, error) {
	ident, ok := v.tokens[token]
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	return ident, nil
}

func setup(t *testing.T) (*inmem.Store, *rolestore.InMemStore, stubVerifier, *chi.Mux) {
	t.Helper()
	store := inmem.Open()
	roles := rolestore.NewInMemStore()
	verifier := stubVerifier{tokens: map[string]auth.Identity{
		"u1-token":    {UID: "u1", Email: "u1@example.edu"},
		"u2-token":    {UID: "u2", Email: "u2@example.edu"},
		"admin-token": {UID: "adm", Email: "admin@example.edu"},
		"super-token": {UID: "sup", Email: "super@example.edu"},
	}}
	router := newRouter(Dependencies{
		DB:       store.Database(),
		Verifier: verifier,
		Roles:    roles,
	})
	return store, roles, verifier, router
}

func doRequest(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func decodeObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func Test_profileProjects_scenario(t *testing.T) {
	store, _, _, router := setup(t)

	store.SeedCategory(1, "Domain")
	store.SeedOptionValue(10, "AI", 1)
	projectID := store.SeedProject("Vision Pipeline", "image classifier", "u1")
	store.SeedMember(projectID, "A", "https://linkedin.com/in/a")
	store.SeedMember(projectID, "B", "https://linkedin.com/in/b")
	store.SeedLink(projectID, 1, 10)

	rec := doRequest(t, router, http.MethodGet, "/api/profile-projects", "u1-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	projects := decodeList(t, rec)
	require.Len(t, projects, 1)

	members, ok := projects[0]["members"].([]any)
	require.True(t, ok)
	require.Len(t, members, 2)
	assert.Equal(t, "A", members[0].(map[string]any)["name"])
	assert.Equal(t, "B", members[1].(map[string]any)["name"])

	categories, ok := projects[0]["categories"].([]any)
	require.True(t, ok)
	require.Len(t, categories, 1)
	assert.Equal(t, "Domain", categories[0].(map[string]any)["categoryName"])
	assert.Equal(t, "AI", categories[0].(map[string]any)["optionName"])
}

func Test_profileProjects_tenantIsolation(t *testing.T) {
	store, _, _, router := setup(t)

	store.SeedProject("Mine", "", "u1")
	store.SeedProject("Theirs", "", "u2")
	store.SeedProject("Orphan", "", "")

	rec := doRequest(t, router, http.MethodGet, "/api/profile-projects", "u1-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	projects := decodeList(t, rec)
	require.Len(t, projects, 1)
	assert.Equal(t, "Mine", projects[0]["projectName"])
}

func Test_profileProjects_emptyMembersIsList(t *testing.T) {
	store, _, _, router := setup(t)

	store.SeedProject("Solo", "", "u1")

	rec := doRequest(t, router, http.MethodGet, "/api/profile-projects", "u1-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	projects := decodeList(t, rec)
	require.Len(t, projects, 1)

	members, present := projects[0]["members"]
	require.True(t, present, "members must be present even when empty")
	assert.Equal(t, []any{}, members)
	assert.Equal(t, []any{}, projects[0]["categories"])
}

func Test_profileProjects_unresolvedOptionsDropped(t *testing.T) {
	store, _, _, router := setup(t)

	store.SeedCategory(1, "Domain")
	store.SeedOptionValue(10, "AI", 1)
	projectID := store.SeedProject("Mixed", "", "u1")
	store.SeedLink(projectID, 1, 10)
	store.SeedLink(projectID, 1, 999) // option no longer exists
	store.SeedLink(projectID, 888, 10) // category no longer exists

	rec := doRequest(t, router, http.MethodGet, "/api/profile-projects", "u1-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	projects := decodeList(t, rec)
	require.Len(t, projects, 1)
	categories := projects[0]["categories"].([]any)
	require.Len(t, categories, 1, "unresolved pairs must be silently dropped")
	assert.Equal(t, "AI", categories[0].(map[string]any)["optionName"])
}

func Test_profileProjects_missingTokenSkipsStore(t *testing.T) {
	store, _, _, router := setup(t)
	store.SeedProject("Hidden", "", "u1")

	rec := doRequest(t, router, http.MethodGet, "/api/profile-projects", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, store.QueryCount(), "rejected request must not touch the store")
}

func Test_profileProjects_invalidToken(t *testing.T) {
	store, _, _, router := setup(t)

	rec := doRequest(t, router, http.MethodGet, "/api/profile-projects", "forged", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 0, store.QueryCount())
}

func Test_profileProjects_storeFailure(t *testing.T) {
	store, _, _, router := setup(t)
	store.FailWith(errors.New("connection refused by pg"))

	rec := doRequest(t, router, http.MethodGet, "/api/profile-projects", "u1-token", nil)
	require.GreaterOrEqual(t, rec.Code, 500)

	body := decodeObject(t, rec)
	assert.NotContains(t, fmt.Sprint(body["error"]), "pg", "store internals must not leak")
}

func Test_getProject_detail(t *testing.T) {
	store, _, _, router := setup(t)

	store.SeedCategory(1, "Domain")
	store.SeedOptionValue(10, "AI", 1)
	projectID := store.SeedProject("Vision Pipeline", "image classifier", "u1")
	store.SeedMember(projectID, "A", "https://linkedin.com/in/a")
	store.SeedLink(projectID, 1, 10)
	store.SeedLink(projectID, 1, 999) // dangling option

	rec := doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/projects/%d", projectID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeObject(t, rec)
	assert.Equal(t, "Vision Pipeline", body["projectName"])

	members := body["members"].([]any)
	require.Len(t, members, 1)
	member := members[0].(map[string]any)
	assert.Equal(t, "A", member["name"])
	_, hasID := member["memberId"]
	assert.False(t, hasID, "single-project members expose name and linkedin only")

	// Null-preserving join: the dangling option keeps its row with a
	// null optionName instead of being dropped.
	categories := body["categories"].([]any)
	require.Len(t, categories, 2)
	assert.Equal(t, "AI", categories[0].(map[string]any)["optionName"])
	assert.Nil(t, categories[1].(map[string]any)["optionName"])
	assert.Equal(t, "Domain", categories[1].(map[string]any)["categoryName"])
}

func Test_getProject_invalidID(t *testing.T) {
	_, _, _, router := setup(t)

	for _, raw := range []string{"abc", "-1", "0", "1.5"} {
		rec := doRequest(t, router, http.MethodGet, "/api/projects/"+raw, "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "id %q", raw)
	}
}

func Test_getProject_notFound(t *testing.T) {
	_, _, _, router := setup(t)

	rec := doRequest(t, router, http.MethodGet, "/api/projects/4242", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_createProject(t *testing.T) {
	store, _, _, router := setup(t)
	store.SeedCategory(1, "Domain")
	store.SeedOptionValue(10, "AI", 1)

	payload := map[string]any{
		"projectName":        "AI Tutor",
		"projectDescription": "adaptive exercises",
		"members":            []map[string]string{{"name": "A", "linkedin": "https://linkedin.com/in/a"}},
		"options":            []map[string]uint{{"categoryId": 1, "optionId": 10}},
	}
	rec := doRequest(t, router, http.MethodPost, "/api/projects", "u1-token", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeObject(t, rec)
	assert.Equal(t, "AI Tutor", body["projectName"])
	assert.Equal(t, "u1", body["createdByUid"])
	require.Len(t, body["members"].([]any), 1)
	require.Len(t, body["categories"].([]any), 1)
}

func Test_createProject_validation(t *testing.T) {
	store, _, _, router := setup(t)
	store.SeedCategory(1, "Domain")
	store.SeedCategory(2, "Year")
	store.SeedOptionValue(10, "AI", 1)

	// missing name
	rec := doRequest(t, router, http.MethodPost, "/api/projects", "u1-token", map[string]any{
		"projectDescription": "no name",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// option value paired with the wrong category
	rec = doRequest(t, router, http.MethodPost, "/api/projects", "u1-token", map[string]any{
		"projectName": "Bad Pairing",
		"options":     []map[string]uint{{"categoryId": 2, "optionId": 10}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unknown option value
	rec = doRequest(t, router, http.MethodPost, "/api/projects", "u1-token", map[string]any{
		"projectName": "Dangling",
		"options":     []map[string]uint{{"categoryId": 1, "optionId": 999}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// unauthenticated
	rec = doRequest(t, router, http.MethodPost, "/api/projects", "", map[string]any{
		"projectName": "Nope",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_updateProject(t *testing.T) {
	store, _, _, router := setup(t)
	store.SeedCategory(1, "Domain")
	store.SeedOptionValue(10, "AI", 1)
	store.SeedOptionValue(11, "Web", 1)
	projectID := store.SeedProject("Old Name", "", "u1")
	store.SeedMember(projectID, "A", "")
	store.SeedLink(projectID, 1, 10)

	payload := map[string]any{
		"projectName": "New Name",
		"members":     []map[string]string{{"name": "B", "linkedin": ""}},
		"options":     []map[string]uint{{"categoryId": 1, "optionId": 11}},
	}
	rec := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/projects/%d", projectID), "u1-token", payload)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeObject(t, rec)
	assert.Equal(t, "New Name", body["projectName"])
	members := body["members"].([]any)
	require.Len(t, members, 1)
	assert.Equal(t, "B", members[0].(map[string]any)["name"])
	categories := body["categories"].([]any)
	require.Len(t, categories, 1)
	assert.Equal(t, "Web", categories[0].(map[string]any)["optionName"])
}

func Test_updateProject_authorization(t *testing.T) {
	store, _, _, router := setup(t)
	projectID := store.SeedProject("Protected", "", "u1")

	payload := map[string]any{"projectName": "Hijacked"}
	rec := doRequest(t, router, http.MethodPut, fmt.Sprintf("/api/projects/%d", projectID), "u2-token", payload)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodPut, "/api/projects/999", "u1-token", payload)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_deleteProject(t *testing.T) {
	store, _, _, router := setup(t)
	projectID := store.SeedProject("Doomed", "", "u1")

	rec := doRequest(t, router, http.MethodDelete, "/api/projects", "u1-token", map[string]uint{"projectId": projectID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, fmt.Sprintf("/api/projects/%d", projectID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_deleteProject_authorization(t *testing.T) {
	store, _, _, router := setup(t)
	projectID := store.SeedProject("Moderated", "", "u1")
	store.SeedUser("adm", "admin")

	// a stranger may not delete someone else's project
	rec := doRequest(t, router, http.MethodDelete, "/api/projects", "u2-token", map[string]uint{"projectId": projectID})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// no token at all
	rec = doRequest(t, router, http.MethodDelete, "/api/projects", "", map[string]uint{"projectId": projectID})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// an admin may moderate any project
	rec = doRequest(t, router, http.MethodDelete, "/api/projects", "admin-token", map[string]uint{"projectId": projectID})
	assert.Equal(t, http.StatusOK, rec.Code)

	// deleting a project that never existed
	rec = doRequest(t, router, http.MethodDelete, "/api/projects", "u1-token", map[string]uint{"projectId": 999})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_listCategories(t *testing.T) {
	store, _, _, router := setup(t)
	store.SeedCategory(1, "Domain")
	store.SeedCategory(2, "Project Type")
	store.SeedOptionValue(10, "AI", 1)

	rec := doRequest(t, router, http.MethodGet, "/api/categories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeObject(t, rec)
	assert.EqualValues(t, 2, body["total"])
	categories := body["categories"].([]any)
	require.Len(t, categories, 2)
	first := categories[0].(map[string]any)
	assert.Equal(t, "Domain", first["category"])
	require.Len(t, first["options"].([]any), 1)
}

func Test_profileRole(t *testing.T) {
	_, roles, _, router := setup(t)
	require.NoError(t, roles.SetRole(context.Background(), "u1@example.edu", "admin"))

	rec := doRequest(t, router, http.MethodGet, "/api/profile-role", "u1-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeObject(t, rec)
	assert.Equal(t, "admin", body["role"])

	// no document recorded: role comes back null, not an error
	rec = doRequest(t, router, http.MethodGet, "/api/profile-role", "u2-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeObject(t, rec)
	assert.Nil(t, body["role"])
}
