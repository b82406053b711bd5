package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_adminShell_requiresSuperAdmin(t *testing.T) {
	store, _, _, router := setup(t)
	store.SeedUser("adm", "admin")

	// plain users and even admins are rejected
	rec := doRequest(t, router, http.MethodGet, "/api/admin/admins", "u1-token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/admin/admins", "admin-token", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/admin/admins", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func Test_adminIdentities_crud(t *testing.T) {
	store, _, _, router := setup(t)
	store.SeedUser("sup", "superadmin")

	rec := doRequest(t, router, http.MethodPost, "/api/admin/admins", "super-token", map[string]string{
		"email": "new@example.edu",
		"role":  "admin",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/admin/admins", "super-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeObject(t, rec)
	assert.EqualValues(t, 1, body["total"])
	admins := body["admins"].([]any)
	require.Len(t, admins, 1)
	assert.Equal(t, "new@example.edu", admins[0].(map[string]any)["email"])

	rec = doRequest(t, router, http.MethodDelete, "/api/admin/admins/new@example.edu", "super-token", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodDelete, "/api/admin/admins/new@example.edu", "super-token", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func Test_adminIdentities_validation(t *testing.T) {
	store, _, _, router := setup(t)
	store.SeedUser("sup", "superadmin")

	rec := doRequest(t, router, http.MethodPost, "/api/admin/admins", "super-token", map[string]string{
		"role": "admin",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/admin/admins", "super-token", map[string]string{
		"email": "x@example.edu",
		"role":  "emperor",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_adminDashboard_declaredButUnbuilt(t *testing.T) {
	store, _, _, router := setup(t)
	store.SeedUser("sup", "superadmin")

	rec := doRequest(t, router, http.MethodGet, "/api/admin/pending-projects", "super-token", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/admin/projects/1/feature", "super-token", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
