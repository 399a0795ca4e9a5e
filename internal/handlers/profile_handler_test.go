package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	r, db := setupAPI(t)

	token := signup(t, r, "worker@example.com", "password1", "employee")
	seedEmployeeRow(t, db, "Worker", "worker@example.com", "Engineering")

	w := doJSON(t, r, http.MethodGet, "/api/employees/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Worker", body["name"])
	assert.Equal(t, "worker@example.com", body["email"])
}

func TestGetProfileWithoutEmployeeRow(t *testing.T) {
	r, _ := setupAPI(t)

	// A login account with no matching employee record.
	token := signup(t, r, "orphan@example.com", "password1", "employee")

	w := doJSON(t, r, http.MethodGet, "/api/employees/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateProfileImage(t *testing.T) {
	r, db := setupAPI(t)

	token := signup(t, r, "worker@example.com", "password1", "employee")
	seedEmployeeRow(t, db, "Worker", "worker@example.com", "Engineering")

	w := doJSON(t, r, http.MethodPatch, "/api/employees/profile", token, gin.H{
		"image_url": "https://bucket.s3.amazonaws.com/employee-photos/me.png",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "https://bucket.s3.amazonaws.com/employee-photos/me.png", body["image_url"])

	// Only the image changed.
	assert.Equal(t, "Worker", body["name"])
	assert.Equal(t, "Engineering", body["department"])
}

func TestUpdateProfileImageMissingURL(t *testing.T) {
	r, db := setupAPI(t)

	token := signup(t, r, "worker@example.com", "password1", "employee")
	seedEmployeeRow(t, db, "Worker", "worker@example.com", "Engineering")

	w := doJSON(t, r, http.MethodPatch, "/api/employees/profile", token, gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfileRequiresToken(t *testing.T) {
	r, _ := setupAPI(t)

	w := doJSON(t, r, http.MethodGet, "/api/employees/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
