package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"satellite-recruit-backend/internal/database"
	"satellite-recruit-backend/internal/testutil"
)

func TestGetDepartments(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/departments", http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)

	var departments []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &departments))
	assert.GreaterOrEqual(t, len(departments), 3)

	first := departments[0]
	assert.Equal(t, "Engineering", first["name"])
	assert.NotEmpty(t, first["icon"])
	assert.NotEmpty(t, first["color"])
	assert.NotEmpty(t, first["requirements"])
	assert.NotEmpty(t, first["responsibilities"])
}

func TestGetDepartmentByID(t *testing.T) {
	r, _ := newTestRouter(t)
	seeded := database.TestDepartments[0]

	rec, resp := testutil.MakeJSONRequest(nil, "", r, fmt.Sprintf("/departments/%d", seeded.ID), http.MethodGet)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, seeded.Name, resp["name"])
	assert.Equal(t, float64(seeded.ID), resp["id"])
}

func TestGetDepartmentNonNumericID(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/departments/power-system", http.MethodGet)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDepartmentMissing(t *testing.T) {
	r, _ := newTestRouter(t)

	rec, _ := testutil.MakeJSONRequest(nil, "", r, "/departments/999999", http.MethodGet)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
