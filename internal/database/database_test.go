package database

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"

	"satellite-recruit-backend/internal/model"
)

var testDB *DBinstanceStruct

func TestMain(m *testing.M) {
	var err error
	var testTeardown func(context.Context, ...testcontainers.TerminateOption) error
	testTeardown, testDB, err = GetTestDB()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start test db: %v\n", err)
		os.Exit(1)
	}

	m.Run()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if testTeardown != nil {
		_ = testTeardown(ctx)
	}
}

func TestHealth(t *testing.T) {
	stats := testDB.Health()
	assert.Equal(t, "up", stats["status"])
}

func TestSeedDepartmentsIsIdempotent(t *testing.T) {
	var before int64
	assert.NoError(t, testDB.Model(&model.Department{}).Count(&before).Error)
	assert.GreaterOrEqual(t, before, int64(3))

	// Running the bootstrap again must not duplicate rows
	assert.NoError(t, testDB.SeedDepartments())

	var after int64
	assert.NoError(t, testDB.Model(&model.Department{}).Count(&after).Error)
	assert.Equal(t, before, after)
}

func TestSeededDepartmentCatalogue(t *testing.T) {
	var departments []model.Department
	assert.NoError(t, testDB.Order("id ASC").Find(&departments).Error)

	names := make([]string, 0, len(departments))
	for _, d := range departments {
		names = append(names, d.Name)
	}
	assert.Contains(t, names, "Engineering")
	assert.Contains(t, names, "Communications")
	assert.Contains(t, names, "Data Science")

	for _, d := range departments {
		assert.NotEmpty(t, d.Name)
		assert.NotEmpty(t, d.Color)
		assert.NotEmpty(t, d.Requirements)
		assert.NotEmpty(t, d.Responsibilities)
	}
}
