package database

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	m "satellite-recruit-backend/internal/model"
	"satellite-recruit-backend/internal/utilities"
)

var testDBInstance *DBinstanceStruct
var teardown func(context.Context, ...testcontainers.TerminateOption) error

// Exported test fixtures
var (
	TestAdminUser m.User

	// TestSeedPassword is the plain password of the seeded admin user.
	TestSeedPassword = "SeedPass123!"

	// TestDepartments holds the departments seeded by SeedDepartments,
	// ordered by id.
	TestDepartments []m.Department
)

// GetTestDB starts a PostgreSQL test container and returns a teardown function,
// the DB instance, and any error encountered during setup.
func GetTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, *DBinstanceStruct, error) {

	if testDBInstance != nil && teardown != nil {
		return teardown, testDBInstance, nil
	}

	// Database configuration
	var (
		dbName = "database"
		dbPwd  = "password"
		dbUser = "user"
	)

	dbContainer, err := postgres.Run(
		context.Background(),
		"postgres:latest",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPwd),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second)),
	)
	if err != nil {
		return nil, nil, err
	}

	dbHost, err := dbContainer.Host(context.Background())
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	dbPort, err := dbContainer.MappedPort(context.Background(), nat.Port("5432/tcp"))
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	config := &DBConfig{
		useConstr: true,
		Constr:    fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", dbHost, dbPort.Port(), dbUser, dbPwd, dbName),
	}

	db, err := NewDBInstance(config)
	if err != nil {
		return dbContainer.Terminate, nil, err
	}

	if err := seedTestData(db); err != nil {
		_ = dbContainer.Terminate(context.Background())
		return nil, nil, err
	}

	testDBInstance = db
	teardown = dbContainer.Terminate

	return dbContainer.Terminate, db, nil
}

// seedTestData creates the admin user when missing and loads the seeded
// departments into the exported fixtures.
func seedTestData(db *DBinstanceStruct) error {
	var admin m.User
	err := db.Where("role = ?", m.RoleAdmin).First(&admin).Error
	if err != nil {
		hashedPwd, errHash := utilities.HashPassword(TestSeedPassword)
		if errHash != nil {
			return errHash
		}
		admin = m.User{
			Username: "admin_user",
			Password: hashedPwd,
			Role:     m.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
	}
	TestAdminUser = admin

	if err := db.Order("id ASC").Find(&TestDepartments).Error; err != nil {
		return err
	}
	if len(TestDepartments) == 0 {
		return fmt.Errorf("expected seeded departments in test database")
	}

	return nil
}
