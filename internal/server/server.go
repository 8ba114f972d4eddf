package server

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"satellite-recruit-backend/internal/database"
	"satellite-recruit-backend/internal/storage"
)

// Server contain port which server are running on, database instance and
// file storage client
type Server struct {
	port int

	DB    *database.DBinstanceStruct
	Files storage.Client
}

// NewServer construct new Server instance
func NewServer() *http.Server {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		port = 8080
	}

	db, err := database.GetMainDB()
	if err != nil {
		log.Fatalf("Database failed to initialized: %s", err)
	}

	files, err := storage.NewLocalClient(os.Getenv("UPLOAD_DIR"))
	if err != nil {
		log.Fatalf("Upload storage failed to initialized: %s", err)
	}

	s := &Server{
		port:  port,
		DB:    db,
		Files: files,
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
