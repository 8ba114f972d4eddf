package main

import (
	"errors"
	"log"
	"net/http"

	"satellite-recruit-backend/internal/server"
)

func main() {
	srv := server.NewServer()

	log.Printf("Listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %s", err)
	}
}
