package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"explicador-backend/internal/config"
	"explicador-backend/internal/server"
)

func main() {
	cfg := config.Load()
	s, err := server.NewServer(cfg)
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
		// leave room for the upstream call plus rendering
		WriteTimeout: cfg.UpstreamTimeout + 10*time.Second,
	}
	fmt.Printf("Explicador server listening on %s\n", addr)
	log.Fatal(srv.ListenAndServe())
}
