package main

import (
	"log"

	"github.com/campusexchange/backend/internal/config"
	"github.com/campusexchange/backend/internal/db"
	"github.com/campusexchange/backend/internal/model"
	"github.com/campusexchange/backend/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	conn, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	if err := conn.AutoMigrate(&model.User{}, &model.Listing{}, &model.Transaction{}, &model.Feedback{}); err != nil {
		log.Fatalf("auto migrate error: %v", err)
	}

	srv := server.New(conn)
	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
