package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "talenttrace/docs" // Swagger docs
	"talenttrace/internal/api"
	"talenttrace/internal/config"
	"talenttrace/internal/cv"
	"talenttrace/internal/storage"
)

// @title TalentTrace API
// @version 1.0
// @description Resume intake and candidate scoring API

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api

func main() {
	cfg := config.LoadConfig()

	var store storage.Store
	if cfg.DatabaseURL != "" {
		log.Println("Connecting to database...")
		db, err := storage.NewDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("db open:", err)
		}
		defer db.Close()
		log.Println("Database connected successfully!")
		store = db
	} else {
		// Start without a database, matching local development usage.
		log.Println("Warning: DATABASE_URL not set, using in-memory store")
		store = storage.NewMemoryStore()
	}

	parser := cv.NewParser(cfg.UploadsDir)
	apiSrv := api.NewAPI(store, parser, cfg)
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second, // file uploads
		WriteTimeout: 2 * time.Minute,  // remote scoring round trips
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Println("server shutdown:", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("TalentTrace server listening on :%s\n", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}

	<-idleConnsClosed
}
