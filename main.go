package main

import (
	"context"
	"log"
	"os"

	"banking-management/api"
	"banking-management/bank"
	"banking-management/config"
	"banking-management/idgen"
	"banking-management/session"
	"banking-management/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	// One directory for the life of the process; nothing is persisted.
	teller := bank.NewTeller(store.NewDirectory(), idgen.UUID{})

	if cfg.ServeHTTP() {
		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}
		r := api.NewRouter(teller, cfg.CORSOrigins)
		log.Printf("Starting banking API on %s...", cfg.HTTPAddr)
		if err := r.Run(cfg.HTTPAddr); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
		return
	}

	s := session.New(teller, session.NewLineReader(os.Stdin), os.Stdout)
	if err := s.Run(context.Background()); err != nil {
		log.Fatalf("Session ended: %v", err)
	}
}
