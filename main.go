package main

import (
	"fmt"
	"log"

	"github.com/meghk47/FindWorker/configs"
	"github.com/meghk47/FindWorker/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedWorkers(); err != nil {
		log.Fatalf("seed workers failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, configs.DB(), cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
