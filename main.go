package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"contactdesk/adapters/excel"
	"contactdesk/internal/config"
	"contactdesk/internal/dataset"
	"contactdesk/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(appConfig.Server.GinMode)

	// The workbook is opened lazily on first request; warn early if the
	// path is already known to be wrong so the operator finds out before
	// the first user does.
	if _, err := os.Stat(appConfig.Data.WorkbookFile); os.IsNotExist(err) {
		log.Printf("[main] WARNING: workbook %s does not exist; pages will show an error until it appears", appConfig.Data.WorkbookFile)
	}

	source := excel.NewSource(appConfig.Data.WorkbookFile)
	cache := dataset.NewCache(source)

	server, err := ui.NewServer(cache)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Start pprof server for performance profiling
	if appConfig.Profiling.Enabled {
		go func() {
			log.Printf("Performance profiling server starting on :%s", appConfig.Profiling.Port)
			if err := http.ListenAndServe(":"+appConfig.Profiling.Port, nil); err != nil {
				log.Printf("pprof server failed: %v", err)
			}
		}()
	}

	log.Printf("Starting contactdesk on port %s (workbook: %s)", appConfig.Server.Port, appConfig.Data.WorkbookFile)
	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
