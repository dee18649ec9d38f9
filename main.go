package main

import (
	"time"

	"github.com/scribeapp/scribe/config"
	"github.com/scribeapp/scribe/routes"
	"github.com/scribeapp/scribe/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase()

	utils.StartBlacklistJanitor(5 * time.Minute)

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("starting server on port %s", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
