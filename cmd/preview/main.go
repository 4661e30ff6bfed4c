package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/chesscoach/puzzlebuild/internal/api"
	"github.com/chesscoach/puzzlebuild/internal/config"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatal(err)
	}

	problemApi := api.NewProblemApi(cfg.Build.Output, cfg.Build.Index)

	r := gin.Default()
	r.GET("/api/collections", problemApi.Collections)
	r.GET("/api/problems/:collection/:file", problemApi.Problems)
	r.Static("/data", cfg.Build.Output)

	if err := r.Run(cfg.Server.Host + ":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
