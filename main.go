package main

import (
	"fmt"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	utils.InitLogger()
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		logrus.WithError(err).Fatal("connect database failed")
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		logrus.WithError(err).Fatal("migrate failed")
	}

	if err := configs.SeedAdmin(); err != nil {
		logrus.WithError(err).Fatal("seed admin failed")
	}
	if err := configs.SeedDemo(); err != nil {
		logrus.WithError(err).Fatal("seed demo data failed")
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
