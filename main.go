package main

import (
	"log"

	"github.com/GrainArc/RoofLine/config"
	"github.com/GrainArc/RoofLine/models"
	"github.com/GrainArc/RoofLine/routers"
	"github.com/gin-gonic/gin"
)

func main() {
	models.InitDB()

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	routers.FacetRouters(r)

	addr := config.MainRouter
	if addr == "" {
		addr = ":8426"
	}
	log.Printf("RoofLine 服务启动: %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("服务启动失败: %v", err)
	}
}
