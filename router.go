package main

import (
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shortlink-be/internal/controllers"
	"shortlink-be/internal/middleware"
	"shortlink-be/internal/service"
)

func newRouter(urlService service.URLService, logger *slog.Logger) *gin.Engine {
	shortenerController := controllers.NewShortenerController(urlService, logger)
	qrcodeController := controllers.NewQRCodeController(urlService, logger)
	healthController := controllers.NewHealthController(urlService, logger)

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(logger), cors.Default())

	indexController := controllers.NewIndexController(router.Routes)

	// Static routes win over /:path in gin's tree
	router.GET("/", indexController.ListRoutes)
	router.GET("/health", healthController.Check)

	router.GET("/:path", shortenerController.RedirectToURL)
	router.GET("/:path/qrcode", qrcodeController.GenerateQRCode)
	router.POST("/", middleware.RequireCreateURLRequest(logger), shortenerController.CreateShortURL)

	return router
}
