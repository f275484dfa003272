package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-api/internal/shared/middleware"
	"library-api/internal/shared/response"
	"library-api/pkg/container"
)

const healthTimeout = 2 * time.Second

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
	)
	router.NoRoute(response.NotFound)

	api := router.Group(c.Config.App.APIPrefix)
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthorRoutes(api, c)
		setupBookRoutes(api, c)
	}

	return router
}

// ========================================
// AUTHOR ROUTES
// ========================================
func setupAuthorRoutes(api *gin.RouterGroup, c *container.Container) {
	authors := api.Group("/authors")
	{
		authors.GET("/", c.AuthorHandler.List)
		authors.POST("/", c.AuthorHandler.Create)
		authors.GET("/:id/", c.AuthorHandler.GetByID)
		authors.PUT("/:id/", c.AuthorHandler.Replace)
		authors.DELETE("/:id/", c.AuthorHandler.Delete)
	}
	api.POST("/listing-all-authors/", c.AuthorHandler.ListPage)
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(api *gin.RouterGroup, c *container.Container) {
	books := api.Group("/books")
	{
		books.GET("/", c.BookHandler.List)
		books.POST("/", c.BookHandler.Create)
		books.GET("/:id/", c.BookHandler.GetByID)
		books.PUT("/:id/", c.BookHandler.Replace)
		books.DELETE("/:id/", c.BookHandler.Delete)
	}
	api.POST("/listing-all-books/", c.BookHandler.ListPage)
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		if appCtx.Store == nil {
			response.ServiceUnavailable(c, "database not connected")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := appCtx.Store.Ping(ctx); err != nil {
			response.ServiceUnavailable(c, "database unavailable")
			return
		}

		response.Success(c, http.StatusOK, "ok", gin.H{
			"database": appCtx.Config.Database.Driver,
			"version":  appCtx.Config.App.Version,
		})
	}
}
