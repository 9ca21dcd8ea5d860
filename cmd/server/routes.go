package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/simplystudent09/sanatan-spirituality/internal/content"
	"github.com/simplystudent09/sanatan-spirituality/internal/db"
	"github.com/simplystudent09/sanatan-spirituality/internal/http/api"
	siteapi "github.com/simplystudent09/sanatan-spirituality/internal/http/api/site/endpoints"
	"github.com/simplystudent09/sanatan-spirituality/internal/webhook"
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, store db.Store, contentSvc *content.Service, relay *webhook.Client) {
	// CORS: the site is a static frontend served from another origin.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api/site",
	},
		siteapi.EventsModule(contentSvc),
		siteapi.TeamModule(contentSvc),
		siteapi.JoinModule(store, relay),
		siteapi.NewsletterModule(store),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
