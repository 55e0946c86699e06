package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// setupRoutes configures all routes
func (s *Server) setupRoutes() {
	// Health check endpoint
	s.router.GET("/health", s.healthCheck)

	// Landing page with navigation buttons
	s.router.GET("/", s.home)

	// Attraction routes
	attractions := s.router.Group("/attractions")
	{
		attractions.GET("", s.listAttractions)
		attractions.GET("/top-rated", s.topRatedAttractions)
		attractions.GET("/:id/edit", s.editAttraction)
		attractions.POST("", s.createAttraction)
		attractions.POST("/:id", s.updateAttraction)
		attractions.POST("/:id/delete", s.deleteAttraction)
	}

	// Visitor routes
	visitors := s.router.Group("/visitors")
	{
		visitors.GET("", s.listVisitors)
		visitors.GET("/activity", s.visitorActivity)
		visitors.GET("/:id/edit", s.editVisitor)
		visitors.POST("", s.createVisitor)
		visitors.POST("/:id", s.updateVisitor)
		visitors.POST("/:id/delete", s.deleteVisitor)
	}

	// Review routes
	reviews := s.router.Group("/reviews")
	{
		reviews.GET("", s.listReviews)
		reviews.GET("/:id/edit", s.editReview)
		reviews.POST("", s.createReview)
		reviews.POST("/:id", s.updateReview)
		reviews.POST("/:id/delete", s.deleteReview)
	}

	// Serve static assets
	s.router.Static("/static", s.config.Web.StaticDir)

	s.router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
