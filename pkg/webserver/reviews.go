package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/models"
	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/utils"
)

// CreateReviewForm carries the full review field set. The references are
// only accepted at creation.
type CreateReviewForm struct {
	Visitor    string `form:"visitor" binding:"required"`
	Attraction string `form:"attraction" binding:"required"`
	Score      int    `form:"score"`
	Comment    string `form:"comment"`
}

// UpdateReviewForm carries the mutable review fields
type UpdateReviewForm struct {
	Score   int    `form:"score"`
	Comment string `form:"comment"`
}

// listReviews renders all reviews with their references resolved
func (s *Server) listReviews(c *gin.Context) {
	reviews, err := s.store.ListReviews(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to list reviews")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.HTML(http.StatusOK, "reviews.html", gin.H{"reviews": reviews})
}

// editReview renders the edit form for one review with both references
// resolved into full documents
func (s *Server) editReview(c *gin.Context) {
	id, err := s.parseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	review, err := s.store.GetReview(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Review not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get review")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.HTML(http.StatusOK, "update-review.html", gin.H{"review": review})
}

// createReview inserts a new review and redirects to the list
func (s *Server) createReview(c *gin.Context) {
	var form CreateReviewForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	visitorID, err := s.parseObjectID(form.Visitor)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	attractionID, err := s.parseObjectID(form.Attraction)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	review := &models.Review{
		Visitor:    visitorID,
		Attraction: attractionID,
		Score:      form.Score,
		Comment:    s.validator.SanitizeInput(form.Comment),
	}

	if err := s.store.CreateReview(c.Request.Context(), review); err != nil {
		s.logger.WithError(err).Error("Failed to create review")
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	s.logger.LogRecord("reviews", review.ID.Hex(), "create", true)
	c.Redirect(http.StatusFound, "/reviews")
}

// updateReview sets score and comment on the matched document. A missing id
// matches nothing and still redirects.
func (s *Server) updateReview(c *gin.Context) {
	id, err := s.parseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	var form UpdateReviewForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	comment := s.validator.SanitizeInput(form.Comment)

	if err := s.store.UpdateReview(c.Request.Context(), id, form.Score, comment); err != nil {
		s.logger.WithError(err).Error("Failed to update review")
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	s.logger.LogRecord("reviews", id.Hex(), "update", true)
	c.Redirect(http.StatusFound, "/reviews")
}

// deleteReview removes the document if present
func (s *Server) deleteReview(c *gin.Context) {
	id, err := s.parseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	if err := s.store.DeleteReview(c.Request.Context(), id); err != nil {
		s.logger.WithError(err).Error("Failed to delete review")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	s.logger.LogRecord("reviews", id.Hex(), "delete", true)
	c.Redirect(http.StatusFound, "/reviews")
}
