package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/models"
	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/utils"
)

// topRatedLimit caps the top-rated attractions report
const topRatedLimit = 5

// AttractionForm carries the url-encoded attraction fields
type AttractionForm struct {
	Name     string  `form:"name" binding:"required"`
	Location string  `form:"location"`
	EntryFee float64 `form:"entryFee"`
	Rating   float64 `form:"rating"`
}

// listAttractions renders all attractions in insertion order
func (s *Server) listAttractions(c *gin.Context) {
	attractions, err := s.store.ListAttractions(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to list attractions")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.HTML(http.StatusOK, "attractions.html", gin.H{"attractions": attractions})
}

// editAttraction renders the edit form for one attraction
func (s *Server) editAttraction(c *gin.Context) {
	id, err := s.parseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	attraction, err := s.store.GetAttraction(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Attraction not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get attraction")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.HTML(http.StatusOK, "update-attraction.html", gin.H{"attraction": attraction})
}

// createAttraction inserts a new attraction and redirects to the list
func (s *Server) createAttraction(c *gin.Context) {
	var form AttractionForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	attraction := &models.Attraction{
		Name:     s.validator.SanitizeInput(form.Name),
		Location: s.validator.SanitizeInput(form.Location),
		EntryFee: form.EntryFee,
		Rating:   form.Rating,
	}

	if err := s.store.CreateAttraction(c.Request.Context(), attraction); err != nil {
		s.logger.WithError(err).Error("Failed to create attraction")
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	s.logger.LogRecord("attractions", attraction.ID.Hex(), "create", true)
	c.Redirect(http.StatusFound, "/attractions")
}

// updateAttraction replaces all four fields on the matched document. A
// missing id matches nothing and still redirects.
func (s *Server) updateAttraction(c *gin.Context) {
	id, err := s.parseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	var form AttractionForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	attraction := models.Attraction{
		Name:     s.validator.SanitizeInput(form.Name),
		Location: s.validator.SanitizeInput(form.Location),
		EntryFee: form.EntryFee,
		Rating:   form.Rating,
	}

	if err := s.store.UpdateAttraction(c.Request.Context(), id, attraction); err != nil {
		s.logger.WithError(err).Error("Failed to update attraction")
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	s.logger.LogRecord("attractions", id.Hex(), "update", true)
	c.Redirect(http.StatusFound, "/attractions")
}

// deleteAttraction removes the document if present; deleting a missing id
// is not an error
func (s *Server) deleteAttraction(c *gin.Context) {
	id, err := s.parseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	if err := s.store.DeleteAttraction(c.Request.Context(), id); err != nil {
		s.logger.WithError(err).Error("Failed to delete attraction")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	s.logger.LogRecord("attractions", id.Hex(), "delete", true)
	c.Redirect(http.StatusFound, "/attractions")
}

// topRatedAttractions renders the top five attractions by rating
func (s *Server) topRatedAttractions(c *gin.Context) {
	attractions, err := s.store.TopRatedAttractions(c.Request.Context(), topRatedLimit)
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch top-rated attractions")
		c.String(http.StatusInternalServerError, "Error fetching top-rated attractions.")
		return
	}

	c.HTML(http.StatusOK, "attractions.html", gin.H{"attractions": attractions})
}
