package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/models"
	"github.com/Syed-Muaarij-Nadeem/LabFinalWeb/pkg/utils"
)

// VisitorForm carries the url-encoded visitor fields. The visited
// attractions list is never touched through forms.
type VisitorForm struct {
	Name  string `form:"name" binding:"required"`
	Email string `form:"email"`
}

// listVisitors renders all visitors in insertion order
func (s *Server) listVisitors(c *gin.Context) {
	visitors, err := s.store.ListVisitors(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to list visitors")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.HTML(http.StatusOK, "visitors.html", gin.H{"visitors": visitors})
}

// editVisitor renders the edit form for one visitor
func (s *Server) editVisitor(c *gin.Context) {
	id, err := s.parseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	visitor, err := s.store.GetVisitor(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Visitor not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get visitor")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	c.HTML(http.StatusOK, "update-visitor.html", gin.H{"visitor": visitor})
}

// createVisitor inserts a new visitor and redirects to the list
func (s *Server) createVisitor(c *gin.Context) {
	var form VisitorForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	visitor := &models.Visitor{
		Name:  s.validator.SanitizeInput(form.Name),
		Email: s.validator.SanitizeInput(form.Email),
	}

	if err := s.store.CreateVisitor(c.Request.Context(), visitor); err != nil {
		s.logger.WithError(err).Error("Failed to create visitor")
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	s.logger.LogRecord("visitors", visitor.ID.Hex(), "create", true)
	c.Redirect(http.StatusFound, "/visitors")
}

// updateVisitor sets name and email on the matched document. A missing id
// matches nothing and still redirects.
func (s *Server) updateVisitor(c *gin.Context) {
	id, err := s.parseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	var form VisitorForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	name := s.validator.SanitizeInput(form.Name)
	email := s.validator.SanitizeInput(form.Email)

	if err := s.store.UpdateVisitor(c.Request.Context(), id, name, email); err != nil {
		s.logger.WithError(err).Error("Failed to update visitor")
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(err.Error()))
		return
	}

	s.logger.LogRecord("visitors", id.Hex(), "update", true)
	c.Redirect(http.StatusFound, "/visitors")
}

// deleteVisitor removes the document if present. Reviews referencing the
// visitor are left dangling.
func (s *Server) deleteVisitor(c *gin.Context) {
	id, err := s.parseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	if err := s.store.DeleteVisitor(c.Request.Context(), id); err != nil {
		s.logger.WithError(err).Error("Failed to delete visitor")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(err.Error()))
		return
	}

	s.logger.LogRecord("visitors", id.Hex(), "delete", true)
	c.Redirect(http.StatusFound, "/visitors")
}

// visitorActivity renders the review-count-per-visitor report
func (s *Server) visitorActivity(c *gin.Context) {
	activity, err := s.store.VisitorActivity(c.Request.Context())
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch visitor activity")
		c.String(http.StatusInternalServerError, "Error fetching visitors' activity.")
		return
	}

	c.HTML(http.StatusOK, "visitors-activity.html", gin.H{"visitorActivity": activity})
}
