package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motherproperties/website-backend/content"
	"github.com/motherproperties/website-backend/errors"
)

// ContentHandler serves the structured marketing copy consumed by the
// site frontend.
type ContentHandler struct{}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

// GetSite godoc
// @Summary      Get site-wide configuration
// @Description  Returns brand, contact, social and navigation data
// @Tags         content
// @Produce      json
// @Success      200  {object}  content.Site
// @Router       /site [get]
func (h *ContentHandler) GetSite(c *gin.Context) {
	c.JSON(http.StatusOK, content.SiteContent())
}

// ListProjects godoc
// @Summary      List projects
// @Description  Returns the project summaries shown on the projects page
// @Tags         content
// @Produce      json
// @Success      200  {array}  content.Project
// @Router       /projects [get]
func (h *ContentHandler) ListProjects(c *gin.Context) {
	c.JSON(http.StatusOK, content.Projects())
}

// GetProject godoc
// @Summary      Get one project
// @Description  Returns a single project by its slug
// @Tags         content
// @Produce      json
// @Param        slug  path      string  true  "Project slug"
// @Success      200   {object}  content.Project
// @Failure      404   {object}  types.ErrorResponse
// @Router       /projects/{slug} [get]
func (h *ContentHandler) GetProject(c *gin.Context) {
	slug := c.Param("slug")
	project, ok := content.ProjectBySlug(slug)
	if !ok {
		_ = c.Error(errors.NotFound("Project", slug))
		return
	}
	c.JSON(http.StatusOK, project)
}
