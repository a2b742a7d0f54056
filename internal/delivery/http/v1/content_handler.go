package v1

import (
	"net/http"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/delivery/http/response"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUC domain.ContentUsecase
}

// NewContentHandler registers the read-only portfolio content routes.
func NewContentHandler(public *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{
		contentUC: contentUC,
	}

	content := public.Group("/content")
	content.GET("/profile", handler.GetProfile)
	content.GET("/skills", handler.GetSkills)
	content.GET("/projects", handler.GetProjects)
	content.GET("/experience", handler.GetExperience)
	content.GET("/social", handler.GetSocialLinks)
}

// GetProfile godoc
// @Summary      Portfolio owner profile
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /content/profile [get]
func (h *ContentHandler) GetProfile(c *gin.Context) {
	response.Success(c, http.StatusOK, "OK", h.contentUC.Profile())
}

// GetSkills godoc
// @Summary      Skill list
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /content/skills [get]
func (h *ContentHandler) GetSkills(c *gin.Context) {
	response.Success(c, http.StatusOK, "OK", h.contentUC.Skills())
}

// GetProjects godoc
// @Summary      Project list
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /content/projects [get]
func (h *ContentHandler) GetProjects(c *gin.Context) {
	response.Success(c, http.StatusOK, "OK", h.contentUC.Projects())
}

// GetExperience godoc
// @Summary      Work experience
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /content/experience [get]
func (h *ContentHandler) GetExperience(c *gin.Context) {
	response.Success(c, http.StatusOK, "OK", h.contentUC.Experience())
}

// GetSocialLinks godoc
// @Summary      Social links
// @Tags         content
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /content/social [get]
func (h *ContentHandler) GetSocialLinks(c *gin.Context) {
	response.Success(c, http.StatusOK, "OK", h.contentUC.SocialLinks())
}
