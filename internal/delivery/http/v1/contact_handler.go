package v1

import (
	"net/http"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, submitLimiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", submitLimiter, handler.SubmitContact)
	public.GET("/contact", handler.Probe)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  domain.ContactResponse
// @Failure      400      {object}  domain.ContactResponse
// @Failure      500      {object}  domain.ContactResponse
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	// The payload is parsed as arbitrary JSON and validated against the
	// shared rules below; the client's own validation is never trusted.
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.ContactResponse{
			Success: false,
			Message: "Invalid request body",
			Error:   "request body must be a JSON object with string fields",
		})
		return
	}

	if violations := h.contactUC.Validate(&req); violations != nil {
		c.JSON(http.StatusBadRequest, domain.ContactResponse{
			Success: false,
			Message: "Validation error",
			Errors:  violations,
		})
		return
	}

	outcome := h.contactUC.Submit(c.Request.Context(), &req)
	if !outcome.Success {
		c.JSON(http.StatusInternalServerError, domain.ContactResponse{
			Success: false,
			Message: "Failed to send email",
			Error:   outcome.Error,
		})
		return
	}

	c.JSON(http.StatusOK, domain.ContactResponse{
		Success:     true,
		Message:     "Email sent successfully",
		EmailResult: &outcome,
	})
}

// Probe godoc
// @Summary      Contact API liveness probe
// @Tags         contact
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /contact [get]
func (h *ContactHandler) Probe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Contact API is working"})
}
