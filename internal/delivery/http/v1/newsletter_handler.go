package v1

import (
	"net/http"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/delivery/http/response"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"
	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type NewsletterHandler struct {
	newsletterUC domain.NewsletterUsecase
}

func NewNewsletterHandler(public *gin.RouterGroup, newsletterUC domain.NewsletterUsecase, limiter gin.HandlerFunc) {
	handler := &NewsletterHandler{
		newsletterUC: newsletterUC,
	}

	public.POST("/newsletter", limiter, handler.Subscribe)
}

// Subscribe godoc
// @Summary      Subscribe to the newsletter
// @Tags         newsletter
// @Accept       json
// @Produce      json
// @Param        subscription  body      domain.NewsletterRequest  true  "Subscription Data"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /newsletter [post]
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req domain.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("A valid email address is required"))
		return
	}

	outcome, err := h.newsletterUC.Subscribe(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}
	if !outcome.Success {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to process subscription. Please try again later.", nil))
		return
	}

	response.Success(c, http.StatusOK, "Subscribed successfully!", gin.H{
		"simulated": outcome.Simulated,
	})
}
