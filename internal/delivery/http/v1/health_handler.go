package v1

import (
	"net/http"

	"github.com/mohamedtarek64/mohamed-elkenany-portfolio/internal/domain"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC domain.HealthUsecase
}

func NewHealthHandler(public *gin.RouterGroup, healthUC domain.HealthUsecase) {
	handler := &HealthHandler{
		healthUC: healthUC,
	}

	public.GET("/health", handler.Check)
	public.HEAD("/health", handler.Ping)
}

// Check godoc
// @Summary      Health snapshot
// @Description  Status, uptime and version of the API.
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.HealthStatus
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}

// Ping answers HEAD probes with an empty 200.
func (h *HealthHandler) Ping(c *gin.Context) {
	c.Status(http.StatusOK)
}
