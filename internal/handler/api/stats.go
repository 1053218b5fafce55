package api

import (
	"net/http"

	resdto "boilerbites/internal/handler/dto/response"
	"boilerbites/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsQueries queries.StatsQueries
}

func NewStatsHandler(statsQueries queries.StatsQueries) *StatsHandler {
	return &StatsHandler{
		statsQueries: statsQueries,
	}
}

// @Summary Kitchen aggregates
// @Description Audit-backed kitchen totals; mutated only by successful claims
// @Tags stats
// @Produce json
// @Success 200 {object} resdto.KitchenStatsResponse
// @Router /stats/kitchen [get]
func (h *StatsHandler) Kitchen(c *gin.Context) {
	view := h.statsQueries.Kitchen(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromKitchenStats(view))
}

// @Summary Student aggregates
// @Description The current student's points and CO2 tally
// @Tags stats
// @Produce json
// @Success 200 {object} resdto.StudentStatsResponse
// @Router /stats/student [get]
func (h *StatsHandler) Student(c *gin.Context) {
	view := h.statsQueries.Student(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromStudentStats(view))
}

// @Summary Order log
// @Description Append-only log of successful claims, oldest first
// @Tags stats
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *StatsHandler) Orders(c *gin.Context) {
	views := h.statsQueries.Orders(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromOrderViews(views))
}

// @Summary Notification flags
// @Description Transient push/claim flags the view layer polls for toasts
// @Tags stats
// @Produce json
// @Success 200 {object} resdto.FlagsResponse
// @Router /flags [get]
func (h *StatsHandler) Flags(c *gin.Context) {
	view := h.statsQueries.Flags(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromFlags(view))
}
