package api

import (
	"net/http"

	"boilerbites/internal/handler/httperr"
	reqdto "boilerbites/internal/handler/dto/request"
	"boilerbites/internal/usecase/commands"
	"boilerbites/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	listingCommands commands.ListingCommands
	venueQueries    queries.VenueQueries
}

func NewVenueHandler(listingCommands commands.ListingCommands, venueQueries queries.VenueQueries) *VenueHandler {
	return &VenueHandler{
		listingCommands: listingCommands,
		venueQueries:    venueQueries,
	}
}

// @Summary List venues
// @Description The fixed campus venue roster
// @Tags venues
// @Produce json
// @Success 200 {array} venue.Venue
// @Router /venues [get]
func (h *VenueHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.venueQueries.List(c.Request.Context()))
}

// @Summary Venue menu
// @Description The venue's menu in display order; unknown venues get an empty menu
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {array} venue.MenuItem
// @Router /venues/{id}/menu [get]
func (h *VenueHandler) Menu(c *gin.Context) {
	c.JSON(http.StatusOK, h.venueQueries.Menu(c.Request.Context(), c.Param("id")))
}

// @Summary Venue display stats
// @Description Decorative randomized-within-band dashboard figures, not derived from the order log
// @Tags venues
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} venue.DisplayStats
// @Router /venues/{id}/stats [get]
func (h *VenueHandler) DisplayStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.venueQueries.DisplayStats(c.Request.Context(), c.Param("id")))
}

// @Summary Select venue
// @Description Set the kitchen dashboard's venue context used as the listing-creation fallback
// @Tags venues
// @Accept json
// @Produce json
// @Param request body reqdto.SelectVenueRequest true "Venue selection"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /venues/selected [put]
func (h *VenueHandler) Select(c *gin.Context) {
	var req reqdto.SelectVenueRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	h.listingCommands.SelectVenue(c.Request.Context(), req.VenueID)
	c.Status(http.StatusNoContent)
}

// @Summary Selected venue
// @Description The kitchen dashboard's current venue context with its resolved name
// @Tags venues
// @Produce json
// @Success 200 {object} map[string]string
// @Router /venues/selected [get]
func (h *VenueHandler) Selected(c *gin.Context) {
	venueID := h.venueQueries.Selected(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"venueId":   venueID,
		"venueName": h.venueQueries.ResolveName(c.Request.Context(), venueID),
	})
}
