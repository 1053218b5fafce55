package api

import (
	"errors"
	"net/http"

	"boilerbites/internal/domain/listing"
	"boilerbites/internal/handler/httperr"
	reqdto "boilerbites/internal/handler/dto/request"
	resdto "boilerbites/internal/handler/dto/response"
	"boilerbites/internal/usecase/commands"
	"boilerbites/internal/usecase/queries"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type ListingHandler struct {
	listingCommands commands.ListingCommands
	listingQueries  queries.ListingQueries
}

func NewListingHandler(listingCommands commands.ListingCommands, listingQueries queries.ListingQueries) *ListingHandler {
	return &ListingHandler{
		listingCommands: listingCommands,
		listingQueries:  listingQueries,
	}
}

// @Summary Post abandonment listing
// @Description Post a made-to-order item that was never picked up; each unit becomes a separately claimable listing
// @Tags listings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAbandonmentRequest true "Abandonment listing request"
// @Success 201 {array} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /listings/abandonment [post]
func (h *ListingHandler) CreateAbandonment(c *gin.Context) {
	var req reqdto.CreateAbandonmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	items, err := h.listingCommands.CreateAbandonment(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromListings(items))
}

// @Summary Post batch surplus listing
// @Description Post end-of-period leftovers as a single listing with a displayed quantity
// @Tags listings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSurplusRequest true "Batch surplus request"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /listings/surplus [post]
func (h *ListingHandler) CreateSurplus(c *gin.Context) {
	var req reqdto.CreateSurplusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	item, err := h.listingCommands.CreateBatchSurplus(c.Request.Context(), req.ToParams())
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromListing(*item))
}

// @Summary Student feed
// @Description Available listings; soonest-expiring first unless a venue filter is applied
// @Tags listings
// @Produce json
// @Param venue query string false "Venue ID"
// @Param filter query string false "Feed filter" Enums(all, under-4, vegetarian, gluten-free)
// @Success 200 {array} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Router /listings [get]
func (h *ListingHandler) Feed(c *gin.Context) {
	filter, err := queries.ParseFilter(c.Query("filter"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown feed filter", nil)
		return
	}

	views, err := h.listingQueries.Feed(c.Request.Context(), c.Query("venue"), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Hot deals
// @Description Boosted subset of the available feed
// @Tags listings
// @Produce json
// @Success 200 {array} resdto.ListingResponse
// @Router /listings/hot [get]
func (h *ListingHandler) HotDeals(c *gin.Context) {
	views, err := h.listingQueries.HotDeals(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Get listing
// @Description Get a listing by ID regardless of status
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := h.listingQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrListingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromListingView(*view))
}

// @Summary Toggle boost
// @Description Flip hot-deal placement for a listing; unknown IDs are a silent no-op
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /listings/{id}/boost [post]
func (h *ListingHandler) ToggleBoost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	h.listingCommands.ToggleBoost(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// @Summary Update listing
// @Description Merge partial fields into a listing; unknown IDs are a silent no-op
// @Tags listings
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpdateListingRequest true "Partial update"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /listings/{id} [patch]
func (h *ListingHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateListingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	var upd listing.Update
	if copyErr := copier.Copy(&upd, &req); copyErr != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, copyErr, "Internal server error", nil)
		return
	}

	h.listingCommands.Update(c.Request.Context(), id, upd)
	c.Status(http.StatusNoContent)
}

// @Summary Remove listing
// @Description Pull a listing from the registry regardless of status
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /listings/{id} [delete]
func (h *ListingHandler) Remove(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	h.listingCommands.Remove(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func (h *ListingHandler) parseID(c *gin.Context) (snowflake.ID, bool) {
	id, err := snowflake.ParseString(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing ID format", nil)
		return 0, false
	}
	return id, true
}

func (h *ListingHandler) respondCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
