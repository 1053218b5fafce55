package api

import (
	"errors"
	"net/http"

	"boilerbites/internal/handler/httperr"
	reqdto "boilerbites/internal/handler/dto/request"
	resdto "boilerbites/internal/handler/dto/response"
	"boilerbites/internal/usecase/commands"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
)

type ClaimHandler struct {
	claimCommands commands.ClaimCommands
}

func NewClaimHandler(claimCommands commands.ClaimCommands) *ClaimHandler {
	return &ClaimHandler{
		claimCommands: claimCommands,
	}
}

// @Summary Claim listing
// @Description Exclusive one-time claim; at most one caller succeeds per listing. Email delivery failure is advisory only.
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body reqdto.ClaimRequest true "Student identity"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /listings/{id}/claim [post]
func (h *ClaimHandler) Claim(c *gin.Context) {
	id, err := snowflake.ParseString(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing ID format", nil)
		return
	}

	var req reqdto.ClaimRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	result, err := h.claimCommands.Claim(c.Request.Context(), id, req.StudentName, req.StudentEmail)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrItemUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Item not available", gin.H{"success": false})
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Domain validation failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimResult(result))
}
