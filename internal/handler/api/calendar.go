package api

import (
	"net/http"

	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/handler/httperr"
	"venuebook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	cmds commands.CalendarCommands
}

func NewCalendarHandler(cmds commands.CalendarCommands) *CalendarHandler {
	return &CalendarHandler{cmds: cmds}
}

// @Summary Sync listing calendars
// @Description Re-import every external ICS feed attached to the listing and replace its calendar blocks. Per-feed failures are reported in the body.
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.CalendarSyncResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/listings/{id}/calendar/sync [post]
func (h *CalendarHandler) SyncListing(c *gin.Context) {
	listingID, ok := pathID(c)
	if !ok {
		return
	}
	results, err := h.cmds.SyncListing(c.Request.Context(), listingID)
	if err != nil {
		httperr.AbortWithCategory(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSyncResults(results))
}
