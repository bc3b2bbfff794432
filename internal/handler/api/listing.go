package api

import (
	"errors"
	"net/http"

	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/handler/httperr"
	"venuebook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	q queries.ListingQueries
}

func NewListingHandler(q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{q: q}
}

// @Summary Search listings
// @Description Compose attribute, location, schedule and price filters. With checkIn/checkOut the price filter applies to the stay price and booked listings are excluded.
// @Tags listings
// @Produce json
// @Param keyword query string false "Keyword matched against title, description and keywords"
// @Param attributeIds query []string false "Required attribute IDs" collectionFormat(multi)
// @Param filterIds query []string false "Attribute IDs with a minimum value" collectionFormat(multi)
// @Param filterValues query []number false "Minimum values, positionally paired with filterIds" collectionFormat(multi)
// @Param serviceTypeIds query []string false "Service type IDs" collectionFormat(multi)
// @Param status query []string false "Listing status" collectionFormat(multi)
// @Param eventTypeId query string false "Event type ID"
// @Param city query string false "City"
// @Param state query string false "State"
// @Param country query string false "Country"
// @Param guests query int false "Minimum capacity"
// @Param checkInTime query string false "Daily window start (HH:MM)"
// @Param checkOutTime query string false "Daily window end (HH:MM)"
// @Param minPrice query int false "Minimum price in cents"
// @Param maxPrice query int false "Maximum price in cents"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Param checkIn query string false "Stay start (RFC3339)"
// @Param checkOut query string false "Stay end (RFC3339)"
// @Param addOns query string false "Comma separated add-on names priced into the stay"
// @Param page query int false "Page (1-based)"
// @Param pageSize query int false "Page size"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/listings/search [get]
func (h *ListingHandler) Search(c *gin.Context) {
	var req reqdto.SearchListingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithCategory(c, err)
		return
	}
	result, err := h.q.Search(c.Request.Context(), params, req.Page, req.PageSize)
	if err != nil {
		httperr.AbortWithCategory(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSearchResult(result))
}

// @Summary Check availability
// @Description Buffered availability check for a stay. A rejection is a normal 200 payload with available=false.
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Param checkIn query string true "Stay start (RFC3339)"
// @Param checkOut query string true "Stay end (RFC3339)"
// @Param excludeReservationId query string false "Reservation to ignore, for extensions"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/listings/{id}/availability [get]
func (h *ListingHandler) Availability(c *gin.Context) {
	listingID, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.CheckAvailability(c.Request.Context(), listingID, q.CheckIn, q.CheckOut, q.ExcludeID())
	if err != nil {
		httperr.AbortWithCategory(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Price quote
// @Description Price a stay from the listing's weekday schedule plus add-ons
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Param checkIn query string true "Stay start (RFC3339)"
// @Param checkOut query string true "Stay end (RFC3339)"
// @Param addOns query string false "Comma separated add-on names"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/listings/{id}/quote [get]
func (h *ListingHandler) Quote(c *gin.Context) {
	listingID, ok := pathID(c)
	if !ok {
		return
	}
	var q reqdto.QuoteQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	view, err := h.q.Quote(c.Request.Context(), listingID, q.CheckIn, q.CheckOut, reqdto.SplitList(q.AddOns))
	if err != nil {
		httperr.AbortWithCategory(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteView(view))
}

var errInvalidID = errors.New("invalid id")

func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.Join(errInvalidID, err), "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
