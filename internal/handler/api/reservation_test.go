//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"venuebook/internal/domain/availability"
	"venuebook/internal/domain/reservation"
	"venuebook/internal/handler/api"
	reqdto "venuebook/internal/handler/dto/request"
	resdto "venuebook/internal/handler/dto/response"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/commands"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/httptest"
	"venuebook/tests/common/testutil"
	commandsmock "venuebook/tests/mock/commands"
	queriesmock "venuebook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/reservations", s.handler.CreateReservation)
	s.router.GET("/reservations/:id", s.handler.GetReservation)
	s.router.PATCH("/reservations/:id/extend", s.handler.ExtendReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func withKey(key uuid.UUID) map[string]string {
	return map[string]string{"Idempotency-Key": key.String()}
}

// ================================================================================
// TestCreateReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"
	key := uuid.New()

	b := builder.NewReservationBuilder().WithStatus(reservation.StatusPending)
	reqBody := b.BuildCreateRequestDTO()
	view := b.BuildView()

	s.Run("success: 201 Created with Location", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody, key).
			Return(&commands.CreateReservationResult{Reservation: view}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, withKey(key))

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("pending", body.Status)
		s.Equal("20.00", body.Price)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/reservations/" + view.ID.String()})
	})

	s.Run("success: replay answers 200", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), key).
			Return(&commands.CreateReservationResult{Reservation: view, IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, withKey(key))

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: idempotency key", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency key required")

		rec = httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody,
			map[string]string{"Idempotency-Key": "not-a-uuid"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid idempotency key format")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing listingId", mutate: testutil.Field("listingId", nil)},
			{name: "missing checkIn", mutate: testutil.Field("checkIn", nil)},
			{name: "missing checkOut", mutate: testutil.Field("checkOut", nil)},
			{name: "checkOut before checkIn", mutate: testutil.Field("checkOut", "2030-01-07T09:00:00Z")},
			{name: "checkOut equal to checkIn", mutate: testutil.Field("checkOut", "2030-01-07T10:00:00Z")},
			{name: "malformed time", mutate: testutil.Field("checkIn", "monday morning")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, requestMap, withKey(key))
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 409 carries the availability result", func() {
		conflictStart := time.Date(2030, 1, 7, 9, 0, 0, 0, time.UTC)
		conflictEnd := time.Date(2030, 1, 7, 10, 0, 0, 0, time.UTC)
		conflictInterval, _ := reservation.NewInterval(conflictStart, conflictEnd)
		requested, _ := reservation.NewInterval(view.CheckIn, view.CheckOut)
		rejected := &commands.RejectedError{
			ListingID: view.ListingID,
			Interval:  requested,
			Decision: availability.Decision{
				Reason: "The listing is already booked from 09:00 to 10:00",
				Conflict: &availability.Conflict{
					Kind:            availability.ConflictReservation,
					Interval:        conflictInterval,
					NextAvailableAt: conflictEnd.Add(15 * time.Minute),
				},
			},
		}
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), key).Return(nil, rejected).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, withKey(key))

		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
			Detail resdto.AvailabilityResponse `json:"detail"`
		}
		s.Equal(http.StatusConflict, rec.Code)
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal(rejected.Decision.Reason, body.Error.Message)
		s.False(body.Detail.Available)
		s.Require().NotNil(body.Detail.Conflict)
		s.True(conflictStart.Equal(body.Detail.Conflict.Interval.CheckIn))
		s.True(conflictEnd.Add(15 * time.Minute).Equal(body.Detail.Conflict.NextAvailableAt))
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "listing not found", err: commands.ErrListingNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "listing not found"},
			{name: "key reused", err: commands.ErrIdempotencyKeyReused, expectedStatus: http.StatusConflict},
			{name: "storage conflict", err: commands.ErrReservationConflict, expectedStatus: http.StatusConflict},
			{name: "listing not bookable", err: commands.ErrListingNotBookable, expectedStatus: http.StatusConflict},
			{name: "unknown add-on", err: errs.Invalid("addOns", "unknown add-on: piano"), expectedStatus: http.StatusBadRequest, expectedMsg: "Invalid request"},
			{name: "internal error", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), gomock.Any(), key).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, withKey(key))
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestExtendReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestExtendReservation() {
	b := builder.NewReservationBuilder()
	view := b.BuildView()
	url := "/reservations/" + view.ID.String() + "/extend"
	newCheckOut := view.CheckOut.Add(time.Hour)
	req := reqdto.ExtendReservationRequest{CheckOut: newCheckOut}

	s.Run("success: 200 with the updated window", func() {
		extended := *view
		extended.CheckOut = newCheckOut
		extended.PriceCents = 3000
		s.mockCommands.EXPECT().ExtendReservation(gomock.Any(), view.ID, req).Return(&extended, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, req)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(newCheckOut.Equal(body.CheckOut))
		s.Equal(int64(3000), body.PriceCents)
	})

	s.Run("error: invalid id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/reservations/nope/extend", req)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: missing checkOut", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
		}{
			{name: "not found", err: commands.ErrReservationNotFound, expectedStatus: http.StatusNotFound},
			{name: "inactive", err: commands.ErrReservationInactive, expectedStatus: http.StatusConflict},
			{name: "not later", err: errs.Invalid("checkOut", "new checkOut must be later than the current one"), expectedStatus: http.StatusBadRequest},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().ExtendReservation(gomock.Any(), view.ID, gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, req)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestGetReservation
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	view := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.AddOns = map[string]int64{"projector": 1500}
		b.Note = "corporate offsite"
	}).BuildView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil)

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]resdto.AddOnResponse{{Name: "projector", PriceCents: 1500}}, body.AddOns)
		s.Require().NotNil(body.Note)
		s.Equal("corporate offsite", *body.Note)
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, commands.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
