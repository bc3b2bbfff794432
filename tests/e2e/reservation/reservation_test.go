//go:build e2e

package reservation_test

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/internal/handler/dto/request"
	"venuebook/internal/handler/dto/response"
	"venuebook/tests/common/builder"
	"venuebook/tests/common/dbtest"
	"venuebook/tests/common/httptest"
	"venuebook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	reservationURL  = "/api/reservations/"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

// monday 2030-01-07 at h:m UTC
func monday(h, m int) time.Time {
	return time.Date(2030, 1, 7, h, m, 0, 0, time.UTC)
}

func withKey(key uuid.UUID) map[string]string {
	return map[string]string{"Idempotency-Key": key.String()}
}

// an hourly listing at 10.00/hour, open 09:00-17:00 on weekdays, 30 minute buffer
func (s *ReservationSuite) seedListing() uuid.UUID {
	b := builder.NewListingBuilder().
		WithBuffer(30, listing.BufferMinutes).
		WithAddOn("projector", 1500)
	return dbtest.CreateTestListing(s.T(), s.DB, b)
}

func (s *ReservationSuite) create(listingID uuid.UUID, checkIn, checkOut time.Time, key uuid.UUID, addOns ...string) (int, *response.ReservationResponse) {
	t := s.T()
	reqBody := request.CreateReservationRequest{
		ListingID: listingID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		AddOns:    addOns,
	}
	w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, reqBody, withKey(key))
	if w.Code != http.StatusCreated && w.Code != http.StatusOK {
		return w.Code, nil
	}
	var res response.ReservationResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	return w.Code, &res
}

// =============================================================================
// TestCreateReservation
// =============================================================================

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("Normal case: books the stay and prices it from the schedule", func() {
		t := s.T()
		listingID := s.seedListing()

		code, created := s.create(listingID, monday(10, 0), monday(12, 0), uuid.New(), "projector")
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationURL+created.ID.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &actual))

		expected := &response.ReservationResponse{
			ListingID:    listingID,
			ListingTitle: "Harbor Loft",
			Timezone:     "UTC",
			CheckIn:      monday(10, 0),
			CheckOut:     monday(12, 0),
			Status:       "pending",
			PriceCents:   3500,
			Price:        "35.00",
			AddOns:       []response.AddOnResponse{{Name: "projector", PriceCents: 1500}},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "CreatedAt", "UpdatedAt"),
			cmpopts.EquateApproxTime(time.Second),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}

		outbox := dbtest.CountRows(t, s.DB,
			"SELECT count(*) FROM outbox_events WHERE aggregate_id = $1 AND published_at IS NULL", created.ID)
		require.Equal(t, 1, outbox, "an accepted reservation enqueues one event")
	})

	s.Run("Normal case: the same key replays the first result", func() {
		t := s.T()
		listingID := s.seedListing()
		key := uuid.New()

		code1, first := s.create(listingID, monday(10, 0), monday(12, 0), key)
		require.Equal(t, http.StatusCreated, code1)

		code2, second := s.create(listingID, monday(10, 0), monday(12, 0), key)
		require.Equal(t, http.StatusOK, code2)
		require.Equal(t, first.ID, second.ID)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "SELECT count(*) FROM reservations WHERE listing_id = $1", listingID))
	})

	s.Run("Error case: the same key with another body is a conflict", func() {
		t := s.T()
		listingID := s.seedListing()
		key := uuid.New()

		code1, _ := s.create(listingID, monday(10, 0), monday(12, 0), key)
		require.Equal(t, http.StatusCreated, code1)

		code2, _ := s.create(listingID, monday(14, 0), monday(15, 0), key)
		require.Equal(t, http.StatusConflict, code2)
	})

	s.Run("Error case: the buffer after an existing booking is respected", func() {
		t := s.T()
		listingID := s.seedListing()

		code, _ := s.create(listingID, monday(10, 0), monday(12, 0), uuid.New())
		require.Equal(t, http.StatusCreated, code)

		reqBody := request.CreateReservationRequest{ListingID: listingID, CheckIn: monday(12, 0), CheckOut: monday(13, 0)}
		w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, reqBody, withKey(uuid.New()))
		require.Equal(t, http.StatusConflict, w.Code)

		var body struct {
			Detail response.AvailabilityResponse `json:"detail"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
		require.False(t, body.Detail.Available)
		require.NotNil(t, body.Detail.Conflict)
		require.Equal(t, "reservation", body.Detail.Conflict.Kind)
		require.True(t, monday(12, 30).Equal(body.Detail.Conflict.NextAvailableAt))

		code, _ = s.create(listingID, monday(12, 30), monday(13, 30), uuid.New())
		require.Equal(t, http.StatusCreated, code, "the stay right after the buffer is free")
	})

	s.Run("Error case: a calendar block rejects the stay", func() {
		t := s.T()
		listingID := s.seedListing()
		dbtest.CreateTestBlock(t, s.DB, &listingID, nil, monday(11, 0), monday(15, 0), "maintenance")

		code, _ := s.create(listingID, monday(10, 0), monday(12, 0), uuid.New())
		require.Equal(t, http.StatusConflict, code)
	})

	s.Run("Error case: unknown listing and add-on", func() {
		t := s.T()
		listingID := s.seedListing()

		code, _ := s.create(uuid.New(), monday(10, 0), monday(12, 0), uuid.New())
		require.Equal(t, http.StatusNotFound, code)

		code, _ = s.create(listingID, monday(10, 0), monday(12, 0), uuid.New(), "piano")
		require.Equal(t, http.StatusBadRequest, code)
	})
}

// =============================================================================
// TestConcurrentBooking
// =============================================================================

func (s *ReservationSuite) TestConcurrentBooking() {
	s.Run("Only one of many parallel requests for one slot is booked", func() {
		t := s.T()
		listingID := s.seedListing()

		const attempts = 10
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				reqBody := request.CreateReservationRequest{ListingID: listingID, CheckIn: monday(10, 0), CheckOut: monday(12, 0)}
				w := httptest.PerformRequestWithHeaders(t, s.Router, http.MethodPost, reservationsURL, reqBody, withKey(uuid.New()))
				codes[i] = w.Code
			}(i)
		}
		close(start)
		wg.Wait()

		created, conflicts := 0, 0
		for _, c := range codes {
			switch c {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicts++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, attempts-1, conflicts, "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB,
			"SELECT count(*) FROM reservations WHERE listing_id = $1 AND status IN ('pending', 'confirmed')", listingID))
	})
}

// =============================================================================
// TestExtendReservation
// =============================================================================

func (s *ReservationSuite) TestExtendReservation() {
	s.Run("Normal case: later check-out is re-priced", func() {
		t := s.T()
		listingID := s.seedListing()
		_, created := s.create(listingID, monday(10, 0), monday(12, 0), uuid.New(), "projector")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationURL+created.ID.String()+"/extend",
			request.ExtendReservationRequest{CheckOut: monday(13, 0)})
		require.Equal(t, http.StatusOK, w.Code)

		var res response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.True(t, monday(13, 0).Equal(res.CheckOut))
		require.Equal(t, int64(4500), res.PriceCents)
	})

	s.Run("Error case: extending into the next booking is rejected", func() {
		t := s.T()
		listingID := s.seedListing()
		_, first := s.create(listingID, monday(10, 0), monday(12, 0), uuid.New())
		code, _ := s.create(listingID, monday(13, 0), monday(14, 0), uuid.New())
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationURL+first.ID.String()+"/extend",
			request.ExtendReservationRequest{CheckOut: monday(13, 0)})
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("Error case: earlier check-out and unknown reservation", func() {
		t := s.T()
		listingID := s.seedListing()
		_, created := s.create(listingID, monday(10, 0), monday(12, 0), uuid.New())

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationURL+created.ID.String()+"/extend",
			request.ExtendReservationRequest{CheckOut: monday(11, 0)})
		require.Equal(t, http.StatusBadRequest, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, reservationURL+uuid.NewString()+"/extend",
			request.ExtendReservationRequest{CheckOut: monday(13, 0)})
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
