package request

import (
	"strings"
	"time"

	"venuebook/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ListingID uuid.UUID `json:"listingId" binding:"required"`
	CheckIn   time.Time `json:"checkIn" binding:"required"`
	CheckOut  time.Time `json:"checkOut" binding:"required,gtfield=CheckIn"`
	AddOns    []string  `json:"addOns,omitempty" binding:"omitempty,max=20,dive,required,max=100"`
	Note      *string   `json:"note,omitempty" binding:"omitempty,max=1000"`
}

func (r CreateReservationRequest) Interval() (reservation.Interval, error) {
	return reservation.NewInterval(r.CheckIn, r.CheckOut)
}

func (r CreateReservationRequest) GetNote() reservation.Note {
	if r.Note == nil {
		return reservation.NewNote("")
	}
	return reservation.NewNote(strings.TrimSpace(*r.Note))
}

type ExtendReservationRequest struct {
	CheckOut time.Time `json:"checkOut" binding:"required"`
}
