package response

import (
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AddOnResponse struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
}

type ReservationResponse struct {
	ID           uuid.UUID       `json:"id"`
	ListingID    uuid.UUID       `json:"listingId"`
	ListingTitle string          `json:"listingTitle"`
	Timezone     string          `json:"timezone"`
	CheckIn      time.Time       `json:"checkIn"`
	CheckOut     time.Time       `json:"checkOut"`
	Status       string          `json:"status"`
	PriceCents   int64           `json:"priceCents"`
	Price        string          `json:"price"`
	AddOns       []AddOnResponse `json:"addOns"`
	Note         *string         `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	res := &ReservationResponse{}
	_ = copier.Copy(res, v)
	if res.AddOns == nil {
		res.AddOns = []AddOnResponse{}
	}
	res.Price = listing.NewMoney(v.PriceCents).String()
	return res
}
