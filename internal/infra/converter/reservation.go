package converter

import (
	"encoding/json"

	"venuebook/internal/domain/listing"
	"venuebook/internal/domain/reservation"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// AddOnRecord is the JSON shape of a booked add-on in reservations.add_ons.
type AddOnRecord struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

func ReservationToInfra(res *reservation.Reservation) (pgq.CreateReservationParams, error) {
	addOns, err := MarshalAddOns(res.AddOns())
	if err != nil {
		return pgq.CreateReservationParams{}, err
	}

	params := pgq.CreateReservationParams{
		ID:         res.ID(),
		ListingID:  res.ListingID(),
		CheckIn:    res.CheckIn(),
		CheckOut:   res.CheckOut(),
		Status:     res.Status().String(),
		PriceCents: res.Price().Cents(),
		AddOns:     addOns,
		CreatedAt:  res.CreatedAt(),
		UpdatedAt:  res.UpdatedAt(),
	}

	noteStr := res.Note().String()
	if noteStr != "" {
		params.Note = pgtype.Text{String: noteStr, Valid: true}
	} else {
		params.Note = pgtype.Text{Valid: false}
	}

	return params, nil
}

func ReservationToDomain(row pgq.Reservation) (*reservation.Reservation, error) {
	interval, err := reservation.NewInterval(row.CheckIn, row.CheckOut)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s", row.ID)
	}
	addOns, err := UnmarshalAddOns(row.AddOns)
	if err != nil {
		return nil, errs.Wrapf(err, "reservation %s add-ons", row.ID)
	}
	return reservation.ReconstructReservation(
		row.ID,
		row.ListingID,
		interval,
		reservation.Status(row.Status),
		listing.NewMoney(row.PriceCents),
		addOns,
		reservation.NewNote(pgconv.StringFromPgtype(row.Note)),
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}

func MarshalAddOns(addOns []listing.AddOn) ([]byte, error) {
	records := make([]AddOnRecord, len(addOns))
	for i, a := range addOns {
		records[i] = AddOnRecord{Name: a.Name(), PriceCents: a.Price().Cents()}
	}
	return json.Marshal(records)
}

func UnmarshalAddOns(raw []byte) ([]listing.AddOn, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var records []AddOnRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, err
	}
	out := make([]listing.AddOn, 0, len(records))
	for _, r := range records {
		a, err := listing.NewAddOn(r.Name, r.PriceCents)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
