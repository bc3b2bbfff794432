package converter

import (
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/pkg/pgconv"
)

// ListingToDomain assembles a listing from its row and child rows. Child rows belonging
// to other listings are ignored, so callers may pass a bulk result unfiltered.
func ListingToDomain(row pgq.Listing, entries []pgq.ScheduleEntry, addOns []pgq.AddOn) (*listing.Listing, error) {
	schedule := make([]listing.ScheduleEntry, 0, 7)
	for _, e := range entries {
		if e.ListingID != row.ID {
			continue
		}
		entry, err := ScheduleEntryToDomain(e)
		if err != nil {
			return nil, errs.Wrapf(err, "listing %s schedule", row.ID)
		}
		schedule = append(schedule, entry)
	}

	cfg, err := listing.NewScheduleConfig(listing.ScheduleConfigParams{
		PricingModel:    listing.PricingModel(row.PricingModel),
		Schedule:        schedule,
		BufferTime:      int(row.BufferTime),
		BufferUnit:      listing.BufferUnit(row.BufferUnit),
		MinimumDuration: int(row.MinimumDuration),
		DurationUnit:    listing.DurationUnit(row.DurationUnit),
		Timezone:        row.Timezone,
	})
	if err != nil {
		return nil, errs.Wrapf(err, "listing %s config", row.ID)
	}

	catalog := make([]listing.AddOn, 0)
	for _, a := range addOns {
		if a.ListingID != row.ID {
			continue
		}
		addOn, err := listing.NewAddOn(a.Name, a.PriceCents)
		if err != nil {
			return nil, errs.Wrapf(err, "listing %s add-on", row.ID)
		}
		catalog = append(catalog, addOn)
	}

	return listing.ReconstructListing(
		row.ID,
		row.VendorID,
		row.Title,
		listing.Status(row.Status),
		cfg,
		catalog,
		listing.NewMoney(row.BasePriceCents),
		row.IsPublished,
		row.IsVerified,
		pgconv.TimePtrFromPgtype(row.DeletedAt),
		row.CreatedAt,
		row.UpdatedAt,
	), nil
}

func ScheduleEntryToDomain(e pgq.ScheduleEntry) (listing.ScheduleEntry, error) {
	start, err := listing.ClockTimeFromMinutes(int(e.StartMinute))
	if err != nil {
		return listing.ScheduleEntry{}, err
	}
	end, err := listing.ClockTimeFromMinutes(int(e.EndMinute))
	if err != nil {
		return listing.ScheduleEntry{}, err
	}
	return listing.NewScheduleEntry(time.Weekday(e.Weekday), start, end, e.RateCents)
}
