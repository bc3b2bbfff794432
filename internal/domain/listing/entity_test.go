//go:build unit

package listing_test

import (
	"testing"
	"time"

	"venuebook/internal/domain/listing"
	"venuebook/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ListingBuilder)
	errIs  error
}

func TestScheduleConfig(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		cfg, err := builder.NewListingBuilder().BuildConfig()
		require.NoError(t, err)

		assert.Equal(t, listing.PricingHourly, cfg.PricingModel())
		assert.Len(t, cfg.Schedule(), 5)
		assert.Equal(t, time.UTC, cfg.Location())
		assert.Zero(t, cfg.Buffer())
		assert.Zero(t, cfg.MinimumDurationMinutes())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "unknown pricing model",
				mutate: func(b *builder.ListingBuilder) { b.PricingModel = "weekly" },
				errIs:  listing.ErrUnknownPricingModel,
			},
			{
				name:   "negative buffer",
				mutate: func(b *builder.ListingBuilder) { b.WithBuffer(-1, listing.BufferMinutes) },
				errIs:  listing.ErrNegativeBuffer,
			},
			{
				name:   "negative minimum duration",
				mutate: func(b *builder.ListingBuilder) { b.WithMinimumDuration(-1, listing.DurationHours) },
				errIs:  listing.ErrNegativeMinimum,
			},
			{
				name:   "unknown buffer unit",
				mutate: func(b *builder.ListingBuilder) { b.WithBuffer(10, "seconds") },
				errIs:  listing.ErrUnknownBufferUnit,
			},
			{
				name:   "unknown timezone",
				mutate: func(b *builder.ListingBuilder) { b.WithTimezone("Mars/Olympus") },
				errIs:  listing.ErrInvalidTimezone,
			},
			{
				name: "duplicate weekday",
				mutate: func(b *builder.ListingBuilder) {
					b.WithSchedule(
						builder.ScheduleRow{Weekday: time.Monday, Start: "09:00", End: "12:00", RateCents: 100},
						builder.ScheduleRow{Weekday: time.Monday, Start: "13:00", End: "17:00", RateCents: 100},
					)
				},
				errIs: listing.ErrDuplicateWeekday,
			},
			{
				name: "empty window",
				mutate: func(b *builder.ListingBuilder) {
					b.WithSchedule(builder.ScheduleRow{Weekday: time.Monday, Start: "09:00", End: "09:00", RateCents: 100})
				},
				errIs: listing.ErrEmptyWindow,
			},
			{
				name: "malformed clock time",
				mutate: func(b *builder.ListingBuilder) {
					b.WithSchedule(builder.ScheduleRow{Weekday: time.Monday, Start: "9am", End: "17:00", RateCents: 100})
				},
				errIs: listing.ErrInvalidClockTime,
			},
			{
				name: "negative rate",
				mutate: func(b *builder.ListingBuilder) {
					b.WithSchedule(builder.ScheduleRow{Weekday: time.Monday, Start: "09:00", End: "17:00", RateCents: -1})
				},
				errIs: listing.ErrNegativeRate,
			},
			{
				name: "overnight window is allowed",
				mutate: func(b *builder.ListingBuilder) {
					b.WithSchedule(builder.ScheduleRow{Weekday: time.Friday, Start: "22:00", End: "02:00", RateCents: 100})
				},
			},
			{
				name:   "no schedule is allowed",
				mutate: func(b *builder.ListingBuilder) { b.WithSchedule() },
			},
		})
	})

	t.Run("units", func(t *testing.T) {
		cfg, err := builder.NewListingBuilder().
			WithBuffer(2, listing.BufferHours).
			WithMinimumDuration(1, listing.DurationDays).
			BuildConfig()
		require.NoError(t, err)

		assert.Equal(t, 2*time.Hour, cfg.Buffer())
		assert.Equal(t, 1440, cfg.MinimumDurationMinutes())
	})

	t.Run("schedule is sorted and copied", func(t *testing.T) {
		cfg, err := builder.NewListingBuilder().WithSchedule(
			builder.ScheduleRow{Weekday: time.Saturday, Start: "10:00", End: "14:00", RateCents: 100},
			builder.ScheduleRow{Weekday: time.Sunday, Start: "10:00", End: "14:00", RateCents: 100},
		).BuildConfig()
		require.NoError(t, err)

		s := cfg.Schedule()
		require.Len(t, s, 2)
		assert.Equal(t, time.Sunday, s[0].Weekday())
		assert.Equal(t, time.Saturday, s[1].Weekday())

		s[0] = listing.ScheduleEntry{}
		assert.Equal(t, time.Sunday, cfg.Schedule()[0].Weekday())

		_, ok := cfg.EntryFor(time.Monday)
		assert.False(t, ok)
	})
}

func TestScheduleEntry(t *testing.T) {
	clk := func(s string) listing.ClockTime {
		c, err := listing.ParseClockTime(s)
		require.NoError(t, err)
		return c
	}

	day, err := listing.NewScheduleEntry(time.Monday, clk("09:00"), clk("17:00"), 1000)
	require.NoError(t, err)
	night, err := listing.NewScheduleEntry(time.Friday, clk("22:00"), clk("02:00"), 1000)
	require.NoError(t, err)

	t.Run("window on a date", func(t *testing.T) {
		d := time.Date(2030, 1, 11, 0, 0, 0, 0, time.UTC)
		start, end := night.WindowOn(d)
		assert.Equal(t, time.Date(2030, 1, 11, 22, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2030, 1, 12, 2, 0, 0, 0, time.UTC), end)
		assert.True(t, night.Overnight())
		assert.False(t, day.Overnight())
	})

	t.Run("contains time range", func(t *testing.T) {
		cases := []struct {
			name     string
			entry    listing.ScheduleEntry
			from, to string
			want     bool
		}{
			{"inside", day, "10:00", "12:00", true},
			{"whole window", day, "09:00", "17:00", true},
			{"starts early", day, "08:00", "10:00", false},
			{"ends late", day, "16:00", "18:00", false},
			{"overnight before midnight", night, "22:30", "23:30", true},
			{"overnight across midnight", night, "23:00", "01:00", true},
			{"overnight tail", night, "00:30", "01:30", true},
			{"overnight too late", night, "01:00", "03:00", false},
			{"overnight afternoon", night, "15:00", "16:00", false},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				assert.Equal(t, c.want, c.entry.ContainsTimeRange(clk(c.from), clk(c.to)))
			})
		}
	})
}

func TestParsers(t *testing.T) {
	_, err := listing.ParseClockTime("24:00")
	assert.ErrorIs(t, err, listing.ErrInvalidClockTime)

	m, err := listing.ParsePricingModel("Daily")
	require.NoError(t, err)
	assert.Equal(t, listing.PricingDaily, m)
}

func TestNewScheduleConfig_NormalizesStoredValues(t *testing.T) {
	cfg, err := listing.NewScheduleConfig(listing.ScheduleConfigParams{
		PricingModel: " Daily ",
		BufferUnit:   "HOURS",
		BufferTime:   1,
		DurationUnit: "",
	})
	require.NoError(t, err)
	assert.Equal(t, listing.PricingDaily, cfg.PricingModel())
	assert.Equal(t, time.Hour, cfg.Buffer())

	_, err = listing.NewScheduleConfig(listing.ScheduleConfigParams{PricingModel: "weekly"})
	assert.ErrorIs(t, err, listing.ErrUnknownPricingModel)

	_, err = listing.NewScheduleConfig(listing.ScheduleConfigParams{PricingModel: "hourly", DurationUnit: "weeks"})
	assert.ErrorIs(t, err, listing.ErrUnknownDurationUnit)
}

func TestListing(t *testing.T) {
	t.Run("select add-ons", func(t *testing.T) {
		l := builder.NewListingBuilder().WithAddOn("Projector", 1500).MustBuildDomain()

		got, err := l.SelectAddOns([]string{"projector"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "15.00", got[0].Price().String())

		_, err = l.SelectAddOns([]string{"sauna"})
		assert.ErrorIs(t, err, listing.ErrUnknownAddOn)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewListingBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
