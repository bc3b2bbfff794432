package readstore

import (
	"fmt"
	"strconv"
	"strings"

	"venuebook/internal/domain/search"
	"venuebook/internal/infra/pgq"
	"venuebook/internal/pkg/errs"

	"github.com/google/uuid"
)

// Listing rows that may ever be returned by a search.
const publishableSQL = `l.is_published AND l.is_verified AND l.deleted_at IS NULL`

var fieldColumns = map[search.Field]string{
	search.FieldKeywords:     "l.keywords",
	search.FieldTitle:        "l.title",
	search.FieldDescription:  "l.description",
	search.FieldAddressLine:  "l.address_line",
	search.FieldCity:         "l.city",
	search.FieldState:        "l.state",
	search.FieldCountry:      "l.country",
	search.FieldVendorName:   "(v.first_name || ' ' || v.last_name)",
	search.FieldAttributeIDs: "l.attribute_ids",
	search.FieldServiceType:  "l.service_type_id",
	search.FieldEventType:    "l.event_type_id",
	search.FieldStatus:       "l.status",
	search.FieldCapacity:     "l.capacity",
	search.FieldBasePrice:    "l.base_price_cents",
}

var uuidFields = map[search.Field]bool{
	search.FieldAttributeIDs: true,
	search.FieldServiceType:  true,
	search.FieldEventType:    true,
}

var errUnsupportedClause = errs.New("unsupported search clause")

type predicateBuilder struct {
	conds []string
	args  []any
}

func (b *predicateBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

// CompileFilter turns clauses into a WHERE fragment over listings l joined with vendors v.
// The publishable constraints are always included.
func CompileFilter(clauses []search.Clause) (pgq.Predicate, error) {
	b := &predicateBuilder{conds: []string{publishableSQL}}

	for _, c := range clauses {
		var (
			cond string
			err  error
		)
		switch c := c.(type) {
		case search.KeywordClause:
			cond, err = b.keyword(c)
		case search.MembershipClause:
			cond, err = b.membership(c)
		case search.ThresholdAnyClause:
			cond = b.thresholdAny(c)
		case search.EqualityClause:
			cond, err = b.equality(c)
		case search.RangeClause:
			cond, err = b.rangeCond(c)
		case search.GeoClause:
			cond = b.geo(c)
		case search.ScheduleWindowClause:
			cond = b.scheduleWindow(c)
		default:
			err = errs.Wrapf(errUnsupportedClause, "%T", c)
		}
		if err != nil {
			return pgq.Predicate{}, err
		}
		if cond != "" {
			b.conds = append(b.conds, cond)
		}
	}

	return pgq.Predicate{SQL: strings.Join(b.conds, " AND "), Args: b.args}, nil
}

func column(f search.Field) (string, error) {
	col, ok := fieldColumns[f]
	if !ok {
		return "", errs.Wrapf(errUnsupportedClause, "field %q", f)
	}
	return col, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (b *predicateBuilder) keyword(c search.KeywordClause) (string, error) {
	if len(c.Fields) == 0 {
		return "", nil
	}
	p := b.arg("%" + escapeLike(c.Term) + "%")
	ors := make([]string, 0, len(c.Fields))
	for _, f := range c.Fields {
		col, err := column(f)
		if err != nil {
			return "", err
		}
		ors = append(ors, col+" ILIKE "+p)
	}
	return "(" + strings.Join(ors, " OR ") + ")", nil
}

func (b *predicateBuilder) membership(c search.MembershipClause) (string, error) {
	col, err := column(c.Field)
	if err != nil {
		return "", err
	}
	if len(c.Values) == 0 {
		return "FALSE", nil
	}

	if !uuidFields[c.Field] {
		return col + " = ANY(" + b.arg(c.Values) + "::text[])", nil
	}

	ids := make([]uuid.UUID, 0, len(c.Values))
	for _, v := range c.Values {
		id, err := uuid.Parse(v)
		if err != nil {
			return "", errs.Wrapf(err, "field %q", c.Field)
		}
		ids = append(ids, id)
	}
	if c.Field == search.FieldAttributeIDs {
		return col + " && " + b.arg(ids) + "::uuid[]", nil
	}
	return col + " = ANY(" + b.arg(ids) + "::uuid[])", nil
}

func (b *predicateBuilder) thresholdAny(c search.ThresholdAnyClause) string {
	if len(c.Thresholds) == 0 {
		return ""
	}
	ors := make([]string, 0, len(c.Thresholds))
	for _, t := range c.Thresholds {
		ors = append(ors, fmt.Sprintf("(la.attribute_id = %s AND la.value >= %s)", b.arg(t.AttributeID), b.arg(t.Min)))
	}
	return "EXISTS (SELECT 1 FROM listing_attributes la WHERE la.listing_id = l.id AND (" + strings.Join(ors, " OR ") + "))"
}

func (b *predicateBuilder) equality(c search.EqualityClause) (string, error) {
	col, err := column(c.Field)
	if err != nil {
		return "", err
	}
	if uuidFields[c.Field] {
		id, err := uuid.Parse(c.Value)
		if err != nil {
			return "", errs.Wrapf(err, "field %q", c.Field)
		}
		return col + " = " + b.arg(id), nil
	}
	if c.CaseInsensitive {
		return "lower(" + col + ") = lower(" + b.arg(c.Value) + ")", nil
	}
	return col + " = " + b.arg(c.Value), nil
}

func (b *predicateBuilder) rangeCond(c search.RangeClause) (string, error) {
	col, err := column(c.Field)
	if err != nil {
		return "", err
	}
	parts := make([]string, 0, 2)
	if c.Min != nil {
		parts = append(parts, col+" >= "+b.arg(*c.Min)+"::float8")
	}
	if c.Max != nil {
		parts = append(parts, col+" <= "+b.arg(*c.Max)+"::float8")
	}
	return strings.Join(parts, " AND "), nil
}

// geo prefilters with a bounding box and confirms with the haversine distance.
func (b *predicateBuilder) geo(c search.GeoClause) string {
	minLat, maxLat, minLng, maxLng := c.BoundingBox()
	lat, lng := b.arg(c.Latitude), b.arg(c.Longitude)
	return fmt.Sprintf(
		"l.latitude BETWEEN %s AND %s AND l.longitude BETWEEN %s AND %s AND "+
			"2 * 6371 * asin(sqrt(power(sin(radians(l.latitude - %s) / 2), 2) + "+
			"cos(radians(%s)) * cos(radians(l.latitude)) * power(sin(radians(l.longitude - %s) / 2), 2))) <= %s",
		b.arg(minLat), b.arg(maxLat), b.arg(minLng), b.arg(maxLng),
		lat, lat, lng, b.arg(c.RadiusKm),
	)
}

// scheduleWindow mirrors listing.ScheduleEntry.ContainsTimeRange in SQL.
func (b *predicateBuilder) scheduleWindow(c search.ScheduleWindowClause) string {
	const day = 24 * 60
	from, to := c.From.Minutes(), c.To.Minutes()
	if to < from {
		to += day
	}
	rs, re := b.arg(from), b.arg(to)
	rsNext, reNext := b.arg(from+day), b.arg(to+day)

	we := "(CASE WHEN se.end_minute < se.start_minute THEN se.end_minute + 1440 ELSE se.end_minute END)"
	return "EXISTS (SELECT 1 FROM listing_schedule_entries se WHERE se.listing_id = l.id AND (" +
		"(se.start_minute <= " + rs + " AND " + re + " <= " + we + ")" +
		" OR (se.end_minute < se.start_minute AND se.start_minute <= " + rsNext + " AND " + reNext + " <= " + we + ")))"
}
