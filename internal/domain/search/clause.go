// Package search builds typed listing-search predicates. Clauses are store-agnostic; the
// infra layer compiles them into SQL.
package search

import (
	"math"

	"venuebook/internal/domain/listing"

	"github.com/google/uuid"
)

// Field names a searchable listing attribute independently of any storage column.
type Field string

const (
	FieldKeywords     Field = "keywords"
	FieldTitle        Field = "title"
	FieldDescription  Field = "description"
	FieldAddressLine  Field = "address_line"
	FieldCity         Field = "city"
	FieldState        Field = "state"
	FieldCountry      Field = "country"
	FieldVendorName   Field = "vendor_name"
	FieldAttributeIDs Field = "attribute_ids"
	FieldServiceType  Field = "service_type"
	FieldEventType    Field = "event_type"
	FieldStatus       Field = "status"
	FieldCapacity     Field = "capacity"
	FieldBasePrice    Field = "base_price"
)

// KeywordFields is the OR-group a keyword expands into.
var KeywordFields = []Field{
	FieldKeywords,
	FieldTitle,
	FieldDescription,
	FieldAddressLine,
	FieldCity,
	FieldState,
	FieldCountry,
	FieldVendorName,
}

// Clause is one AND-ed condition of a Filter. The set of implementations is closed.
type Clause interface {
	clause()
}

// KeywordClause matches when any of Fields contains Term, case-insensitively.
type KeywordClause struct {
	Term   string
	Fields []Field
}

// MembershipClause matches when Field equals any of Values. For array fields it matches
// when the array shares at least one element with Values.
type MembershipClause struct {
	Field  Field
	Values []string
}

type AttributeThreshold struct {
	AttributeID uuid.UUID
	Min         float64
}

// ThresholdAnyClause matches when at least one attribute reaches its threshold.
type ThresholdAnyClause struct {
	Thresholds []AttributeThreshold
}

type EqualityClause struct {
	Field           Field
	Value           string
	CaseInsensitive bool
}

// RangeClause bounds a numeric field; nil ends are open and both ends are inclusive.
type RangeClause struct {
	Field Field
	Min   *float64
	Max   *float64
}

type GeoClause struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

// ScheduleWindowClause matches listings with at least one schedule entry whose window
// fully contains From..To.
type ScheduleWindowClause struct {
	From listing.ClockTime
	To   listing.ClockTime
}

func (KeywordClause) clause()        {}
func (MembershipClause) clause()     {}
func (ThresholdAnyClause) clause()   {}
func (EqualityClause) clause()       {}
func (RangeClause) clause()          {}
func (GeoClause) clause()            {}
func (ScheduleWindowClause) clause() {}

const earthRadiusKm = 6371.0

// DistanceKm is the great-circle distance using the haversine formula.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func (g GeoClause) Contains(lat, lng float64) bool {
	return DistanceKm(g.Latitude, g.Longitude, lat, lng) <= g.RadiusKm
}

// BoundingBox returns a lat/lng box that encloses the radius, for index-friendly prefiltering.
func (g GeoClause) BoundingBox() (minLat, maxLat, minLng, maxLng float64) {
	dLat := g.RadiusKm / earthRadiusKm * 180 / math.Pi
	minLat, maxLat = g.Latitude-dLat, g.Latitude+dLat

	cos := math.Cos(g.Latitude * math.Pi / 180)
	if cos < 1e-6 || maxLat >= 90 || minLat <= -90 {
		return math.Max(minLat, -90), math.Min(maxLat, 90), -180, 180
	}
	dLng := dLat / cos
	return minLat, maxLat, g.Longitude - dLng, g.Longitude + dLng
}
