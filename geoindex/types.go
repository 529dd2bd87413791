// Package geoindex implements CoordinateIndex: a read-only, merge-by-
// priority map from (settlement, precinct) to a geographic coordinate,
// built once from one or more upstream coordinate providers of varying
// confidence.
package geoindex

// Source identifies which upstream provider produced a coordinate, and
// orders the merge priority used when two providers disagree on the
// same key: HighConfidenceVenue > Venue > Settlement > NotFound.
type Source string

const (
	SourceHighConfidenceVenue Source = "high_confidence_venue"
	SourceVenue               Source = "venue"
	SourceSettlement          Source = "settlement"
	SourceNotFound            Source = "not_found"
)

// priority ranks sources for merge comparison, grounded on
// normalize_coordinates.py's SOURCE_PRIORITY table (there named
// google_venue/venue/settlement/not_found).
var priority = map[Source]int{
	SourceHighConfidenceVenue: 3,
	SourceVenue:               2,
	SourceSettlement:          1,
	SourceNotFound:            0,
}

// Coordinate is a resolved geographic point with its provenance.
type Coordinate struct {
	Lat, Lon float64
	Source   Source
}

// key scopes a coordinate to one precinct within one settlement.
type key struct {
	settlement string
	precinct   string
}
