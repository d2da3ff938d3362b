package vacances

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultEndpoint is the JSON export of the fr-en-calendrier-scolaire dataset
const DefaultEndpoint = "https://data.education.gouv.fr/api/v2/catalog/datasets/fr-en-calendrier-scolaire/exports/json"

// Dataset field names used in filters
const (
	fieldStartDate   = "start_date"
	fieldEndDate     = "end_date"
	fieldZones       = "zones"
	fieldDescription = "description"
)

var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func quoted(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}

type predicate struct {
	field    string
	operator string
	value    string
}

func (p *predicate) String() string {
	return p.field + " " + p.operator + " " + p.value
}

// Query is a filter against the holiday dataset. Predicates are always
// rendered in the same order: start_date lower bound, start_date upper
// bound, zone, holiday name, end_date lower bound.
type Query struct {
	startFrom  *predicate
	startUntil *predicate
	zone       *predicate
	name       *predicate
	endFrom    *predicate
}

// YearQuery selects periods starting within year
func YearQuery(year int) Query {
	y := strconv.Itoa(year)
	return Query{
		startFrom:  &predicate{fieldStartDate, ">=", y},
		startUntil: &predicate{fieldStartDate, "<=", y},
	}
}

// DateQuery selects periods covering d (start_date <= d <= end_date)
func DateQuery(d Date) Query {
	s := quoted(d.String())
	return Query{
		startUntil: &predicate{fieldStartDate, "<=", s},
		endFrom:    &predicate{fieldEndDate, ">=", s},
	}
}

// WithZone restricts the query to a single zone
func (q Query) WithZone(zone string) Query {
	q.zone = &predicate{fieldZones, "=", quoted(zone)}
	return q
}

// WithZoneIn restricts the query to a set of zones
func (q Query) WithZoneIn(zones ...string) Query {
	values := make([]string, len(zones))
	for i, z := range zones {
		values[i] = quoted(z)
	}
	q.zone = &predicate{fieldZones, "IN", "(" + strings.Join(values, ", ") + ")"}
	return q
}

// WithName restricts the query to one holiday period name
func (q Query) WithName(name string) Query {
	q.name = &predicate{fieldDescription, "=", quoted(name)}
	return q
}

// Where renders the filter expression
func (q Query) Where() string {
	var parts []string
	for _, p := range []*predicate{q.startFrom, q.startUntil, q.zone, q.name, q.endFrom} {
		if p != nil {
			parts = append(parts, p.String())
		}
	}
	return strings.Join(parts, " AND ")
}

// Values returns the query parameters sent to the dataset
func (q Query) Values() url.Values {
	v := url.Values{}
	if where := q.Where(); where != "" {
		v.Set("where", where)
	}
	v.Set("order_by", fieldStartDate)
	return v
}

// Encode percent-encodes the query string. Spaces are written as %20
// rather than the form encoding's "+".
func (q Query) Encode() string {
	return strings.ReplaceAll(q.Values().Encode(), "+", "%20")
}

// URL appends the encoded query to endpoint
func (q Query) URL(endpoint string) string {
	return endpoint + "?" + q.Encode()
}
