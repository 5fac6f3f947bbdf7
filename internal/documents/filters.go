package documents

import (
	"net/url"

	"github.com/JaimeStill/doc-library/pkg/query"
)

// Filters contains optional criteria for filtering document queries.
type Filters struct {
	Filename *string
	Status   *Status
}

// FiltersFromQuery extracts document filters from URL query parameters.
// Unknown status values are ignored.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if n := values.Get("filename"); n != "" {
		f.Filename = &n
	}

	if s := Status(values.Get("status")); s.Valid() {
		f.Status = &s
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	b.WhereContains("Filename", f.Filename)
	if f.Status != nil {
		b.WhereEquals("Status", string(*f.Status))
	}
	return b
}
