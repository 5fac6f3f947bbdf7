package query

import "strings"

// SortField names a view field and its direction.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses a comma-separated sort expression such as
// "filename,-created_at". A leading "-" selects descending order.
func ParseSortFields(s string) []SortField {
	if s == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	fields := make([]SortField, 0, len(parts))

	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		desc := strings.HasPrefix(p, "-")
		name := strings.TrimPrefix(p, "-")
		if name == "" {
			continue
		}

		fields = append(fields, SortField{Field: name, Descending: desc})
	}

	return fields
}
