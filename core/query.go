package core

import "encoding/json"

// The generic search endpoints (/searchCourse, /searchRecord) accept a
// declarative query descriptor. The shape is owned by the backend; this package
// only assembles it and decodes the list envelope that comes back.

type (
	// Where is an arbitrary filter tree forwarded verbatim to the backend.
	Where map[string]interface{}

	// Include describes a nested datasource join.
	Include struct {
		Datasource string      `json:"datasource"`
		As         string      `json:"as,omitempty"`
		Required   bool        `json:"required,omitempty"`
		Where      Where       `json:"where,omitempty"`
		Attributes []string    `json:"attributes,omitempty"`
		Order      [][2]string `json:"order,omitempty"`
		Include    []Include   `json:"include,omitempty"`
	}

	// Spec is the getThisData payload of a Query.
	Spec struct {
		Datasource string      `json:"datasource"`
		Attributes []string    `json:"attributes,omitempty"`
		Where      Where       `json:"where,omitempty"`
		Include    []Include   `json:"include,omitempty"`
		Order      [][2]string `json:"order,omitempty"`
	}

	// Query is one POST body for a generic search endpoint.
	Query struct {
		Limit       int  `json:"limit"`
		Offset      int  `json:"offset"`
		GetThisData Spec `json:"getThisData"`
	}
)

// NewQuery builds a descriptor for the given datasource scoped to one page.
func NewQuery(datasource string, page Page) Query {
	return Query{
		Limit:       page.Limit,
		Offset:      page.Offset,
		GetThisData: Spec{Datasource: datasource},
	}
}

// SearchWhere builds a case-insensitive substring match over the given fields,
// OR-combined. Empty search text yields nil (no filter).
func SearchWhere(text string, fields ...string) Where {
	text = CleanString(text)
	if text == "" || len(fields) == 0 {
		return nil
	}
	or := make([]Where, 0, len(fields))
	for _, f := range fields {
		or = append(or, Where{f: Where{"$iLike": "%" + text + "%"}})
	}
	return Where{"$or": or}
}

// OrderBy appends an ordering clause; dir is "ASC" or "DESC".
func (q *Query) OrderBy(field, dir string) {
	q.GetThisData.Order = append(q.GetThisData.Order, [2]string{field, dir})
}

// ListEnvelope is the response body of a list query. Results stays raw so each
// repository can decode into its own DTO slice.
type ListEnvelope struct {
	Results    json.RawMessage `json:"results"`
	TotalCount int             `json:"totalCount"`
	Offset     int             `json:"offset"`
	Limit      int             `json:"limit"`
}

// DefaultPageSize matches the backend's default list size.
const DefaultPageSize = 12

// Page tracks pagination state for one list. The server response is the
// authority: Apply overwrites whatever the client had.
type Page struct {
	Limit      int
	Offset     int
	TotalCount int
}

func NewPage() Page {
	return Page{Limit: DefaultPageSize}
}

// Apply adopts the pagination state reported by the server.
func (p *Page) Apply(env ListEnvelope) {
	p.TotalCount = env.TotalCount
	p.Offset = env.Offset
	if env.Limit > 0 {
		p.Limit = env.Limit
	}
}

func (p Page) HasNext() bool {
	return p.Offset+p.Limit < p.TotalCount
}

func (p Page) HasPrev() bool {
	return p.Offset > 0
}

// Next advances the offset by one page. It never moves past the last known
// page; Next followed by Prev restores the original offset, except on the
// last page where Next is a no-op while Prev still pages back.
func (p *Page) Next() {
	if p.HasNext() {
		p.Offset += p.Limit
	}
}

// Prev moves the offset back one page, clamped at 0. It is not guarded by
// HasNext, so it pages back even when the preceding Next did not advance.
func (p *Page) Prev() {
	p.Offset -= p.Limit
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageCount reports the total number of pages for the current limit.
func (p Page) PageCount() int {
	if p.Limit <= 0 || p.TotalCount <= 0 {
		return 0
	}
	return (p.TotalCount + p.Limit - 1) / p.Limit
}
