package core

import (
	"encoding/json"
	"testing"
)

func TestQueryWireShape(t *testing.T) {
	page := Page{Limit: 12, Offset: 24}
	q := NewQuery("Course", page)
	q.GetThisData.Attributes = []string{"courseId", "courseTitle"}
	q.GetThisData.Where = SearchWhere("go", "courseTitle", "courseDescription")
	q.GetThisData.Include = []Include{
		{Datasource: "CourseContent", Order: [][2]string{{"courseContentSequence", "ASC"}}},
	}
	q.OrderBy("createdAt", "DESC")

	got, err := json.Marshal(q)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	want := `{"limit":12,"offset":24,"getThisData":{"datasource":"Course",` +
		`"attributes":["courseId","courseTitle"],` +
		`"where":{"$or":[{"courseTitle":{"$iLike":"%go%"}},{"courseDescription":{"$iLike":"%go%"}}]},` +
		`"include":[{"datasource":"CourseContent","order":[["courseContentSequence","ASC"]]}],` +
		`"order":[["createdAt","DESC"]]}}`
	if string(got) != want {
		t.Errorf("Marshal() = %s\nwant %s", got, want)
	}
}

func TestSearchWhere(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		fields []string
		want   bool // non-nil filter expected
	}{
		{name: "empty text", text: "", fields: []string{"title"}},
		{name: "whitespace text", text: "   ", fields: []string{"title"}},
		{name: "no fields", text: "go"},
		{name: "match", text: "go", fields: []string{"title", "description"}, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchWhere(tt.text, tt.fields...)
			if (got != nil) != tt.want {
				t.Errorf("SearchWhere() = %v, want filter: %v", got, tt.want)
			}
		})
	}
}

func TestPageNavigation(t *testing.T) {
	p := NewPage()
	p.Apply(ListEnvelope{TotalCount: 30, Offset: 0, Limit: 12})

	if !p.HasNext() || p.HasPrev() {
		t.Errorf("first page: HasNext = %v, HasPrev = %v", p.HasNext(), p.HasPrev())
	}
	if got := p.PageCount(); got != 3 {
		t.Errorf("PageCount() = %d, want 3", got)
	}

	p.Next()
	if p.Offset != 12 {
		t.Errorf("Next() offset = %d, want 12", p.Offset)
	}
	p.Next()
	if p.Offset != 24 {
		t.Errorf("Next() offset = %d, want 24", p.Offset)
	}
	if p.HasNext() {
		t.Error("last page: HasNext = true")
	}
	p.Next() // must not move past the last page
	if p.Offset != 24 {
		t.Errorf("Next() past end: offset = %d, want 24", p.Offset)
	}

	p.Prev()
	p.Prev()
	if p.Offset != 0 {
		t.Errorf("Prev() offset = %d, want 0", p.Offset)
	}
	p.Prev() // clamped
	if p.Offset != 0 {
		t.Errorf("Prev() below start: offset = %d, want 0", p.Offset)
	}
}

func TestPageNextPrevRoundTrip(t *testing.T) {
	p := Page{Limit: 12, Offset: 12, TotalCount: 100}
	p.Next()
	p.Prev()
	if p.Offset != 12 {
		t.Errorf("Next().Prev() offset = %d, want 12", p.Offset)
	}

	// on the last page Next stays put while Prev still pages back
	p = Page{Limit: 12, Offset: 24, TotalCount: 30}
	p.Next()
	if p.Offset != 24 {
		t.Errorf("Next() on last page: offset = %d, want 24", p.Offset)
	}
	p.Prev()
	if p.Offset != 12 {
		t.Errorf("Prev() on last page: offset = %d, want 12", p.Offset)
	}
}

func TestPageApply(t *testing.T) {
	tests := []struct {
		name string
		env  ListEnvelope
		want Page
	}{
		{
			name: "server state adopted",
			env:  ListEnvelope{TotalCount: 50, Offset: 24, Limit: 10},
			want: Page{Limit: 10, Offset: 24, TotalCount: 50},
		},
		{
			name: "zero limit keeps client limit",
			env:  ListEnvelope{TotalCount: 5, Offset: 0},
			want: Page{Limit: DefaultPageSize, Offset: 0, TotalCount: 5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPage()
			p.Apply(tt.env)
			if p != tt.want {
				t.Errorf("Apply() = %+v, want %+v", p, tt.want)
			}
		})
	}
}

func TestPageHasNextBoundary(t *testing.T) {
	tests := []struct {
		name string
		page Page
		want bool
	}{
		{name: "empty list", page: Page{Limit: 12}},
		{name: "exactly one page", page: Page{Limit: 12, TotalCount: 12}},
		{name: "one over", page: Page{Limit: 12, TotalCount: 13}, want: true},
		{name: "last partial page", page: Page{Limit: 12, Offset: 12, TotalCount: 13}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.page.HasNext(); got != tt.want {
				t.Errorf("HasNext() = %v, want %v", got, tt.want)
			}
		})
	}
}
