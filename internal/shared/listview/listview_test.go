package listview_test

import (
	"fmt"
	"testing"

	"hr-console/internal/shared/listview"

	"github.com/stretchr/testify/assert"
)

type row struct {
	Name       string
	Department string
	Status     string
}

func rowFields() listview.Fields[row] {
	return listview.Fields[row]{
		Searchable: []func(row) string{
			func(r row) string { return r.Name },
		},
		Categorical: map[string]func(row) string{
			"department": func(r row) string { return r.Department },
			"status":     func(r row) string { return r.Status },
		},
	}
}

func TestMatches_EmptyCriteriaMatchesEverything(t *testing.T) {
	recs := []row{
		{Name: "Jane Doe", Department: "HR", Status: "active"},
		{Name: "John Smith", Department: "IT", Status: "inactive"},
		{Name: "", Department: "", Status: ""},
	}
	c := listview.Criteria{
		Query: "",
		Selectors: map[string]string{
			"department": listview.All,
			"status":     listview.All,
		},
	}

	for _, r := range recs {
		assert.True(t, listview.Matches(r, c, rowFields()))
	}
}

func TestMatches_QueryIsCaseInsensitiveSubstring(t *testing.T) {
	r := row{Name: "Jane Doe", Department: "HR", Status: "active"}

	assert.True(t, listview.Matches(r, listview.Criteria{Query: "jane"}, rowFields()))
	assert.True(t, listview.Matches(r, listview.Criteria{Query: "NE Do"}, rowFields()))
	assert.False(t, listview.Matches(r, listview.Criteria{Query: "smith"}, rowFields()))
}

func TestMatches_SelectorsMustAllPass(t *testing.T) {
	r := row{Name: "Jane Doe", Department: "HR", Status: "active"}

	t.Run("exact match passes", func(t *testing.T) {
		c := listview.Criteria{Selectors: map[string]string{"department": "HR", "status": "active"}}
		assert.True(t, listview.Matches(r, c, rowFields()))
	})

	t.Run("one mismatch fails", func(t *testing.T) {
		c := listview.Criteria{Selectors: map[string]string{"department": "HR", "status": "inactive"}}
		assert.False(t, listview.Matches(r, c, rowFields()))
	})

	t.Run("query and selectors combine with AND", func(t *testing.T) {
		c := listview.Criteria{Query: "jane", Selectors: map[string]string{"department": "IT"}}
		assert.False(t, listview.Matches(r, c, rowFields()))
	})
}

func TestFilter_PreservesInsertionOrder(t *testing.T) {
	recs := []row{
		{Name: "c", Department: "HR"},
		{Name: "a", Department: "IT"},
		{Name: "b", Department: "HR"},
	}
	c := listview.Criteria{Selectors: map[string]string{"department": "HR"}}

	got := listview.Filter(recs, c, rowFields())

	assert.Equal(t, []row{{Name: "c", Department: "HR"}, {Name: "b", Department: "HR"}}, got)
}

func TestAssembleClient_WindowRowCounts(t *testing.T) {
	recs := make([]row, 25)
	for i := range recs {
		recs[i] = row{Name: fmt.Sprintf("employee %02d", i)}
	}

	cases := []struct {
		page, size int
		wantRows   int
	}{
		{page: 1, size: 10, wantRows: 10},
		{page: 2, size: 10, wantRows: 10},
		{page: 3, size: 10, wantRows: 5},
		{page: 4, size: 10, wantRows: 0},
		{page: 1, size: 50, wantRows: 25},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("page=%d size=%d", tc.page, tc.size), func(t *testing.T) {
			p := listview.AssembleClient(recs, listview.Criteria{}, rowFields(), listview.Window{Page: tc.page, Size: tc.size})

			assert.Len(t, p.Rows, tc.wantRows)
			assert.Equal(t, int64(25), p.Total)
		})
	}
}

func TestAssembleClient_TotalIsFilteredCount(t *testing.T) {
	recs := []row{
		{Name: "Jane Doe"},
		{Name: "Jane Roe"},
		{Name: "John Smith"},
	}

	p := listview.AssembleClient(recs, listview.Criteria{Query: "jane"}, rowFields(), listview.Window{Page: 1, Size: 1})

	assert.Len(t, p.Rows, 1)
	assert.Equal(t, int64(2), p.Total)
	assert.Equal(t, "Jane Doe", p.Rows[0].Name)
}

func TestAssembleServer_TrustsReportedTotal(t *testing.T) {
	rows := []row{{Name: "Jane Doe"}}

	p := listview.AssembleServer(rows, 412)

	assert.Equal(t, rows, p.Rows)
	assert.Equal(t, int64(412), p.Total)
}
