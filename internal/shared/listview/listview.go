// Package listview implements the filtering and pagination pipeline behind
// the console's data grids. Everything here is pure: records go in, the
// exact rows a grid should render come out.
package listview

import "strings"

// All is the selector value that matches every record.
const All = "all"

// Criteria is the user-chosen filter state of one grid: a free-text query
// plus zero or more categorical selectors keyed by attribute name.
type Criteria struct {
	Query     string
	Selectors map[string]string
}

// Fields declares how to read a record's filterable values. Searchable
// fields are matched against the query; Categorical fields against the
// selector of the same name.
type Fields[T any] struct {
	Searchable  []func(T) string
	Categorical map[string]func(T) string
}

// Matches reports whether one record passes the criteria: the query must be
// a case-insensitive substring of at least one searchable field, and every
// selector must be All (or empty) or equal the record's attribute exactly.
// An empty query matches everything.
func Matches[T any](rec T, c Criteria, f Fields[T]) bool {
	q := strings.ToLower(strings.TrimSpace(c.Query))
	if q != "" {
		hit := false
		for _, get := range f.Searchable {
			if strings.Contains(strings.ToLower(get(rec)), q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	for name, want := range c.Selectors {
		if want == "" || want == All {
			continue
		}
		get, ok := f.Categorical[name]
		if !ok {
			continue
		}
		if get(rec) != want {
			return false
		}
	}

	return true
}

// Filter keeps the records matching the criteria, preserving input order.
func Filter[T any](recs []T, c Criteria, f Fields[T]) []T {
	out := make([]T, 0, len(recs))
	for _, rec := range recs {
		if Matches(rec, c, f) {
			out = append(out, rec)
		}
	}
	return out
}

// Window is one pagination window. Page is 1-based.
type Window struct {
	Page int
	Size int
}

func (w Window) normalized() Window {
	if w.Page < 1 {
		w.Page = 1
	}
	if w.Size < 1 {
		w.Size = 10
	}
	return w
}

// Offset is the index of the window's first row.
func (w Window) Offset() int {
	w = w.normalized()
	return (w.Page - 1) * w.Size
}

// Page is the assembled result of one grid: the rows of the requested
// window and the total row count after filtering.
type Page[T any] struct {
	Rows  []T
	Total int64
}

// AssembleClient runs the client-side mode: filter the full in-memory set,
// then slice the window out of it. Total is the filtered count.
func AssembleClient[T any](recs []T, c Criteria, f Fields[T], w Window) Page[T] {
	filtered := Filter(recs, c, f)
	w = w.normalized()

	start := w.Offset()
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + w.Size
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page[T]{
		Rows:  filtered[start:end],
		Total: int64(len(filtered)),
	}
}

// AssembleServer runs the server-side mode: the collaborator already
// filtered and sliced, so its page and total are trusted as-is. A grid uses
// exactly one of the two modes; mixing them would double-filter rows and
// report inconsistent totals.
func AssembleServer[T any](rows []T, total int64) Page[T] {
	return Page[T]{Rows: rows, Total: total}
}
