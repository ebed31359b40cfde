package console

import (
	"hr-console/internal/shared/listview"
)

// ListViewState is the full, serializable state of one list screen: the
// active filter criteria, the pagination window, the rows on display and
// the single open-dialog flag. Every mutation goes through a setter so the
// screen's data flow stays traceable.
type ListViewState struct {
	Criteria listview.Criteria `json:"criteria"`
	Window   listview.Window   `json:"window"`
	Rows     []EmployeeRecord  `json:"rows"`
	Total    int64             `json:"total"`

	// DialogOpen guards the one add/edit or confirm dialog a screen may
	// show. Opening a second is refused rather than stacked.
	DialogOpen bool `json:"dialog_open"`

	generation uint64
}

func NewListViewState(pageSize int) *ListViewState {
	return &ListViewState{
		Criteria: listview.Criteria{Selectors: map[string]string{}},
		Window:   listview.Window{Page: 1, Size: pageSize},
	}
}

// SetQuery replaces the free-text query and rewinds to the first page.
func (s *ListViewState) SetQuery(q string) {
	s.Criteria.Query = q
	s.Window.Page = 1
	s.generation++
}

// SetSelector replaces one categorical selector and rewinds to the first
// page.
func (s *ListViewState) SetSelector(name, value string) {
	if s.Criteria.Selectors == nil {
		s.Criteria.Selectors = map[string]string{}
	}
	s.Criteria.Selectors[name] = value
	s.Window.Page = 1
	s.generation++
}

func (s *ListViewState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Window.Page = page
	s.generation++
}

// BeginFetch stamps an outgoing request with the current state generation.
// The token must be handed back to ApplyPage with the response.
func (s *ListViewState) BeginFetch() uint64 {
	return s.generation
}

// ApplyPage installs a fetched page only when it belongs to the newest
// criteria. A stale response, one whose token predates a later criteria or
// page change, is discarded so it can never overwrite fresher state.
func (s *ListViewState) ApplyPage(token uint64, rows []EmployeeRecord, total int64) bool {
	if token != s.generation {
		return false
	}
	s.Rows = rows
	s.Total = total
	return true
}

// OpenDialog claims the screen's dialog slot. It reports false when a
// dialog is already open.
func (s *ListViewState) OpenDialog() bool {
	if s.DialogOpen {
		return false
	}
	s.DialogOpen = true
	return true
}

func (s *ListViewState) CloseDialog() {
	s.DialogOpen = false
}
