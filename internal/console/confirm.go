package console

import "context"

type ConfirmState int

const (
	ConfirmIdle ConfirmState = iota
	ConfirmPending
)

// DeleteFunc performs the actual delete against the collaborator.
type DeleteFunc func(ctx context.Context, id string) error

// ConfirmFlow drives the delete confirmation dialog: idle until a delete is
// requested, pending while the dialog is open, and back to idle on cancel
// or completion. The row is never removed optimistically; on success the
// refresh callback reloads the list, on failure the list stays untouched.
type ConfirmFlow struct {
	state   ConfirmState
	target  string
	deleter DeleteFunc
	refresh func()
}

func NewConfirmFlow(deleter DeleteFunc, refresh func()) *ConfirmFlow {
	return &ConfirmFlow{deleter: deleter, refresh: refresh}
}

func (f *ConfirmFlow) State() ConfirmState {
	return f.state
}

// Target reports the id the open dialog refers to.
func (f *ConfirmFlow) Target() string {
	return f.target
}

// Request opens the dialog for the given id. A second request while one is
// already open is refused.
func (f *ConfirmFlow) Request(id string) bool {
	if f.state != ConfirmIdle {
		return false
	}
	f.state = ConfirmPending
	f.target = id
	return true
}

// Cancel closes the dialog without contacting the collaborator.
func (f *ConfirmFlow) Cancel() {
	f.state = ConfirmIdle
	f.target = ""
}

// Confirm executes the delete for the recorded target. Either way the
// dialog closes; the refresh callback runs only after the collaborator
// acknowledged the delete.
func (f *ConfirmFlow) Confirm(ctx context.Context) error {
	if f.state != ConfirmPending {
		return nil
	}

	id := f.target
	f.state = ConfirmIdle
	f.target = ""

	if err := f.deleter(ctx, id); err != nil {
		return err
	}

	if f.refresh != nil {
		f.refresh()
	}
	return nil
}
