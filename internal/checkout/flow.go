package checkout

import "sync"

// Flow is one session's walk through the checkout steps. Advancing past the
// last step completes the order and fires the completion hook exactly once.
type Flow struct {
	mu         sync.Mutex
	step       int
	completed  bool
	details    *Details
	shipping   *Shipping
	onComplete func()
}

func NewFlow(onComplete func()) *Flow {
	return &Flow{onComplete: onComplete}
}

// State returns the current step snapshot.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.stateLocked()
}

func (f *Flow) stateLocked() State {
	return State{
		Step:      f.step,
		StepName:  Steps[f.step],
		Completed: f.completed,
	}
}

// Next advances one step. On the last step it completes the order instead
// of advancing; further calls after completion are no-ops.
func (f *Flow) Next() State {
	f.mu.Lock()

	if f.completed {
		defer f.mu.Unlock()
		return f.stateLocked()
	}

	if f.step < len(Steps)-1 {
		f.step++
		defer f.mu.Unlock()
		return f.stateLocked()
	}

	f.completed = true
	state := f.stateLocked()
	hook := f.onComplete
	f.mu.Unlock()

	// Run the hook outside the lock: it reaches back into the cart.
	if hook != nil {
		hook()
	}
	return state
}

// Back steps backwards, clamped at the first step.
func (f *Flow) Back() State {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step > 0 && !f.completed {
		f.step--
	}
	return f.stateLocked()
}

// SetDetails stores the customer form.
func (f *Flow) SetDetails(d Details) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.details = &d
}

// SetShipping stores the address form.
func (f *Flow) SetShipping(s Shipping) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.shipping = &s
}

func (f *Flow) Details() *Details {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.details == nil {
		return nil
	}
	cp := *f.details
	return &cp
}

func (f *Flow) Shipping() *Shipping {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.shipping == nil {
		return nil
	}
	cp := *f.shipping
	return &cp
}
