package session

import "time"

// Watchdog is the inactivity state machine: a single deadline that activity
// pushes forward. It owns no timer of its own; the UI's tick loop asks
// Expired and every user-activity signal calls Reset. Re-arming always
// replaces the prior deadline, so there is never more than one live deadline.
type Watchdog struct {
	limit    time.Duration
	deadline time.Time
	armed    bool
}

func NewWatchdog(limit time.Duration) *Watchdog {
	return &Watchdog{limit: limit}
}

// Arm starts the countdown. A freshly created session is armed immediately:
// a logged-in but idle user still times out.
func (w *Watchdog) Arm(now time.Time) {
	w.armed = true
	w.deadline = now.Add(w.limit)
}

// Reset pushes the deadline forward on user activity. Ignored while
// disarmed (no session, nothing to keep alive).
func (w *Watchdog) Reset(now time.Time) {
	if !w.armed {
		return
	}
	w.deadline = now.Add(w.limit)
}

// Disarm stops the countdown (logout or teardown).
func (w *Watchdog) Disarm() {
	w.armed = false
	w.deadline = time.Time{}
}

func (w *Watchdog) Armed() bool { return w.armed }

// Expired reports whether the countdown elapsed with no activity.
func (w *Watchdog) Expired(now time.Time) bool {
	return w.armed && !now.Before(w.deadline)
}

// Deadline returns the current deadline while armed.
func (w *Watchdog) Deadline() (time.Time, bool) {
	return w.deadline, w.armed
}
