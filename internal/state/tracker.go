// Package state tracks the input contacts behind the overlay. A
// Tracker owns two pieces of state: the set of contacts currently on
// the surface and the last snapshot of their positions, which is what
// keeps the final geometry on screen after the fingers lift.
package state

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"TouchScope/internal/geom"
)

// Contact is one live touch point. ID is the platform contact
// identifier and only has to be stable for the contact's lifetime.
type Contact struct {
	ID  int64
	Pos geom.Point
}

// Tracker holds the live contact set and the last snapshot. All event
// methods are safe for concurrent use; reads through Points, Snapshot,
// ContactCount and Pressed take a read lock.
//
// Touch events resync the live set wholesale from the platform's full
// contact list, so a missed event never leaves a stale contact behind.
// Mouse input runs on a separate pressed/last-position pair and writes
// the snapshot directly, bypassing the live set.
type Tracker struct {
	// OnChange fires after every state change that needs a repaint.
	// Set it before delivering events; it runs outside the lock.
	OnChange func()

	mu       sync.RWMutex
	tag      string
	live     []Contact
	snapshot []geom.Point
	pressed  bool
	lastPos  geom.Point
}

// NewTracker returns an empty tracker with a short random tag used to
// tell instances apart in the log.
func NewTracker() *Tracker {
	return &Tracker{tag: uuid.NewString()[:8]}
}

// ContactsChanged replaces the live set with raw, in raw's order, and
// mirrors the positions into the snapshot. An empty raw clears the
// live set but leaves the snapshot alone.
func (t *Tracker) ContactsChanged(raw []Contact) {
	t.mu.Lock()
	t.resync(raw)
	t.mu.Unlock()
	t.notify()
}

// ContactsEnded drops every live contact whose ID is absent from
// remaining. If nothing is left the snapshot keeps the final geometry;
// otherwise the survivors are resynced from remaining just like a
// ContactsChanged.
func (t *Tracker) ContactsEnded(remaining []Contact) {
	t.mu.Lock()
	kept := 0
	for _, c := range t.live {
		for _, r := range remaining {
			if r.ID == c.ID {
				kept++
				break
			}
		}
	}
	if kept == 0 {
		t.live = t.live[:0]
		log.Printf("[tracker %s] all contacts ended, snapshot frozen at %d point(s)", t.tag, len(t.snapshot))
	} else {
		t.resync(remaining)
	}
	t.mu.Unlock()
	t.notify()
}

// ContactsCancelled clears the live set without touching the snapshot,
// for when the platform aborts a gesture.
func (t *Tracker) ContactsCancelled() {
	t.mu.Lock()
	t.live = t.live[:0]
	log.Printf("[tracker %s] contacts cancelled, keeping %d point(s)", t.tag, len(t.snapshot))
	t.mu.Unlock()
	t.notify()
}

// PointerDown starts single point mouse emulation: the snapshot
// becomes just p and stays under the cursor while the button is held.
func (t *Tracker) PointerDown(p geom.Point) {
	t.mu.Lock()
	t.pressed = true
	t.lastPos = p
	t.snapshot = append(t.snapshot[:0], p)
	log.Printf("[tracker %s] pointer down at (%.0f, %.0f)", t.tag, p.X, p.Y)
	t.mu.Unlock()
	t.notify()
}

// PointerDragged moves the emulated point. Ignored unless the button
// is down.
func (t *Tracker) PointerDragged(p geom.Point) {
	t.mu.Lock()
	if !t.pressed {
		t.mu.Unlock()
		return
	}
	t.lastPos = p
	t.snapshot = append(t.snapshot[:0], p)
	t.mu.Unlock()
	t.notify()
}

// PointerUp releases the emulated point. The last position stays in
// the snapshot, so nothing needs repainting.
func (t *Tracker) PointerUp() {
	t.mu.Lock()
	t.pressed = false
	t.mu.Unlock()
}

// Reset drops all state, live and snapshot alike.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.live = t.live[:0]
	t.snapshot = t.snapshot[:0]
	t.pressed = false
	log.Printf("[tracker %s] reset", t.tag)
	t.mu.Unlock()
	t.notify()
}

// Points returns a copy of what should be rendered right now: the live
// contact positions while any contact is down, else the snapshot.
func (t *Tracker) Points() []geom.Point {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.live) > 0 {
		pts := make([]geom.Point, len(t.live))
		for i, c := range t.live {
			pts[i] = c.Pos
		}
		return pts
	}
	pts := make([]geom.Point, len(t.snapshot))
	copy(pts, t.snapshot)
	return pts
}

// Snapshot returns a copy of the last snapshot positions.
func (t *Tracker) Snapshot() []geom.Point {
	t.mu.RLock()
	defer t.mu.RUnlock()
	pts := make([]geom.Point, len(t.snapshot))
	copy(pts, t.snapshot)
	return pts
}

// ContactCount returns the number of live contacts.
func (t *Tracker) ContactCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.live)
}

// Pressed reports whether the emulated pointer button is down.
func (t *Tracker) Pressed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.pressed
}

// resync rebuilds the live set from raw and, when raw is non empty,
// mirrors it into the snapshot. Caller holds the write lock.
func (t *Tracker) resync(raw []Contact) {
	prev := len(t.live)
	t.live = append(t.live[:0], raw...)
	if len(t.live) > 0 {
		t.snapshot = t.snapshot[:0]
		for _, c := range t.live {
			t.snapshot = append(t.snapshot, c.Pos)
		}
	}
	if len(t.live) != prev {
		log.Printf("[tracker %s] %d contact(s) down", t.tag, len(t.live))
	}
}

func (t *Tracker) notify() {
	if t.OnChange != nil {
		t.OnChange()
	}
}
