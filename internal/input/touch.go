// Package input translates raw platform touch streams into tracker
// events. It exists for hosts that deliver one event per contact, such
// as golang.org/x/mobile, where the full contact list has to be
// reassembled before the tracker can resync from it.
package input

import (
	"golang.org/x/mobile/event/touch"

	"TouchScope/internal/geom"
	"TouchScope/internal/state"
)

// TouchTranslator folds per contact touch events into whole contact
// lists for a Tracker. Contacts keep their begin order, so the polygon
// vertices stay in the order the fingers went down.
//
// Event coordinates are passed through unchanged; when the GL surface
// covers the whole window they are already canvas local.
type TouchTranslator struct {
	tracker *state.Tracker
	order   []touch.Sequence
	pos     map[touch.Sequence]geom.Point
}

// NewTouchTranslator returns a translator feeding tr.
func NewTouchTranslator(tr *state.Tracker) *TouchTranslator {
	return &TouchTranslator{
		tracker: tr,
		pos:     make(map[touch.Sequence]geom.Point),
	}
}

// Handle applies one touch event and forwards the resulting contact
// list to the tracker.
func (tt *TouchTranslator) Handle(e touch.Event) {
	p := geom.Pt(e.X, e.Y)
	switch e.Type {
	case touch.TypeBegin:
		if _, ok := tt.pos[e.Sequence]; !ok {
			tt.order = append(tt.order, e.Sequence)
		}
		tt.pos[e.Sequence] = p
		tt.tracker.ContactsChanged(tt.contacts())
	case touch.TypeMove:
		if _, ok := tt.pos[e.Sequence]; !ok {
			// move for a contact we never saw begin, adopt it
			tt.order = append(tt.order, e.Sequence)
		}
		tt.pos[e.Sequence] = p
		tt.tracker.ContactsChanged(tt.contacts())
	case touch.TypeEnd:
		tt.drop(e.Sequence)
		tt.tracker.ContactsEnded(tt.contacts())
	}
}

// Cancel aborts the whole gesture. The mobile event type has no cancel
// kind, so hosts call this on lifecycle loss instead.
func (tt *TouchTranslator) Cancel() {
	tt.order = tt.order[:0]
	for k := range tt.pos {
		delete(tt.pos, k)
	}
	tt.tracker.ContactsCancelled()
}

func (tt *TouchTranslator) contacts() []state.Contact {
	cs := make([]state.Contact, 0, len(tt.order))
	for _, seq := range tt.order {
		cs = append(cs, state.Contact{ID: int64(seq), Pos: tt.pos[seq]})
	}
	return cs
}

func (tt *TouchTranslator) drop(seq touch.Sequence) {
	delete(tt.pos, seq)
	for i, s := range tt.order {
		if s == seq {
			tt.order = append(tt.order[:i], tt.order[i+1:]...)
			break
		}
	}
}
