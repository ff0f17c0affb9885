package input

import (
	"reflect"
	"testing"

	"golang.org/x/mobile/event/touch"

	"TouchScope/internal/geom"
	"TouchScope/internal/state"
)

func ev(seq touch.Sequence, typ touch.Type, x, y float32) touch.Event {
	return touch.Event{X: x, Y: y, Sequence: seq, Type: typ}
}

func TestTranslatorLifecycle(t *testing.T) {
	tr := state.NewTracker()
	tt := NewTouchTranslator(tr)

	tt.Handle(ev(1, touch.TypeBegin, 5, 5))
	if got := tr.Points(); !reflect.DeepEqual(got, []geom.Point{geom.Pt(5, 5)}) {
		t.Fatalf("after first begin: Points = %v", got)
	}

	tt.Handle(ev(2, touch.TypeBegin, 10, 10))
	if got := tr.ContactCount(); got != 2 {
		t.Fatalf("ContactCount = %d, want 2", got)
	}

	// moving the first finger keeps begin order
	tt.Handle(ev(1, touch.TypeMove, 6, 6))
	want := []geom.Point{geom.Pt(6, 6), geom.Pt(10, 10)}
	if got := tr.Points(); !reflect.DeepEqual(got, want) {
		t.Fatalf("after move: Points = %v, want %v", got, want)
	}

	// lifting the second finger leaves the first live
	tt.Handle(ev(2, touch.TypeEnd, 10, 10))
	if got := tr.Points(); !reflect.DeepEqual(got, []geom.Point{geom.Pt(6, 6)}) {
		t.Fatalf("after partial end: Points = %v", got)
	}

	// lifting the last finger freezes the snapshot
	tt.Handle(ev(1, touch.TypeEnd, 6, 6))
	if got := tr.ContactCount(); got != 0 {
		t.Fatalf("ContactCount = %d, want 0", got)
	}
	if got := tr.Points(); !reflect.DeepEqual(got, []geom.Point{geom.Pt(6, 6)}) {
		t.Fatalf("after full end: Points = %v", got)
	}
}

func TestTranslatorAdoptsUnknownMove(t *testing.T) {
	tr := state.NewTracker()
	tt := NewTouchTranslator(tr)

	// a move for a contact whose begin got lost still tracks
	tt.Handle(ev(7, touch.TypeMove, 3, 4))
	if got := tr.Points(); !reflect.DeepEqual(got, []geom.Point{geom.Pt(3, 4)}) {
		t.Errorf("Points = %v", got)
	}
}

func TestTranslatorCancel(t *testing.T) {
	tr := state.NewTracker()
	tt := NewTouchTranslator(tr)

	tt.Handle(ev(1, touch.TypeBegin, 1, 1))
	tt.Handle(ev(2, touch.TypeBegin, 2, 2))
	tt.Cancel()

	if got := tr.ContactCount(); got != 0 {
		t.Fatalf("ContactCount = %d, want 0", got)
	}
	// the snapshot survives the abort
	want := []geom.Point{geom.Pt(1, 1), geom.Pt(2, 2)}
	if got := tr.Points(); !reflect.DeepEqual(got, want) {
		t.Errorf("Points = %v, want %v", got, want)
	}

	// and the translator is reusable afterwards
	tt.Handle(ev(3, touch.TypeBegin, 9, 9))
	if got := tr.Points(); !reflect.DeepEqual(got, []geom.Point{geom.Pt(9, 9)}) {
		t.Errorf("Points after reuse = %v", got)
	}
}
