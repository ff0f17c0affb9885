package state

import (
	"reflect"
	"testing"

	"TouchScope/internal/geom"
)

func pts(ps ...geom.Point) []geom.Point {
	if len(ps) == 0 {
		return []geom.Point{}
	}
	return ps
}

func TestContactsChangedResyncsWholesale(t *testing.T) {
	tr := NewTracker()

	tr.ContactsChanged([]Contact{{ID: 1, Pos: geom.Pt(5, 5)}, {ID: 2, Pos: geom.Pt(10, 10)}})
	if got := tr.ContactCount(); got != 2 {
		t.Fatalf("ContactCount = %d, want 2", got)
	}
	if got := tr.Points(); !reflect.DeepEqual(got, pts(geom.Pt(5, 5), geom.Pt(10, 10))) {
		t.Errorf("Points = %v", got)
	}

	// a later event with a different contact list wins outright
	tr.ContactsChanged([]Contact{{ID: 2, Pos: geom.Pt(11, 11)}, {ID: 3, Pos: geom.Pt(20, 20)}})
	if got := tr.Points(); !reflect.DeepEqual(got, pts(geom.Pt(11, 11), geom.Pt(20, 20))) {
		t.Errorf("Points after resync = %v", got)
	}
	// the snapshot mirrors the live set while it is non empty
	if got := tr.Snapshot(); !reflect.DeepEqual(got, pts(geom.Pt(11, 11), geom.Pt(20, 20))) {
		t.Errorf("Snapshot = %v", got)
	}
}

func TestContactsEndedFreezesSnapshot(t *testing.T) {
	tr := NewTracker()
	tr.ContactsChanged([]Contact{{ID: 1, Pos: geom.Pt(5, 5)}})

	tr.ContactsEnded(nil)
	if got := tr.ContactCount(); got != 0 {
		t.Fatalf("ContactCount = %d, want 0", got)
	}
	// render falls back to the frozen snapshot
	if got := tr.Points(); !reflect.DeepEqual(got, pts(geom.Pt(5, 5))) {
		t.Errorf("Points after all ended = %v", got)
	}

	tr.ContactsChanged([]Contact{{ID: 1, Pos: geom.Pt(30, 40)}, {ID: 2, Pos: geom.Pt(50, 60)}})
	tr.ContactsEnded(nil)
	if got := tr.Points(); !reflect.DeepEqual(got, pts(geom.Pt(30, 40), geom.Pt(50, 60))) {
		t.Errorf("Points after second gesture ended = %v", got)
	}
}

func TestContactsEndedPartial(t *testing.T) {
	tr := NewTracker()
	tr.ContactsChanged([]Contact{{ID: 1, Pos: geom.Pt(1, 1)}, {ID: 2, Pos: geom.Pt(2, 2)}})

	tr.ContactsEnded([]Contact{{ID: 2, Pos: geom.Pt(3, 3)}})
	if got := tr.ContactCount(); got != 1 {
		t.Fatalf("ContactCount = %d, want 1", got)
	}
	// the survivor carries its position from the end event
	if got := tr.Points(); !reflect.DeepEqual(got, pts(geom.Pt(3, 3))) {
		t.Errorf("Points = %v", got)
	}
}

func TestContactsCancelledKeepsSnapshot(t *testing.T) {
	tr := NewTracker()
	tr.ContactsChanged([]Contact{{ID: 1, Pos: geom.Pt(7, 8)}})

	tr.ContactsCancelled()
	if got := tr.ContactCount(); got != 0 {
		t.Fatalf("ContactCount = %d, want 0", got)
	}
	if got := tr.Points(); !reflect.DeepEqual(got, pts(geom.Pt(7, 8))) {
		t.Errorf("Points after cancel = %v", got)
	}
}

func TestPointerEmulation(t *testing.T) {
	tr := NewTracker()

	tr.PointerDown(geom.Pt(3, 4))
	if !tr.Pressed() {
		t.Fatal("Pressed = false after PointerDown")
	}
	if got := tr.Points(); !reflect.DeepEqual(got, pts(geom.Pt(3, 4))) {
		t.Errorf("Points = %v", got)
	}

	tr.PointerDragged(geom.Pt(5, 6))
	if got := tr.Points(); !reflect.DeepEqual(got, pts(geom.Pt(5, 6))) {
		t.Errorf("Points after drag = %v", got)
	}

	tr.PointerUp()
	if tr.Pressed() {
		t.Fatal("Pressed = true after PointerUp")
	}
	// the released position stays visible
	if got := tr.Points(); !reflect.DeepEqual(got, pts(geom.Pt(5, 6))) {
		t.Errorf("Points after release = %v", got)
	}

	// drags without the button down are ignored
	tr.PointerDragged(geom.Pt(99, 99))
	if got := tr.Points(); !reflect.DeepEqual(got, pts(geom.Pt(5, 6))) {
		t.Errorf("Points after stray drag = %v", got)
	}
}

func TestReset(t *testing.T) {
	tr := NewTracker()
	tr.ContactsChanged([]Contact{{ID: 1, Pos: geom.Pt(1, 2)}})
	tr.PointerDown(geom.Pt(3, 4))

	tr.Reset()
	if got := tr.ContactCount(); got != 0 {
		t.Errorf("ContactCount = %d, want 0", got)
	}
	if got := tr.Points(); len(got) != 0 {
		t.Errorf("Points = %v, want empty", got)
	}
	if tr.Pressed() {
		t.Error("Pressed = true after Reset")
	}
}

func TestOnChangeFires(t *testing.T) {
	tr := NewTracker()
	fired := 0
	tr.OnChange = func() { fired++ }

	vs := []struct {
		name string
		op   func()
		want int
	}{
		{"ContactsChanged", func() { tr.ContactsChanged([]Contact{{ID: 1, Pos: geom.Pt(1, 1)}}) }, 1},
		{"ContactsEnded", func() { tr.ContactsEnded(nil) }, 1},
		{"ContactsCancelled", func() { tr.ContactsCancelled() }, 1},
		{"PointerDown", func() { tr.PointerDown(geom.Pt(2, 2)) }, 1},
		{"PointerDragged", func() { tr.PointerDragged(geom.Pt(3, 3)) }, 1},
		{"PointerUp", func() { tr.PointerUp() }, 0},
		{"ignored drag", func() { tr.PointerDragged(geom.Pt(4, 4)) }, 0},
		{"Reset", func() { tr.Reset() }, 1},
	}
	for _, v := range vs {
		fired = 0
		v.op()
		if fired != v.want {
			t.Errorf("%s fired OnChange %d time(s), want %d", v.name, fired, v.want)
		}
	}
}

func TestTrackerDoesNotAliasCallerSlice(t *testing.T) {
	tr := NewTracker()
	raw := []Contact{{ID: 1, Pos: geom.Pt(1, 1)}}
	tr.ContactsChanged(raw)

	// event buffers get reused by frontends between frames
	raw[0].Pos = geom.Pt(42, 42)
	if got := tr.Points(); !reflect.DeepEqual(got, pts(geom.Pt(1, 1))) {
		t.Errorf("Points = %v, tracker aliased the caller's slice", got)
	}
}
