package input

import "testing"

func TestResolve_PointerMove(t *testing.T) {
	var a Adapter

	f := a.Resolve(Raw{Cursor: Point{100, 50}})
	if f.Moved {
		t.Error("first frame should only seed the pointer")
	}

	f = a.Resolve(Raw{Cursor: Point{100, 50}})
	if f.Moved {
		t.Error("unchanged cursor reported as a move")
	}

	f = a.Resolve(Raw{Cursor: Point{240, 50}})
	if !f.Moved || f.X != 240 {
		t.Errorf("Frame = %+v, want move to 240", f)
	}
}

func TestResolve_TouchMove(t *testing.T) {
	var a Adapter
	a.Resolve(Raw{})

	f := a.Resolve(Raw{Touches: []Point{{300, 500}}})
	if f.Moved {
		t.Error("touch start alone should not move the turret")
	}
	f = a.Resolve(Raw{Touches: []Point{{320, 500}}})
	if !f.Moved || f.X != 320 {
		t.Errorf("Frame = %+v, want move to 320", f)
	}

	a.Resolve(Raw{})
	f = a.Resolve(Raw{Touches: []Point{{10, 10}}})
	if f.Moved {
		t.Error("a new touch should not inherit the old one's position")
	}
}

func TestResolve_Trigger(t *testing.T) {
	var a Adapter
	a.Resolve(Raw{})

	f := a.Resolve(Raw{Cursor: Point{5, 6}, MousePressed: true})
	if !f.Trigger || f.Press != (Point{5, 6}) {
		t.Errorf("click: Frame = %+v", f)
	}

	f = a.Resolve(Raw{Cursor: Point{5, 6}, FireKey: true})
	if !f.Trigger || f.Press != (Point{5, 6}) {
		t.Errorf("key: Frame = %+v", f)
	}

	f = a.Resolve(Raw{Confirm: true})
	if f.Trigger || !f.Confirm {
		t.Errorf("confirm: Frame = %+v", f)
	}
}

func TestResolve_TouchSuppressesClick(t *testing.T) {
	var a Adapter
	a.Resolve(Raw{})

	f := a.Resolve(Raw{TouchStarted: []Point{{40, 41}}, Touches: []Point{{40, 41}}})
	if !f.Trigger || f.Press != (Point{40, 41}) {
		t.Fatalf("touch: Frame = %+v", f)
	}

	// the synthetic click that follows the tap
	for i := 0; i < ClickSuppressTicks-1; i++ {
		if f := a.Resolve(Raw{MousePressed: true}); f.Trigger {
			t.Fatalf("click %d after touch fired", i)
		}
	}
	if f := a.Resolve(Raw{MousePressed: true}); !f.Trigger {
		t.Error("click after the suppression window should fire")
	}
}
