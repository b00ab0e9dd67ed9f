// Package input turns raw pointer, touch and key state into the two gameplay
// intents: move the turret and pull the trigger.
package input

// ClickSuppressTicks is how long mouse presses are ignored after a touch starts,
// so the click a browser synthesises from the same tap does not fire twice.
const ClickSuppressTicks = 30

type Point struct{ X, Y float64 }

// Raw is what the frontend saw this tick.
type Raw struct {
	Cursor       Point
	MousePressed bool    // left button went down this tick
	Touches      []Point // active touches
	TouchStarted []Point // touches that began this tick
	FireKey      bool
	Confirm      bool
}

// Frame is one tick's resolved intent.
type Frame struct {
	X       float64
	Moved   bool
	Trigger bool
	Press   Point // where the trigger happened
	Confirm bool
}

type Adapter struct {
	pointer  Point
	touch    Point
	touching bool
	started  bool
	suppress int
}

func (a *Adapter) Resolve(r Raw) Frame {
	var f Frame

	if !a.started || r.Cursor != a.pointer {
		if a.started {
			f.X, f.Moved = r.Cursor.X, true
		}
		a.pointer = r.Cursor
		a.started = true
	}

	if len(r.Touches) > 0 {
		t := r.Touches[0]
		if a.touching && t != a.touch {
			f.X, f.Moved = t.X, true
		}
		a.touch, a.touching = t, true
	} else {
		a.touching = false
	}

	if a.suppress > 0 {
		a.suppress--
	}

	switch {
	case len(r.TouchStarted) > 0:
		f.Trigger = true
		f.Press = r.TouchStarted[0]
		a.suppress = ClickSuppressTicks
	case r.MousePressed && a.suppress == 0:
		f.Trigger = true
		f.Press = r.Cursor
	case r.FireKey:
		f.Trigger = true
		f.Press = a.pointer
	}
	f.Confirm = r.Confirm
	return f
}
