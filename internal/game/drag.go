package game

// dragTracker turns mouse button state into drag moves. Only presses that
// start above the control strip begin a drag, and a click without motion
// moves nothing.
type dragTracker struct {
	active       bool
	lastX, lastY int
}

// update reports whether the cursor moved during an active drag.
func (d *dragTracker) update(justPressed, pressed bool, x, y int, controlY float64) bool {
	if justPressed {
		d.active = float64(y) <= controlY
		d.lastX, d.lastY = x, y
		return false
	}
	if !pressed {
		d.active = false
		return false
	}
	if !d.active || (x == d.lastX && y == d.lastY) {
		return false
	}
	d.lastX, d.lastY = x, y
	return true
}
