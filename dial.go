package fandial

// Dial is the fan-speed selector widget core. It owns the selected
// speed, the cached disc radius, and the derived description used by
// accessibility narration. All mutation goes through Resize and
// Activate; Render is a pure read. A Dial is driven synchronously by a
// single host event loop and is not safe for concurrent use.
type Dial struct {
	config  Config
	speed   Speed
	radius  float64
	width   float64
	height  float64
	a11y    Accessibility
	repaint func()
}

// New constructs a dial in the off state. The radius stays zero until
// the host reports bounds via Resize, which it must do at least once
// before the first Render.
func New(config Config) *Dial {
	d := &Dial{config: config}
	d.refreshAccessibility()
	return d
}

// Resize recomputes the cached disc radius from the widget's allocated
// pixel bounds. The host calls this whenever bounds change.
func (d *Dial) Resize(width, height float64) {
	d.width = width
	d.height = height
	d.radius = ComputeRadius(width, height)
}

// Activate advances the dial to the next speed, refreshes the derived
// description, and requests a repaint. It reports the activation as
// consumed, which is always true: when the host's base dispatch has
// already handled the event (alreadyHandled), the dial leaves its
// state untouched and still returns true.
func (d *Dial) Activate(alreadyHandled bool) bool {
	if alreadyHandled {
		return true
	}
	d.speed = d.speed.Next()
	d.refreshAccessibility()
	if d.repaint != nil {
		d.repaint()
	}
	return true
}

// OnRepaint registers the host's repaint hook. The hook fires exactly
// once per effective activation; the host may coalesce paints but must
// not drop them.
func (d *Dial) OnRepaint(fn func()) {
	d.repaint = fn
}

// Speed returns the currently selected speed.
func (d *Dial) Speed() Speed {
	return d.speed
}

// Radius returns the cached disc radius (zero before the first Resize).
func (d *Dial) Radius() float64 {
	return d.radius
}

// Center returns the disc center, the midpoint of the last reported
// bounds.
func (d *Dial) Center() (x, y float64) {
	return d.width / 2, d.height / 2
}

// Contains reports whether the point lies on the disc. Host input
// dispatchers can use it to decide that a pointer event targets the
// dial before calling Activate.
func (d *Dial) Contains(x, y float64) bool {
	cx, cy := d.Center()
	dx := x - cx
	dy := y - cy
	return dx*dx+dy*dy <= d.radius*d.radius
}

// FillColor returns the disc color for the current speed: fixed gray
// when off, otherwise the configured color for the speed.
func (d *Dial) FillColor() Color {
	switch d.speed {
	case SpeedLow:
		return d.config.LowColor
	case SpeedMedium:
		return d.config.MediumColor
	case SpeedHigh:
		return d.config.HighColor
	default:
		return OffColor
	}
}
