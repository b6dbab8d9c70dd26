package wave

const (
	// OffsetStep is the scroll advance per frame in pixels.
	OffsetStep = 2.0
	// BlendStep is the per-frame decay of the transition progress.
	BlendStep = 0.005

	// DefaultWidth and DefaultHeight stand in until the host reports its size.
	DefaultWidth  = 800.0
	DefaultHeight = 300.0

	blendEpsilon = 1e-9
)

// Phase is the transition phase of the animation.
type Phase uint8

const (
	Settled Phase = iota
	Active
)

func (p Phase) String() string {
	if p == Active {
		return "active"
	}
	return "settled"
}

// State is the per-frame animation state. The zero value is a settled
// baseline at offset 0.
type State struct {
	Offset float64
	Blend  float64
	Prev   Pattern
}

// Frame is what a single frame should draw.
type Frame struct {
	Pattern Pattern
	Offset  float64
	Blend   float64
}

// Phase reports the phase the frame is drawn in.
func (f Frame) Phase() Phase {
	if f.Pattern.IsBaseline() || f.Blend <= 0 {
		return Settled
	}
	return Active
}

// Points generates the frame's curve for the given viewport.
func (f Frame) Points(width, height float64) []Point {
	return Generate(f.Pattern, f.Offset, width, height, f.Blend)
}

// Next applies one frame of animation. A change of selected pattern resets
// blend to 1 before the frame is produced; offset and blend advance after it.
func (s State) Next(selected Pattern, width float64) (State, Frame) {
	if selected != s.Prev {
		s.Blend = 1
		s.Prev = selected
	}
	f := Frame{Pattern: selected, Offset: s.Offset, Blend: s.Blend}

	if width <= 0 {
		width = DefaultWidth
	}
	s.Offset = wrap(s.Offset+OffsetStep, width)

	s.Blend -= BlendStep
	if s.Blend < blendEpsilon {
		s.Blend = 0
	}
	return s, f
}

// Phase reports the phase of the state as of the last frame.
func (s State) Phase() Phase {
	if s.Prev.IsBaseline() || s.Blend <= 0 {
		return Settled
	}
	return Active
}

// Driver owns an animation state and a viewport. It is not safe for
// concurrent use; hosts call it from their frame callback.
type Driver struct {
	state  State
	last   Frame
	width  float64
	height float64
}

// NewDriver creates a driver showing the given pattern at full strength.
func NewDriver(initial Pattern) *Driver {
	d := &Driver{width: DefaultWidth, height: DefaultHeight}
	d.state.Prev = initial
	if !initial.IsBaseline() {
		d.state.Blend = 1
	}
	d.last = Frame{Pattern: initial, Blend: d.state.Blend}
	return d
}

// Resize records a new viewport. Non-positive dimensions are ignored so the
// previous (or default) measurement stays in effect.
func (d *Driver) Resize(width, height float64) {
	if width > 0 {
		d.width = width
	}
	if height > 0 {
		d.height = height
	}
}

// Size returns the viewport used for generation.
func (d *Driver) Size() (width, height float64) {
	return d.width, d.height
}

// Frame advances one frame with the given selection and returns its curve.
func (d *Driver) Frame(selected Pattern) []Point {
	d.state, d.last = d.state.Next(selected, d.width)
	return d.last.Points(d.width, d.height)
}

// Last returns the most recently drawn frame.
func (d *Driver) Last() Frame { return d.last }

// State returns the state the next frame will start from.
func (d *Driver) State() State { return d.state }

// Phase reports the phase of the most recent frame.
func (d *Driver) Phase() Phase { return d.last.Phase() }

// Reset clears the state back to a settled baseline at offset 0.
func (d *Driver) Reset() {
	d.state = State{}
	d.last = Frame{}
}
