package camera

import "github.com/vovakirdan/tui-sweeper/internal/core"

// DefaultDragThreshold is the squared pixel distance a held pointer must
// travel before the press turns into a drag.
const DefaultDragThreshold = 25.0

// Target receives the clicks the controller resolves to grid cells.
type Target interface {
	// Open is a primary click: reveal a covered cell or chord a revealed one.
	Open(x, y int)
	// Flag is a secondary click.
	Flag(x, y int)
	// Chord is a middle click.
	Chord(x, y int)
}

// Session is the state of one held button.
type Session struct {
	StartCursor      core.Vec2
	StartWorld       core.Vec2
	StartTranslation core.Vec2
	StartScale       float64
	Dragging         bool
}

// Controller turns raw pointer events into camera moves and cell clicks.
// Each button has its own session; only the primary button pans.
type Controller struct {
	view      *Viewport
	target    Target
	threshold float64

	cursor   core.Vec2
	sessions [4]*Session // indexed by core.PointerButton
}

// NewController creates a controller over view that reports clicks to
// target. A non-positive threshold selects DefaultDragThreshold.
func NewController(view *Viewport, target Target, threshold float64) *Controller {
	if threshold <= 0 {
		threshold = DefaultDragThreshold
	}
	return &Controller{view: view, target: target, threshold: threshold}
}

// Cursor returns the last known pointer position.
func (c *Controller) Cursor() core.Vec2 { return c.cursor }

// Session returns the active session of b, or nil when b is not held.
func (c *Controller) Session(b core.PointerButton) *Session {
	if int(b) >= len(c.sessions) {
		return nil
	}
	return c.sessions[b]
}

// Dragging reports whether the primary button is panning the view.
func (c *Controller) Dragging() bool {
	s := c.sessions[core.ButtonPrimary]
	return s != nil && s.Dragging
}

// Reset drops every active session.
func (c *Controller) Reset() {
	c.sessions = [4]*Session{}
}

// Handle dispatches one raw pointer event.
func (c *Controller) Handle(ev core.PointerEvent) {
	pos := core.V(ev.X, ev.Y)
	switch ev.Kind {
	case core.PointerPress:
		c.Press(ev.Button, pos)
	case core.PointerMove:
		c.Move(pos)
	case core.PointerRelease:
		c.Release(ev.Button, pos)
	case core.PointerScroll:
		c.Scroll(ev.Delta, pos)
	}
}

// Press arms a session for b at pos. A primary press is ignored while the
// secondary button is held.
func (c *Controller) Press(b core.PointerButton, pos core.Vec2) {
	c.cursor = pos
	if b == core.ButtonNone || int(b) >= len(c.sessions) {
		return
	}
	if b == core.ButtonPrimary && c.sessions[core.ButtonSecondary] != nil {
		return
	}
	c.sessions[b] = &Session{
		StartCursor:      pos,
		StartWorld:       c.view.ScreenToWorld(pos),
		StartTranslation: c.view.Translation(),
		StartScale:       c.view.Scale(),
	}
}

// Move updates the cursor. A held button that travels past the threshold
// starts dragging and stays dragging until released; a primary drag pans.
func (c *Controller) Move(pos core.Vec2) {
	c.cursor = pos
	for b, s := range c.sessions {
		if s == nil {
			continue
		}
		if !s.Dragging && pos.Sub(s.StartCursor).LengthSquared() >= c.threshold {
			s.Dragging = true
		}
		if s.Dragging && core.PointerButton(b) == core.ButtonPrimary {
			c.view.SetTranslation(s.dragTranslation(pos))
		}
	}
}

// dragTranslation keeps the world point grabbed at press under pos, using
// the camera as it was when the press began.
func (s *Session) dragTranslation(pos core.Vec2) core.Vec2 {
	world := s.StartWorld.Add(pos.Sub(s.StartCursor).Scale(s.StartScale))
	return s.StartTranslation.Sub(world.Sub(s.StartWorld))
}

// Release ends the session of b, reporting a click when it never dragged.
// ButtonNone ends every active session.
func (c *Controller) Release(b core.PointerButton, pos core.Vec2) {
	c.Move(pos)
	if b == core.ButtonNone {
		for other := core.ButtonPrimary; int(other) < len(c.sessions); other++ {
			c.release(other, pos)
		}
		return
	}
	if int(b) < len(c.sessions) {
		c.release(b, pos)
	}
}

func (c *Controller) release(b core.PointerButton, pos core.Vec2) {
	s := c.sessions[b]
	if s == nil {
		return
	}
	c.sessions[b] = nil
	if s.Dragging {
		return
	}

	x, y, ok := c.view.CellAt(pos)
	if !ok || c.target == nil {
		return
	}
	switch b {
	case core.ButtonPrimary:
		c.target.Open(x, y)
	case core.ButtonSecondary:
		c.target.Flag(x, y)
	case core.ButtonMiddle:
		c.target.Chord(x, y)
	}
}

// Scroll zooms about pos. It does not touch button sessions.
func (c *Controller) Scroll(delta float64, pos core.Vec2) {
	c.cursor = pos
	if delta == 0 {
		return
	}
	c.view.Scroll(pos, delta)
}
