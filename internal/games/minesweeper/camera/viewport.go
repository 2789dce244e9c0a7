// Package camera maps between screen pixels and board world units, keeps
// pan and zoom inside limits derived from the board and window sizes, and
// turns raw pointer events into clicks, drags and zooms.
package camera

import (
	"math"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Limits holds the tunables of the viewport clamp.
type Limits struct {
	MinView    float64 // smallest visible world span per axis
	FitMargin  float64 // extra world units allowed around the board when fully zoomed out
	EdgeMargin float64 // how far past the board edge the view may pan
	ZoomStep   float64 // scale factor per scroll unit
}

// DefaultLimits returns the standard clamp tunables.
func DefaultLimits() Limits {
	return Limits{
		MinView:    3,
		FitMargin:  0.5,
		EdgeMargin: 0.25,
		ZoomStep:   1.2,
	}
}

// Range is a closed interval.
type Range struct {
	Min, Max float64
}

// Clamp restricts v to the range.
func (r Range) Clamp(v float64) float64 {
	return core.ClampF(v, r.Min, r.Max)
}

// Contains reports whether v lies in the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Viewport is an orthographic camera over a board of Board world units,
// drawn into a window of Size pixels. Scale is world units per pixel and
// Translation is the world point at the window centre. World y grows
// downward, like grid rows.
type Viewport struct {
	limits Limits
	board  core.Vec2
	size   core.Vec2

	scale       float64
	translation core.Vec2

	scaleRange Range
	horizontal Range
	vertical   Range
}

// New creates a viewport fully zoomed out and centred on the board.
func New(board, size core.Vec2, limits Limits) *Viewport {
	v := &Viewport{
		limits:      limits,
		board:       board,
		size:        sanitizeSize(size),
		translation: board.Scale(0.5),
	}
	v.updateScaleRange()
	v.scale = v.scaleRange.Max
	v.updateTranslationRange()
	v.translation = v.clampTranslation(v.translation)
	return v
}

// sanitizeSize keeps both window dimensions at least one pixel.
func sanitizeSize(size core.Vec2) core.Vec2 {
	return core.V(math.Max(size.X, 1), math.Max(size.Y, 1))
}

// Scale returns world units per pixel.
func (v *Viewport) Scale() float64 { return v.scale }

// Translation returns the world point at the window centre.
func (v *Viewport) Translation() core.Vec2 { return v.translation }

// Size returns the window size in pixels.
func (v *Viewport) Size() core.Vec2 { return v.size }

// Board returns the board extent in world units.
func (v *Viewport) Board() core.Vec2 { return v.board }

// Limits returns the clamp tunables.
func (v *Viewport) Limits() Limits { return v.limits }

// ScaleRange returns the allowed scale interval.
func (v *Viewport) ScaleRange() Range { return v.scaleRange }

// TranslationRange returns the allowed centre intervals per axis.
func (v *Viewport) TranslationRange() (horizontal, vertical Range) {
	return v.horizontal, v.vertical
}

// The visible world span must stay between MinView and the board plus
// FitMargin; the binding axis is the one with the larger ratio.
func (v *Viewport) updateScaleRange() {
	minView := core.V(v.limits.MinView, v.limits.MinView)
	maxView := v.board.Add(core.V(v.limits.FitMargin, v.limits.FitMargin))
	v.scaleRange = Range{
		Min: minView.Div(v.size).MaxElement(),
		Max: maxView.Div(v.size).MaxElement(),
	}
}

// The window centre may travel until the view edge meets the board edge
// plus EdgeMargin. An axis whose range inverts is pinned to the board centre.
func (v *Viewport) updateTranslationRange() {
	m := v.limits.EdgeMargin
	halfView := v.size.Scale(v.scale / 2)
	lo := core.V(-m, -m).Add(halfView)
	hi := v.board.Add(core.V(m, m)).Sub(halfView)
	centre := v.board.Scale(0.5)

	v.horizontal = axisRange(lo.X, hi.X, centre.X)
	v.vertical = axisRange(lo.Y, hi.Y, centre.Y)
}

func axisRange(lo, hi, centre float64) Range {
	if lo > hi {
		return Range{Min: centre, Max: centre}
	}
	return Range{Min: lo, Max: hi}
}

func (v *Viewport) clampTranslation(t core.Vec2) core.Vec2 {
	return core.V(v.horizontal.Clamp(t.X), v.vertical.Clamp(t.Y))
}

// SetScale clamps s into the scale range, then re-derives the translation
// range and clamps the translation into it.
func (v *Viewport) SetScale(s float64) {
	v.scale = v.scaleRange.Clamp(s)
	v.updateTranslationRange()
	v.translation = v.clampTranslation(v.translation)
}

// SetTranslation clamps t into the current translation range.
func (v *Viewport) SetTranslation(t core.Vec2) {
	v.translation = v.clampTranslation(t)
}

// Pan moves the view by a world-space delta.
func (v *Viewport) Pan(delta core.Vec2) {
	v.SetTranslation(v.translation.Add(delta))
}

// Resize adapts the viewport to a new window size. Scale bounds are
// derived first because the translation bounds depend on the scale.
func (v *Viewport) Resize(size core.Vec2) {
	v.size = sanitizeSize(size)
	v.updateScaleRange()
	v.SetScale(v.scale)
}

// ScreenToWorld maps a window pixel to a world point.
func (v *Viewport) ScreenToWorld(p core.Vec2) core.Vec2 {
	return p.Sub(v.size.Scale(0.5)).Scale(v.scale).Add(v.translation)
}

// WorldToScreen maps a world point to a window pixel.
func (v *Viewport) WorldToScreen(w core.Vec2) core.Vec2 {
	return w.Sub(v.translation).Scale(1 / v.scale).Add(v.size.Scale(0.5))
}

// ZoomAt multiplies the scale by factor, clamped, and shifts the view so
// the world point under cursor stays under it.
func (v *Viewport) ZoomAt(cursor core.Vec2, factor float64) {
	anchor := v.ScreenToWorld(cursor)
	old := v.scale
	v.SetScale(old * factor)
	v.SetTranslation(anchor.Sub(anchor.Sub(v.translation).Scale(v.scale / old)))
}

// Scroll zooms by delta scroll units about cursor. Positive delta zooms in.
func (v *Viewport) Scroll(cursor core.Vec2, delta float64) {
	v.ZoomAt(cursor, math.Pow(v.limits.ZoomStep, -delta))
}

// ZoomCentre zooms by delta scroll units about the window centre.
func (v *Viewport) ZoomCentre(delta float64) {
	v.Scroll(v.size.Scale(0.5), delta)
}

// CellAt returns the grid cell under window pixel p. ok is false when the
// pixel falls outside the board.
func (v *Viewport) CellAt(p core.Vec2) (x, y int, ok bool) {
	w := v.ScreenToWorld(p)
	if w.X < 0 || w.Y < 0 || w.X >= v.board.X || w.Y >= v.board.Y {
		return 0, 0, false
	}
	x, y = w.Floor()
	return x, y, true
}

// State is a copy of the camera, used for snapshots.
type State struct {
	Scale       float64
	Translation core.Vec2
}

// State returns the current camera.
func (v *Viewport) State() State {
	return State{Scale: v.scale, Translation: v.translation}
}
