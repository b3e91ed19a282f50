package editor

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/rowan"
)

// edgePanDist is the edge-pan activation band in pixels at a 1920-wide
// window; it scales with the actual window width.
const edgePanDist = 50

// keyPanSpeed is the per-update pan distance while a Pan* action is held.
const keyPanSpeed = 10

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the editor's view origin: the world position of the window's
// top-left corner. It pans when the cursor nears a window edge, ramping up
// the closer the cursor gets, and a held Pan* action overrides edge panning
// on its axis.
type Camera struct {
	X, Y float64

	scrollTween *scrollAnim
}

// WorldPos converts a window cursor position to world space.
func (c *Camera) WorldPos(cursorX, cursorY float64) rowan.Vec2 {
	return rowan.Vec2{X: c.X + cursorX, Y: c.Y + cursorY}
}

// Pan moves the camera one update step for the given cursor position and
// window size. Edge pan speed ramps from zero at the band's inner edge to
// the band width at the window border, divided by 10 per step; the band
// scales with window width so wider windows keep the same feel.
func (c *Camera) Pan(cursorX, cursorY, width, height float64, m *rowan.ButtonMapping[Action], in *rowan.InputState) {
	maxEdge := edgePanDist / 1920.0 * width
	moveX := panSpeedSigned(cursorX, width, maxEdge) / 10
	moveY := panSpeedSigned(cursorY, height, maxEdge) / 10

	updateMoveAxis(&moveX, PanRight, PanLeft, m, in)
	updateMoveAxis(&moveY, PanDown, PanUp, m, in)

	c.X += moveX
	c.Y += moveY
}

// ScrollTo animates the camera to the given world position over duration
// seconds. Any pan during the animation is kept; the tween only drives the
// axes it owns until it finishes.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in flight.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// Update advances the scroll animation by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.scrollTween == nil {
		return
	}
	if !c.scrollTween.doneX {
		val, done := c.scrollTween.tweenX.Update(dt)
		c.X = float64(val)
		c.scrollTween.doneX = done
	}
	if !c.scrollTween.doneY {
		val, done := c.scrollTween.tweenY.Update(dt)
		c.Y = float64(val)
		c.scrollTween.doneY = done
	}
	if c.scrollTween.doneX && c.scrollTween.doneY {
		c.scrollTween = nil
	}
}

// edgeDist is the cursor's distance to the nearer window border on one axis.
func edgeDist(pos, size float64) float64 {
	if pos > size/2 {
		return size - pos
	}
	return pos
}

// panSpeed ramps from 0 at the band's inner edge to maxEdge at the border.
func panSpeed(pos, size, maxEdge float64) float64 {
	if d := edgeDist(pos, size); d < maxEdge {
		return maxEdge - d
	}
	return 0
}

// panSpeedSigned is panSpeed pointed away from the window center.
func panSpeedSigned(pos, size, maxEdge float64) float64 {
	speed := panSpeed(pos, size, maxEdge)
	if pos > size/2 {
		return speed
	}
	return -speed
}

// updateMoveAxis lets a held Pan* action drive an axis the edge pan left
// idle. Edge panning wins when both are active.
func updateMoveAxis(moveAxis *float64, positive, negative Action, m *rowan.ButtonMapping[Action], in *rowan.InputState) {
	if *moveAxis != 0 {
		return
	}
	if m.Pressed(positive, in) {
		*moveAxis += keyPanSpeed
	}
	if m.Pressed(negative, in) {
		*moveAxis -= keyPanSpeed
	}
}
