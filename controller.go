package texviewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Action describes what happened to a key or mouse button.
type Action int

const (
	ActionRelease Action = iota // The key or button was let go
	ActionPress                 // The key or button was pressed this tick
	ActionRepeat                // The key is being held down and has auto-repeated
)

func (action Action) String() string {
	switch action {
	case ActionRelease:
		return "Release"
	case ActionPress:
		return "Press"
	case ActionRepeat:
		return "Repeat"
	}
	return "Unknown"
}

const (
	// KeyRepeatDelay is how many ticks a key has to be held before it starts repeating.
	KeyRepeatDelay = 30
	// KeyRepeatInterval is how many ticks pass between repeats of a held key.
	KeyRepeatInterval = 3
)

// A Controller turns Ebitengine's polled input into callbacks. Set the handlers you're interested in, then call
// Poll once per Update; handlers left nil are skipped. Each Controller is independent, so it can be passed to
// whatever owns the state the handlers change instead of living in a global.
type Controller struct {
	OnMouseButton func(button ebiten.MouseButton, action Action)
	OnScroll      func(xOffset, yOffset float64)
	OnKey         func(key ebiten.Key, action Action)
	OnCursorPos   func(x, y float64)

	lastCursorX, lastCursorY int
	cursorKnown              bool

	keys    []ebiten.Key
	buttons []ebiten.MouseButton
}

// NewController creates a new Controller with no handlers set.
func NewController() *Controller {
	return &Controller{
		buttons: []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonRight, ebiten.MouseButtonMiddle},
	}
}

// DispatchMouseButton calls the mouse button handler, if set.
func (c *Controller) DispatchMouseButton(button ebiten.MouseButton, action Action) {
	if c.OnMouseButton != nil {
		c.OnMouseButton(button, action)
	}
}

// DispatchScroll calls the scroll handler, if set.
func (c *Controller) DispatchScroll(xOffset, yOffset float64) {
	if c.OnScroll != nil {
		c.OnScroll(xOffset, yOffset)
	}
}

// DispatchKey calls the key handler, if set.
func (c *Controller) DispatchKey(key ebiten.Key, action Action) {
	if c.OnKey != nil {
		c.OnKey(key, action)
	}
}

// DispatchCursorPos calls the cursor position handler, if set.
func (c *Controller) DispatchCursorPos(x, y float64) {
	if c.OnCursorPos != nil {
		c.OnCursorPos(x, y)
	}
}

// keyAction works out which Action, if any, a key held for the given number of ticks should report.
func keyAction(heldDuration int) (Action, bool) {
	if heldDuration == 1 {
		return ActionPress, true
	}
	if heldDuration > KeyRepeatDelay && (heldDuration-KeyRepeatDelay)%KeyRepeatInterval == 0 {
		return ActionRepeat, true
	}
	return ActionRelease, false
}

// Poll reads this tick's input from Ebitengine and dispatches it. Mouse buttons are dispatched before cursor
// movement, so a handler that starts dragging on press sees the cursor position of the same tick afterwards.
func (c *Controller) Poll() {

	for _, button := range c.buttons {
		if inpututil.IsMouseButtonJustPressed(button) {
			c.DispatchMouseButton(button, ActionPress)
		} else if inpututil.IsMouseButtonJustReleased(button) {
			c.DispatchMouseButton(button, ActionRelease)
		}
	}

	if x, y := ebiten.Wheel(); x != 0 || y != 0 {
		c.DispatchScroll(x, y)
	}

	c.keys = inpututil.AppendPressedKeys(c.keys[:0])
	for _, key := range c.keys {
		if action, ok := keyAction(inpututil.KeyPressDuration(key)); ok {
			c.DispatchKey(key, action)
		}
	}

	c.keys = inpututil.AppendJustReleasedKeys(c.keys[:0])
	for _, key := range c.keys {
		c.DispatchKey(key, ActionRelease)
	}

	cx, cy := ebiten.CursorPosition()
	if !c.cursorKnown || cx != c.lastCursorX || cy != c.lastCursorY {
		c.lastCursorX, c.lastCursorY = cx, cy
		c.cursorKnown = true
		c.DispatchCursorPos(float64(cx), float64(cy))
	}

}
