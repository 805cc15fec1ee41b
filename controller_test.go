package texviewer

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestControllerDispatch(t *testing.T) {

	controller := NewController()

	// No handlers set; nothing should happen
	controller.DispatchMouseButton(ebiten.MouseButtonLeft, ActionPress)
	controller.DispatchScroll(0, 1)
	controller.DispatchKey(ebiten.KeySpace, ActionPress)
	controller.DispatchCursorPos(10, 20)

	events := []string{}

	controller.OnMouseButton = func(button ebiten.MouseButton, action Action) {
		events = append(events, "button "+action.String())
	}
	controller.OnScroll = func(xOffset, yOffset float64) {
		if yOffset < 0 {
			events = append(events, "scroll down")
		} else {
			events = append(events, "scroll up")
		}
	}
	controller.OnKey = func(key ebiten.Key, action Action) {
		events = append(events, key.String()+" "+action.String())
	}
	controller.OnCursorPos = func(x, y float64) {
		if x == 10 && y == 20 {
			events = append(events, "cursor")
		}
	}

	controller.DispatchMouseButton(ebiten.MouseButtonLeft, ActionPress)
	controller.DispatchCursorPos(10, 20)
	controller.DispatchMouseButton(ebiten.MouseButtonLeft, ActionRelease)
	controller.DispatchScroll(0, -1)
	controller.DispatchKey(ebiten.KeySpace, ActionRepeat)

	expected := []string{"button Press", "cursor", "button Release", "scroll down", "Space Repeat"}

	if len(events) != len(expected) {
		t.Fatalf("expected events %v, got %v", expected, events)
	}

	for i := range expected {
		if events[i] != expected[i] {
			t.Fatalf("expected events %v, got %v", expected, events)
		}
	}

}

func TestKeyAction(t *testing.T) {

	tests := []struct {
		held   int
		action Action
		ok     bool
	}{
		{0, ActionRelease, false},
		{1, ActionPress, true},
		{2, ActionRelease, false},
		{KeyRepeatDelay, ActionRelease, false},
		{KeyRepeatDelay + 1, ActionRelease, false},
		{KeyRepeatDelay + KeyRepeatInterval, ActionRepeat, true},
		{KeyRepeatDelay + KeyRepeatInterval + 1, ActionRelease, false},
		{KeyRepeatDelay + KeyRepeatInterval*10, ActionRepeat, true},
	}

	for _, test := range tests {
		action, ok := keyAction(test.held)
		if ok != test.ok || (ok && action != test.action) {
			t.Fatalf("held for %d ticks: expected %v (%v), got %v (%v)", test.held, test.action, test.ok, action, ok)
		}
	}

}
