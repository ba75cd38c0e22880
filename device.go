package worldui

import "github.com/hajimehoshi/ebiten/v2"

// MousePointer reads the system mouse through ebiten. It must be polled from
// within the ebiten game loop (Game.Update).
type MousePointer struct {
	// Button is the button treated as the primary button.
	Button ebiten.MouseButton
}

// NewMousePointer returns a MousePointer bound to the left mouse button.
func NewMousePointer() *MousePointer {
	return &MousePointer{Button: ebiten.MouseButtonLeft}
}

// Poll implements Pointer.
func (m *MousePointer) Poll() PointerState {
	mx, my := ebiten.CursorPosition()
	wx, wy := ebiten.Wheel()
	return PointerState{
		Position: Vec2{float32(mx), float32(my)},
		Scroll:   Vec2{float32(wx), float32(wy)},
		Held:     ebiten.IsMouseButtonPressed(m.Button),
	}
}
