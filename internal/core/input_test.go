package core

import "testing"

func TestInputFrame(t *testing.T) {
	in := NewInputFrame()
	in.Press(KeySpace)
	in.Hold(KeyW)

	if !in.IsKeyDown(KeySpace) || !in.IsKeyPressed(KeySpace) {
		t.Error("pressed key should be down and pressed")
	}
	if !in.IsKeyDown(KeyW) || in.IsKeyPressed(KeyW) {
		t.Error("held key should be down but not pressed")
	}
	if !AnyDown(in, KeyA, KeyW) {
		t.Error("AnyDown should see W")
	}

	in.Clear()
	if in.IsKeyDown(KeyW) {
		t.Error("Clear should release all keys")
	}

	if DigitKey(0) != Key1 || DigitKey(8) != Key9 || DigitKey(9) != KeyNone {
		t.Error("DigitKey mapping is wrong")
	}
	if Key3.String() != "3" {
		t.Errorf("Key3.String() = %q", Key3.String())
	}
}
