package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionUndo)
	f.SelectSlot(3)
	f.AddPointer(PointerEvent{Kind: PointerPress, X: 4, Y: 5})

	if !f.Has(ActionUndo) {
		t.Error("Has(ActionUndo) should be true after Set")
	}
	if f.Has(ActionRedo) {
		t.Error("Has(ActionRedo) should be false")
	}
	if f.Empty() {
		t.Error("frame with input should not be empty")
	}

	f.Clear()
	if !f.Empty() {
		t.Errorf("frame should be empty after Clear, got %+v", f)
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionJump)
	if !f.Has(ActionJump) {
		t.Error("Set should work on a zero frame")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionConfirm)
	f.AddPointer(PointerEvent{Kind: PointerMotion, X: 1, Y: 1})

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionConfirm) {
		t.Error("clone should keep actions after the original is cleared")
	}
	if len(clone.Pointers) != 1 {
		t.Errorf("clone should keep pointer events, got %d", len(clone.Pointers))
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleMode.String() != "ToggleMode" {
		t.Errorf("unexpected name %q", ActionToggleMode.String())
	}
	if Action(999).String() != "Unknown" {
		t.Error("unknown action should stringify as Unknown")
	}
}
