package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrameSetHas(t *testing.T) {
	f := NewInputFrame(ActionLeft)

	assert.True(t, f.Has(ActionLeft))
	assert.False(t, f.Has(ActionRight))
	assert.False(t, f.Has(ActionNone))

	f.Set(ActionRight)
	assert.True(t, f.Has(ActionLeft))
	assert.True(t, f.Has(ActionRight))

	f.Clear()
	assert.True(t, f.Empty())
}

func TestInputFrameMaskRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		actions []Action
	}{
		{"empty", nil},
		{"left", []Action{ActionLeft}},
		{"both directions", []Action{ActionLeft, ActionRight}},
		{"restart", []Action{ActionRestart}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame(tc.actions...)
			assert.Equal(t, f, FrameFromMask(f.Mask()))
		})
	}
}

func TestInputFrameMaskDropsQuit(t *testing.T) {
	f := NewInputFrame(ActionQuit, ActionRight)

	decoded := FrameFromMask(f.Mask())
	assert.False(t, decoded.Has(ActionQuit))
	assert.True(t, decoded.Has(ActionRight))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Left", ActionLeft.String())
	assert.Equal(t, "Restart", ActionRestart.String())
	assert.Equal(t, "Unknown", Action(99).String())
}
