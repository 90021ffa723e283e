/*
Copyright (c) 2019-2021 Andreas T Jonsson

This software is provided 'as-is', without any express or implied
warranty. In no event will the authors be held liable for any damages
arising from the use of this software.

Permission is granted to anyone to use this software for any purpose,
including commercial applications, and to alter it and redistribute it
freely, subject to the following restrictions:

1. The origin of this software must not be misrepresented; you must not
   claim that you wrote the original software. If you use this software
   in a product, an acknowledgment in the product documentation would be
   appreciated but is not required.
2. Altered source versions must be plainly marked as such, and must not be
   misrepresented as being the original software.
3. This notice may not be removed or altered from any source distribution.
*/

package processor

import (
	"errors"
	"testing"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/retroenv/retrogolib/assert"
)

func TestStack(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		var s Stack
		for i := 0; i < StackSize; i++ {
			assert.NoError(t, s.Push(memory.Address(0x200+i*2)))
		}
		assert.Equal(t, StackSize, s.Len())

		for i := StackSize - 1; i >= 0; i-- {
			addr, err := s.Pop()
			assert.NoError(t, err)
			assert.Equal(t, memory.Address(0x200+i*2), addr)
		}
		assert.Equal(t, 0, s.Len())
	})

	t.Run("Overflow", func(t *testing.T) {
		var s Stack
		for i := 0; i < StackSize; i++ {
			assert.NoError(t, s.Push(0x200))
		}
		assert.True(t, errors.Is(s.Push(0x200), ErrStackOverflow))
		assert.Equal(t, StackSize, s.Len())
	})

	t.Run("Underflow", func(t *testing.T) {
		var s Stack
		_, err := s.Pop()
		assert.True(t, errors.Is(err, ErrStackUnderflow))
		assert.Equal(t, 0, s.Len())
	})
}

func TestTimer(t *testing.T) {
	var tm Timer
	tm.Set(3)

	expected := []byte{2, 1, 0, 0, 0}
	for _, v := range expected {
		tm.Tick()
		assert.Equal(t, v, tm.Get())
	}
}

func TestTimers(t *testing.T) {
	var tm Timers
	tm.Delay.Set(2)
	tm.Sound.Set(1)

	tm.Tick()
	assert.Equal(t, byte(1), tm.Delay.Get())
	assert.Equal(t, byte(0), tm.Sound.Get())

	tm.Reset()
	assert.Equal(t, byte(0), tm.Delay.Get())
}

func TestDisplay(t *testing.T) {
	var d Display
	assert.False(t, d.Toggle(3, 4))
	assert.True(t, d.At(3, 4))

	snap := d.Snapshot()
	assert.True(t, d.Toggle(3, 4))
	assert.False(t, d.At(3, 4))

	// The snapshot is not affected by later mutation.
	assert.True(t, snap.At(3, 4))

	d.Toggle(DisplayWidth-1, DisplayHeight-1)
	d.Clear()
	assert.False(t, d.At(DisplayWidth-1, DisplayHeight-1))
}

func TestKeypad(t *testing.T) {
	var k Keypad
	_, ok := k.First()
	assert.False(t, ok)

	assert.NoError(t, k.Set(0xC, true))
	assert.NoError(t, k.Set(0x5, true))

	key, ok := k.First()
	assert.True(t, ok)
	assert.Equal(t, 0x5, key)

	pressed, err := k.Pressed(0xC)
	assert.NoError(t, err)
	assert.True(t, pressed)

	_, err = k.Pressed(NumKeys)
	assert.True(t, errors.Is(err, ErrInvalidKey))
	assert.True(t, errors.Is(k.Set(-1, true), ErrInvalidKey))
}

func TestRegisters(t *testing.T) {
	var r Registers
	r.V[3] = 7
	r.Reset()
	assert.Equal(t, memory.ProgramStart, r.PC)
	assert.Equal(t, byte(0), r.V[3])

	r.SetFlag(true)
	assert.Equal(t, byte(1), r.VF())
	r.SetFlag(false)
	assert.Equal(t, byte(0), r.VF())
}
