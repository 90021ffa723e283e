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

package keyboard

import (
	"errors"
	"testing"

	"github.com/andreas-jonsson/virtualc8/emulator/peripheral"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/andreas-jonsson/virtualc8/emulator/processor/cpu"
	"github.com/andreas-jonsson/virtualc8/platform"
	"github.com/retroenv/retrogolib/assert"
)

func newDevice(t *testing.T) (*Device, *processor.Keypad) {
	t.Helper()
	dev := &Device{}
	p, errs := cpu.NewCPU(processor.Quirks{}, []peripheral.Peripheral{dev})
	assert.Equal(t, 0, len(errs))
	return dev, p.GetKeypad()
}

func TestKeymap(t *testing.T) {
	tests := []struct {
		scan platform.Scancode
		key  int
	}{
		{platform.Scan1, 0x1},
		{platform.Scan4, 0xC},
		{platform.ScanR, 0xD},
		{platform.ScanX, 0x0},
		{platform.ScanV, 0xF},
		{platform.ScanZ | platform.KeyUpMask, 0xA},
	}

	for _, tt := range tests {
		key, ok := KeyFromScancode(tt.scan)
		assert.True(t, ok)
		assert.Equal(t, tt.key, key)
	}

	_, ok := KeyFromScancode(platform.ScanEscape)
	assert.False(t, ok)
}

func TestPoll(t *testing.T) {
	dev, keypad := newDevice(t)

	assert.NoError(t, dev.PushEvent(platform.ScanW))
	assert.NoError(t, dev.PushEvent(platform.ScanF5))

	// Nothing reaches the keypad before the frame polls.
	pressed, err := keypad.Pressed(0x5)
	assert.NoError(t, err)
	assert.False(t, pressed)

	assert.NoError(t, dev.Poll())
	pressed, err = keypad.Pressed(0x5)
	assert.NoError(t, err)
	assert.True(t, pressed)

	assert.NoError(t, dev.PushEvent(platform.ScanW|platform.KeyUpMask))
	assert.NoError(t, dev.Poll())
	pressed, err = keypad.Pressed(0x5)
	assert.NoError(t, err)
	assert.False(t, pressed)
}

func TestQueueFull(t *testing.T) {
	dev, _ := newDevice(t)
	for i := 0; i < MaxEvents; i++ {
		assert.NoError(t, dev.PushEvent(platform.Scan1))
	}
	assert.True(t, errors.Is(dev.PushEvent(platform.Scan1), ErrQueueFull))

	dev.Reset()
	assert.NoError(t, dev.PushEvent(platform.Scan1))
}
