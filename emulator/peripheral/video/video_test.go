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

package video

import (
	"testing"

	"github.com/andreas-jonsson/virtualc8/emulator/peripheral"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/andreas-jonsson/virtualc8/emulator/processor/cpu"
	"github.com/andreas-jonsson/virtualc8/platform"
	"github.com/retroenv/retrogolib/assert"
	"github.com/spf13/afero"
)

type testPlatform struct {
	pixels        []bool
	width, height int
	frames        int
}

func (p *testPlatform) FileSystem() afero.Fs {
	return afero.NewMemMapFs()
}

func (p *testPlatform) RenderFrame(pixels []bool, width, height int) {
	p.pixels = append(p.pixels[:0], pixels...)
	p.width, p.height = width, height
	p.frames++
}

func (p *testPlatform) SetTitle(string) {
}

func (p *testPlatform) SetKeyboardHandler(func(platform.Scancode)) {
}

func TestStep(t *testing.T) {
	plat := &testPlatform{}
	dev := &Device{Platform: plat}
	p, errs := cpu.NewCPU(processor.Quirks{}, []peripheral.Peripheral{dev})
	assert.Equal(t, 0, len(errs))
	defer p.Close()

	p.GetDisplay().Toggle(3, 1)
	assert.NoError(t, dev.Step(12))

	assert.Equal(t, 1, plat.frames)
	assert.Equal(t, processor.DisplayWidth, plat.width)
	assert.Equal(t, processor.DisplayHeight, plat.height)
	assert.Equal(t, processor.DisplayWidth*processor.DisplayHeight, len(plat.pixels))
	assert.True(t, plat.pixels[1*processor.DisplayWidth+3])

	// Later changes do not leak into the presented frame.
	p.GetDisplay().Toggle(3, 1)
	frame := dev.Frame()
	assert.True(t, frame.At(3, 1))
	assert.Equal(t, uint64(1), dev.NumFrames())
}

func TestWindowTitle(t *testing.T) {
	tests := []struct {
		stats processor.Stats
		hint  bool
		title string
	}{
		{processor.Stats{NumInstructions: 720}, false, "VirtualC8 - 720 IPS"},
		{processor.Stats{NumInstructions: 720}, true, "VirtualC8 - 720 IPS (Press F12 for menu)"},
		{processor.Stats{NumInstructions: 720, NumUnknown: 3}, false, "VirtualC8 - 720 IPS, 3 unknown"},
		{processor.Stats{NumInstructions: 60, NumWaits: 60}, false, "VirtualC8 - 60 IPS, waiting for key"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.title, windowTitle(tt.stats, tt.hint))
	}
}
