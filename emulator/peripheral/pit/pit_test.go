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

package pit

import (
	"testing"

	"github.com/andreas-jonsson/virtualc8/emulator/peripheral"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/andreas-jonsson/virtualc8/emulator/processor/cpu"
	"github.com/retroenv/retrogolib/assert"
)

func TestStep(t *testing.T) {
	dev := &Device{}
	p, errs := cpu.NewCPU(processor.Quirks{}, []peripheral.Peripheral{dev})
	assert.Equal(t, 0, len(errs))

	timers := p.GetTimers()
	timers.Delay.Set(3)
	timers.Sound.Set(1)
	assert.True(t, dev.Sounding())

	for i := 0; i < 5; i++ {
		// The cycle count does not change the tick rate.
		assert.NoError(t, dev.Step(12*(i+1)))
	}

	assert.Equal(t, byte(0), timers.Delay.Get())
	assert.False(t, dev.Sounding())
	assert.Equal(t, uint64(5), dev.Ticks())
}
