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
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
)

// Device drives the delay and sound timers. It is stepped once per frame,
// independent of how many instructions the frame executed.
type Device struct {
	timers *processor.Timers
	ticks  uint64
}

func (m *Device) Install(p processor.Processor) error {
	m.timers = p.GetTimers()
	return nil
}

func (m *Device) Name() string {
	return "Delay and Sound Timers"
}

func (m *Device) Reset() {
	m.ticks = 0
}

func (m *Device) Step(int) error {
	m.timers.Tick()
	m.ticks++
	return nil
}

func (m *Device) Ticks() uint64 {
	return m.ticks
}

// Sounding reports if the sound timer is active.
func (m *Device) Sounding() bool {
	return m.timers.Sound.Get() > 0
}
