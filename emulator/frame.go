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

package emulator

import (
	"log"

	"github.com/andreas-jonsson/virtualc8/emulator/peripheral"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
)

type Machine interface {
	Step() (processor.Cycle, error)
	Peripherals() []peripheral.Peripheral
}

// Driver runs the machine one frame at a time.
type Driver struct {
	m              Machine
	cyclesPerFrame int
	pollers        []peripheral.PeripheralPoller
}

func NewDriver(m Machine, cyclesPerFrame int) *Driver {
	if cyclesPerFrame <= 0 {
		cyclesPerFrame = DefaultCyclesPerFrame
	}

	d := &Driver{m: m, cyclesPerFrame: cyclesPerFrame}
	for _, dev := range m.Peripherals() {
		if pl, ok := dev.(peripheral.PeripheralPoller); ok {
			d.pollers = append(d.pollers, pl)
		}
	}
	return d
}

// RunFrame polls input, executes one batch of instructions and then steps
// every peripheral once. It returns the number of executed cycles.
func (d *Driver) RunFrame() (int, error) {
	for _, pl := range d.pollers {
		if err := pl.Poll(); err != nil {
			return 0, err
		}
	}

	n := 0
	for n < d.cyclesPerFrame {
		c, err := d.m.Step()
		if err != nil {
			return n, err
		}
		n++

		if c.Status == processor.UnknownInstruction {
			log.Printf("unknown instruction 0x%04X at %v", c.Opcode, c.Address)
		}
	}

	for _, dev := range d.m.Peripherals() {
		if err := dev.Step(n); err != nil {
			return n, err
		}
	}
	return n, nil
}
