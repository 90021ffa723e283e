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

package cpu

import (
	"log"
	"math/rand"
	"time"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
)

type CPU struct {
	processor.Registers
	instructionState

	quirks processor.Quirks
	stats  processor.Stats
	rnd    *rand.Rand
	tracer processor.Tracer

	stack   processor.Stack
	timers  processor.Timers
	keypad  processor.Keypad
	display processor.Display
	mem     *memory.Image

	peripherals []peripheral.Peripheral
}

// NewCPU creates a machine with the given quirks and installs the
// peripherals in order. Installation errors are collected and returned.
func NewCPU(quirks processor.Quirks, peripherals []peripheral.Peripheral) (*CPU, []error) {
	p := &CPU{
		quirks:      quirks,
		rnd:         rand.New(rand.NewSource(time.Now().UnixNano())),
		mem:         memory.NewImage(),
		peripherals: peripherals,
	}
	p.resetState()
	return p, p.installPeripherals()
}

func (p *CPU) installPeripherals() []error {
	var errs []error
	for _, d := range p.peripherals {
		if err := d.Install(p); err != nil {
			log.Printf("Failed to install %s: %v", d.Name(), err)
			errs = append(errs, err)
		}
	}
	return errs
}

func (p *CPU) Close() {
	for _, d := range p.peripherals {
		if cd, b := d.(peripheral.PeripheralCloser); b {
			if err := cd.Close(); err != nil {
				log.Print("Failed to close peripheral: ", err)
			}
		}
	}
}

func (p *CPU) resetState() {
	p.Registers.Reset()
	p.instructionState = instructionState{}
	p.stack.Reset()
	p.timers.Reset()
	p.keypad.Reset()
	p.display.Clear()
	p.mem.Reset()
}

// Reset restores the power-on state. Peripherals are reset after memory so
// program loaders can write the image again.
func (p *CPU) Reset() {
	log.Print("CPU reset!")

	p.resetState()
	for _, d := range p.peripherals {
		d.Reset()
	}
}

func (p *CPU) Peripherals() []peripheral.Peripheral {
	return p.peripherals
}

func (p *CPU) Quirks() processor.Quirks {
	return p.quirks
}

func (p *CPU) SetSeed(seed int64) {
	p.rnd.Seed(seed)
}

func (p *CPU) SetTracer(t processor.Tracer) {
	p.tracer = t
}

func (p *CPU) GetStats() processor.Stats {
	s := p.stats
	p.stats = processor.Stats{}
	return s
}

func (p *CPU) GetMemory() *memory.Image {
	return p.mem
}

func (p *CPU) GetRegisters() *processor.Registers {
	return &p.Registers
}

func (p *CPU) GetTimers() *processor.Timers {
	return &p.timers
}

func (p *CPU) GetKeypad() *processor.Keypad {
	return &p.keypad
}

func (p *CPU) GetDisplay() *processor.Display {
	return &p.display
}

func (p *CPU) GetStack() *processor.Stack {
	return &p.stack
}

func (p *CPU) ReadByte(addr memory.Address) (byte, error) {
	return p.mem.ReadByte(addr)
}

func (p *CPU) WriteByte(addr memory.Address, data byte) error {
	if err := p.mem.WriteByte(addr, data); err != nil {
		return err
	}
	if p.tracer != nil {
		p.tracer.WriteByte(addr, data)
	}
	return nil
}
