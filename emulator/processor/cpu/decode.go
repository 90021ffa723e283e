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
	"fmt"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
)

type instructionState struct {
	opcode uint16
	cycle  processor.Cycle
}

func (s *instructionState) x() byte {
	return byte(s.opcode>>8) & 0xF
}

func (s *instructionState) y() byte {
	return byte(s.opcode>>4) & 0xF
}

func (s *instructionState) n() byte {
	return byte(s.opcode) & 0xF
}

func (s *instructionState) nn() byte {
	return byte(s.opcode)
}

func (s *instructionState) nnn() memory.Address {
	return memory.Address(s.opcode & 0xFFF)
}

func (p *CPU) fetch() (uint16, error) {
	op, err := p.mem.ReadWord(p.PC)
	if err != nil {
		return 0, err
	}
	p.PC += 2
	return op, nil
}

// indexAddress returns I+offset, failing if it is outside memory.
func (p *CPU) indexAddress(offset int) (memory.Address, error) {
	addr := int(p.I) + offset
	if addr >= memory.Size {
		return 0, fmt.Errorf("index 0x%04X+%d: %w", p.I, offset, memory.ErrOutOfBounds)
	}
	return memory.Address(addr), nil
}

func (p *CPU) skipIf(b bool) {
	if b {
		p.PC += 2
	}
}

func (p *CPU) unknown() {
	p.cycle.Status = processor.UnknownInstruction
	p.stats.NumUnknown++
}

// Step executes a single instruction. Unknown instructions are not errors,
// they are reported in the returned cycle.
func (p *CPU) Step() (processor.Cycle, error) {
	p.cycle = processor.Cycle{Address: p.PC}
	if p.tracer != nil {
		p.tracer.Begin(p.Registers)
	}

	op, err := p.fetch()
	if err != nil {
		return p.cycle, p.abort(err)
	}
	p.opcode = op
	p.cycle.Opcode = op

	if err := p.execute(); err != nil {
		return p.cycle, p.abort(err)
	}
	p.stats.NumInstructions++

	if p.tracer != nil {
		p.tracer.End(p.cycle, p.Registers)
	}
	return p.cycle, nil
}

func (p *CPU) abort(err error) error {
	if p.tracer != nil {
		p.tracer.Discard()
	}
	return fmt.Errorf("%v: %w", p.cycle.Address, err)
}

func (p *CPU) execute() error {
	x, y := p.x(), p.y()

	switch p.opcode >> 12 {
	case 0x0:
		switch p.opcode {
		case 0x00E0: // CLS
			p.display.Clear()
		case 0x00EE: // RET
			addr, err := p.stack.Pop()
			if err != nil {
				return err
			}
			p.PC = addr
		default:
			p.unknown()
		}
	case 0x1: // JP NNN
		p.PC = p.nnn()
	case 0x2: // CALL NNN
		if err := p.stack.Push(p.PC); err != nil {
			return err
		}
		p.PC = p.nnn()
	case 0x3: // SE VX,NN
		p.skipIf(p.V[x] == p.nn())
	case 0x4: // SNE VX,NN
		p.skipIf(p.V[x] != p.nn())
	case 0x5: // SE VX,VY
		if p.n() != 0 {
			p.unknown()
			break
		}
		p.skipIf(p.V[x] == p.V[y])
	case 0x6: // LD VX,NN
		p.V[x] = p.nn()
	case 0x7: // ADD VX,NN
		p.V[x] += p.nn()
	case 0x8:
		if f := aluLookup[p.n()]; f != nil {
			f(p, x, y)
		} else {
			p.unknown()
		}
	case 0x9: // SNE VX,VY
		if p.n() != 0 {
			p.unknown()
			break
		}
		p.skipIf(p.V[x] != p.V[y])
	case 0xA: // LD I,NNN
		p.I = uint16(p.nnn())
	case 0xB: // JP V0,NNN
		offset := p.V[0]
		if p.quirks.Jump {
			offset = p.V[x]
		}
		p.PC = memory.Address(offset) + p.nnn()
	case 0xC: // RND VX,NN
		p.V[x] = byte(p.rnd.Intn(0x100)) & p.nn()
	case 0xD: // DRW VX,VY,N
		return p.draw(x, y, p.n())
	case 0xE:
		switch p.nn() {
		case 0x9E: // SKP VX
			pressed, err := p.keypad.Pressed(int(p.V[x]))
			if err != nil {
				return err
			}
			p.skipIf(pressed)
		case 0xA1: // SKNP VX
			pressed, err := p.keypad.Pressed(int(p.V[x]))
			if err != nil {
				return err
			}
			p.skipIf(!pressed)
		default:
			p.unknown()
		}
	case 0xF:
		return p.executeMisc(x)
	}
	return nil
}
