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
	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
)

func (p *CPU) executeMisc(x byte) error {
	switch p.nn() {
	case 0x07: // LD VX,DT
		p.V[x] = p.timers.Delay.Get()
	case 0x0A: // LD VX,K
		if key, ok := p.keypad.First(); ok {
			p.V[x] = byte(key)
		} else {
			p.PC -= 2
			p.cycle.Status = processor.WaitingForKey
			p.stats.NumWaits++
		}
	case 0x15: // LD DT,VX
		p.timers.Delay.Set(p.V[x])
	case 0x18: // LD ST,VX
		p.timers.Sound.Set(p.V[x])
	case 0x1E: // ADD I,VX
		sum := uint32(p.I) + uint32(p.V[x])
		p.I = uint16(sum)
		// Only set when the 16-bit add wraps and the result is past 0xFFF.
		p.SetFlag(sum > 0xFFFF && p.I > 0xFFF)
	case 0x29: // LD F,VX
		p.I = uint16(memory.GlyphAddress(p.V[x]))
	case 0x33: // LD B,VX
		return p.storeBCD(p.V[x])
	case 0x55: // LD [I],VX
		for i := 0; i <= int(x); i++ {
			addr, err := p.indexAddress(i)
			if err != nil {
				return err
			}
			if err := p.WriteByte(addr, p.V[i]); err != nil {
				return err
			}
		}
	case 0x65: // LD VX,[I]
		for i := 0; i <= int(x); i++ {
			addr, err := p.indexAddress(i)
			if err != nil {
				return err
			}
			if p.V[i], err = p.ReadByte(addr); err != nil {
				return err
			}
		}
	default:
		p.unknown()
	}
	return nil
}

// storeBCD writes the ones digit at I, tens at I+1 and hundreds at I+2.
func (p *CPU) storeBCD(v byte) error {
	digits := [3]byte{v % 10, (v / 10) % 10, v / 100}
	for i, d := range digits {
		addr, err := p.indexAddress(i)
		if err != nil {
			return err
		}
		if err := p.WriteByte(addr, d); err != nil {
			return err
		}
	}
	return nil
}
