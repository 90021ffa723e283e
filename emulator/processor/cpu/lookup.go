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

var aluLookup = [16]func(*CPU, byte, byte){
	0x0: func(p *CPU, x, y byte) { p.V[x] = p.V[y] },
	0x1: func(p *CPU, x, y byte) { p.V[x] |= p.V[y] },
	0x2: func(p *CPU, x, y byte) { p.V[x] &= p.V[y] },
	0x3: func(p *CPU, x, y byte) { p.V[x] ^= p.V[y] },
	0x4: (*CPU).add,
	0x5: (*CPU).sub,
	0x6: (*CPU).shr,
	0x7: (*CPU).subn,
	0xE: (*CPU).shl,
}

// The flag is written last so VF as a destination holds the flag.

func (p *CPU) add(x, y byte) {
	res := uint16(p.V[x]) + uint16(p.V[y])
	p.V[x] = byte(res)
	p.SetFlag(res > 0xFF)
}

func (p *CPU) sub(x, y byte) {
	a, b := p.V[x], p.V[y]
	p.V[x] = a - b
	p.SetFlag(a >= b)
}

func (p *CPU) subn(x, y byte) {
	a, b := p.V[x], p.V[y]
	p.V[x] = b - a
	p.SetFlag(b >= a)
}
