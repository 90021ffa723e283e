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
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
)

// draw XORs an 8xN sprite read from I onto the display. The origin wraps,
// the sprite itself is clipped at the right and bottom edges.
func (p *CPU) draw(x, y, n byte) error {
	ox := int(p.V[x]) % processor.DisplayWidth
	oy := int(p.V[y]) % processor.DisplayHeight
	p.V[0xF] = 0

	for row := 0; row < int(n); row++ {
		py := oy + row
		if py >= processor.DisplayHeight {
			break
		}

		addr, err := p.indexAddress(row)
		if err != nil {
			return err
		}
		sprite, err := p.ReadByte(addr)
		if err != nil {
			return err
		}

		for col := 0; col < 8; col++ {
			px := ox + col
			if px >= processor.DisplayWidth {
				break
			}
			if sprite&(0x80>>col) != 0 && p.display.Toggle(px, py) {
				p.V[0xF] = 1
			}
		}
	}
	return nil
}
