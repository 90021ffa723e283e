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

package processor

import (
	"fmt"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
)

const (
	NumRegisters = 16
	Flag         = 0xF
)

type Registers struct {
	V  [NumRegisters]byte
	I  uint16
	PC memory.Address
}

func (r *Registers) Reset() {
	*r = Registers{PC: memory.ProgramStart}
}

func (r *Registers) VF() byte {
	return r.V[Flag]
}

func (r *Registers) SetFlag(b bool) {
	if b {
		r.V[Flag] = 1
		return
	}
	r.V[Flag] = 0
}

func (r *Registers) String() string {
	return fmt.Sprintf("PC=%v I=0x%04X V=% X", r.PC, r.I, r.V[:])
}
