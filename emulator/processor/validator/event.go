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

package validator

import (
	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
)

const (
	DefaultQueueSize  = 1024
	DefaultBufferSize = 0x100000 // 1MB
)

type Event struct {
	Address uint16
	Opcode  uint16
	Status  string
	Before  RegsInfo
	After   RegsInfo
	Writes  []MemOp `json:",omitempty"`
}

type RegsInfo struct {
	V  [processor.NumRegisters]byte
	I  uint16
	PC uint16
}

type MemOp struct {
	Addr uint16
	Data byte
}

func newRegsInfo(r processor.Registers) RegsInfo {
	return RegsInfo{V: r.V, I: r.I, PC: uint16(r.PC)}
}

func newMemOp(addr memory.Address, data byte) MemOp {
	return MemOp{uint16(addr), data}
}
