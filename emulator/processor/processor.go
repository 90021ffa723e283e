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
	"errors"
	"fmt"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
)

type Stats struct {
	NumInstructions uint64
	NumUnknown      uint64
	NumWaits        uint64
}

var (
	ErrStackOverflow  = errors.New("call stack overflow")
	ErrStackUnderflow = errors.New("call stack underflow")
	ErrInvalidKey     = errors.New("invalid key index")
)

// Quirks select between historically distinct behaviours.
// Shift makes 8XY6 and 8XYE copy VY into VX before shifting.
// Jump makes BNNN use VX, selected by the second nibble, as offset instead of V0.
type Quirks struct {
	Shift, Jump bool
}

func (q Quirks) String() string {
	return fmt.Sprintf("shift=%v jump=%v", q.Shift, q.Jump)
}

type Status int

const (
	Executed Status = iota
	UnknownInstruction
	WaitingForKey
)

func (s Status) String() string {
	switch s {
	case Executed:
		return "executed"
	case UnknownInstruction:
		return "unknown instruction"
	case WaitingForKey:
		return "waiting for key"
	default:
		return "invalid status"
	}
}

// Cycle is the outcome of a single step.
type Cycle struct {
	Address memory.Address
	Opcode  uint16
	Status  Status
}

func (c Cycle) String() string {
	return fmt.Sprintf("%s 0x%04X at %v", c.Status, c.Opcode, c.Address)
}

type Debug interface {
	GetStats() Stats
}

type Processor interface {
	Debug

	ReadByte(addr memory.Address) (byte, error)
	WriteByte(addr memory.Address, data byte) error

	GetMemory() *memory.Image
	GetRegisters() *Registers
	GetTimers() *Timers
	GetKeypad() *Keypad
	GetDisplay() *Display
}

// Tracer observes execution. Begin and End bracket one step, Discard
// replaces End when the step failed.
type Tracer interface {
	Begin(regs Registers)
	WriteByte(addr memory.Address, data byte)
	End(c Cycle, regs Registers)
	Discard()
}
