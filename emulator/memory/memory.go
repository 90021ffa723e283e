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

package memory

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
)

const (
	Size = 0x1000 // 4KB

	FontBase     Address = 0x050
	ProgramStart Address = 0x200

	MaxProgramSize = Size - int(ProgramStart)
)

var (
	ErrOutOfBounds     = errors.New("memory access out of bounds")
	ErrProgramTooLarge = errors.New("program does not fit into memory")
)

type Address uint16

func (a Address) String() string {
	return fmt.Sprintf("0x%03X", uint16(a))
}

func (a Address) Valid() bool {
	return int(a) < Size
}

type Memory interface {
	ReadByte(addr Address) (byte, error)
	WriteByte(addr Address, data byte) error
}

// Image is the flat address space of the machine. Every access is bounds
// checked, nothing wraps.
type Image struct {
	mem [Size]byte
}

func NewImage() *Image {
	m := &Image{}
	m.Reset()
	return m
}

// Reset clears the image and writes the glyph table.
func (m *Image) Reset() {
	m.mem = [Size]byte{}
	copy(m.mem[FontBase:], Font[:])
}

func (m *Image) ReadByte(addr Address) (byte, error) {
	if !addr.Valid() {
		return 0, fmt.Errorf("read %v: %w", addr, ErrOutOfBounds)
	}
	return m.mem[addr], nil
}

func (m *Image) WriteByte(addr Address, data byte) error {
	if !addr.Valid() {
		return fmt.Errorf("write %v: %w", addr, ErrOutOfBounds)
	}
	m.mem[addr] = data
	return nil
}

func (m *Image) ReadWord(addr Address) (uint16, error) {
	if !addr.Valid() || !(addr + 1).Valid() {
		return 0, fmt.Errorf("fetch %v: %w", addr, ErrOutOfBounds)
	}
	return uint16(m.mem[addr])<<8 | uint16(m.mem[addr+1]), nil
}

// Load copies a program into memory at ProgramStart. At most one byte past
// MaxProgramSize is read so oversized programs are rejected, not truncated.
func (m *Image) Load(r io.Reader) (int, error) {
	prog, err := ioutil.ReadAll(io.LimitReader(r, int64(MaxProgramSize)+1))
	if err != nil {
		return 0, err
	}
	if len(prog) > MaxProgramSize {
		return 0, ErrProgramTooLarge
	}
	return copy(m.mem[ProgramStart:], prog), nil
}

func (m *Image) Bytes() []byte {
	return m.mem[:]
}
