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

package rom

import (
	"errors"
	"os"
	"testing"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/andreas-jonsson/virtualc8/emulator/processor/cpu"
	"github.com/retroenv/retrogolib/assert"
	"github.com/spf13/afero"
)

func TestOpen(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "test.ch8", []byte{0x12, 0x00}, 0644))

	dev, err := Open(fs, "test.ch8")
	assert.NoError(t, err)

	p, errs := cpu.NewCPU(processor.Quirks{}, []peripheral.Peripheral{dev})
	assert.Equal(t, 0, len(errs))
	assert.Equal(t, 2, dev.Size())

	op, err := p.GetMemory().ReadWord(memory.ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1200), op)
}

func TestOpenMissing(t *testing.T) {
	_, err := Open(afero.NewMemMapFs(), "missing.ch8")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestTooLarge(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "big.ch8", make([]byte, memory.MaxProgramSize+1), 0644))

	_, err := Open(fs, "big.ch8")
	assert.True(t, errors.Is(err, memory.ErrProgramTooLarge))
}

func TestReload(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "test.ch8", []byte{0xAB}, 0644))

	dev, err := Open(fs, "test.ch8")
	assert.NoError(t, err)

	p, errs := cpu.NewCPU(processor.Quirks{}, []peripheral.Peripheral{dev})
	assert.Equal(t, 0, len(errs))

	assert.NoError(t, p.WriteByte(memory.ProgramStart, 0x00))
	p.Reset()

	b, err := p.ReadByte(memory.ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)
}
