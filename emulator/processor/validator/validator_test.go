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
	"bufio"
	"bytes"
	"compress/gzip"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/rom"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/andreas-jonsson/virtualc8/emulator/processor/cpu"
	"github.com/retroenv/retrogolib/assert"
	"github.com/spf13/afero"
)

func runTrace(t *testing.T, fs afero.Fs, name string, prog []byte, steps int) {
	rec, err := Create(fs, name, DefaultQueueSize, 16)
	assert.NoError(t, err)

	p, errs := cpu.NewCPU(processor.Quirks{}, []peripheral.Peripheral{
		&rom.Device{Reader: bytes.NewReader(prog)},
	})
	assert.Equal(t, 0, len(errs))
	p.SetTracer(rec)

	for i := 0; i < steps; i++ {
		_, err := p.Step()
		assert.NoError(t, err)
	}
	assert.NoError(t, rec.Close())
}

func readEvents(t *testing.T, r io.Reader) []Event {
	var events []Event
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var ev Event
		assert.NoError(t, json.Unmarshal(scanner.Bytes(), &ev))
		events = append(events, ev)
	}
	assert.NoError(t, scanner.Err())
	return events
}

func TestRecorder(t *testing.T) {
	fs := afero.NewMemMapFs()

	// LD V0,7; LD I,0x300; LD [I],V0; 0x0FFF
	prog := []byte{0x60, 0x07, 0xA3, 0x00, 0xF0, 0x55, 0x0F, 0xFF}
	runTrace(t, fs, "trace.json", prog, 4)

	fp, err := fs.Open("trace.json")
	assert.NoError(t, err)
	defer fp.Close()

	events := readEvents(t, fp)
	assert.Equal(t, 4, len(events))

	assert.Equal(t, uint16(0x6007), events[0].Opcode)
	assert.Equal(t, uint16(memory.ProgramStart), events[0].Before.PC)
	assert.Equal(t, byte(7), events[0].After.V[0])

	assert.Equal(t, 1, len(events[2].Writes))
	assert.Equal(t, MemOp{0x300, 7}, events[2].Writes[0])

	assert.Equal(t, processor.UnknownInstruction.String(), events[3].Status)
}

func TestRecorderCompressed(t *testing.T) {
	fs := afero.NewMemMapFs()
	runTrace(t, fs, "trace.json.gz", []byte{0x60, 0x01, 0x70, 0x01}, 2)

	fp, err := fs.Open("trace.json.gz")
	assert.NoError(t, err)
	defer fp.Close()

	zr, err := gzip.NewReader(fp)
	assert.NoError(t, err)

	events := readEvents(t, zr)
	assert.Equal(t, 2, len(events))
	assert.Equal(t, byte(2), events[1].After.V[0])
}

func TestRecorderDiscard(t *testing.T) {
	fs := afero.NewMemMapFs()
	rec, err := Create(fs, "trace.json", DefaultQueueSize, DefaultBufferSize)
	assert.NoError(t, err)

	p, _ := cpu.NewCPU(processor.Quirks{}, []peripheral.Peripheral{
		&rom.Device{Reader: bytes.NewReader([]byte{0x00, 0xEE})},
	})
	p.SetTracer(rec)

	_, err = p.Step()
	assert.True(t, errors.Is(err, processor.ErrStackUnderflow))
	assert.NoError(t, rec.Close())

	data, err := afero.ReadFile(fs, "trace.json")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(data))
}
