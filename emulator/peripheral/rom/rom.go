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
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"log"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/spf13/afero"
)

// Device loads a program into memory at install time and again on every reset.
type Device struct {
	mem []byte
	p   processor.Processor

	RomName string
	Reader  io.Reader
}

// Open reads a program image from the file system.
func Open(fs afero.Fs, name string) (*Device, error) {
	fp, err := fs.Open(name)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	mem, err := ioutil.ReadAll(io.LimitReader(fp, int64(memory.MaxProgramSize)+1))
	if err != nil {
		return nil, err
	}
	if len(mem) > memory.MaxProgramSize {
		return nil, fmt.Errorf("%s: %w", name, memory.ErrProgramTooLarge)
	}
	return &Device{RomName: name, Reader: bytes.NewReader(mem)}, nil
}

func (m *Device) Install(p processor.Processor) error {
	if m.RomName == "" {
		m.RomName = "ROM"
	}

	var err error
	if m.mem, err = ioutil.ReadAll(io.LimitReader(m.Reader, int64(memory.MaxProgramSize)+1)); err != nil {
		return err
	}
	if len(m.mem) > memory.MaxProgramSize {
		return fmt.Errorf("%s: %w", m.RomName, memory.ErrProgramTooLarge)
	}

	m.p = p
	return m.load()
}

func (m *Device) load() error {
	n, err := m.p.GetMemory().Load(bytes.NewReader(m.mem))
	if err != nil {
		return err
	}
	log.Printf("Loaded %s (%d bytes) at %v", m.RomName, n, memory.ProgramStart)
	return nil
}

func (m *Device) Name() string {
	return m.RomName
}

func (m *Device) Reset() {
	if m.p == nil {
		return
	}
	if err := m.load(); err != nil {
		log.Print(err)
	}
}

func (m *Device) Step(int) error {
	return nil
}

func (m *Device) Size() int {
	return len(m.mem)
}
