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

package emulator

import (
	"fmt"
	"log"
	"time"

	"github.com/andreas-jonsson/virtualc8/emulator/peripheral"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/debug"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/joystick"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/keyboard"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/pit"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/rom"
	"github.com/andreas-jonsson/virtualc8/emulator/peripheral/video"
	"github.com/andreas-jonsson/virtualc8/emulator/processor/cpu"
	"github.com/andreas-jonsson/virtualc8/emulator/processor/validator"
	"github.com/andreas-jonsson/virtualc8/platform"
	"github.com/andreas-jonsson/virtualc8/platform/dialog"
)

// NewMachine builds the machine around a program loader. Peripherals are
// stepped in order, so the timers tick before the frame is presented.
func NewMachine(c Config, program peripheral.Peripheral) (*cpu.CPU, error) {
	peripherals := []peripheral.Peripheral{
		program,            // Program ROM
		&keyboard.Device{}, // Hex Keypad
		&joystick.Device{}, // Joystick mapped to the keypad
		&pit.Device{},      // Delay and Sound Timers
		&video.Device{},    // Display
	}

	p, errs := cpu.NewCPU(c.Quirks, peripherals)
	if len(errs) > 0 {
		p.Close()
		return nil, fmt.Errorf("could not install %d peripheral(s): %w", len(errs), errs[0])
	}
	return p, nil
}

// Run executes frames at the configured rate until shutdown is requested.
func Run(c Config, p *cpu.CPU) error {
	d := NewDriver(p, c.CyclesPerFrame)

	ticker := time.NewTicker(c.FrameDuration())
	defer ticker.Stop()

	for !dialog.ShutdownRequested() {
		if dialog.RestartRequested() {
			p.Reset()
		}
		if _, err := d.RunFrame(); err != nil {
			return err
		}
		<-ticker.C
	}
	return nil
}

func Start(pl platform.Platform) {
	c := FlagConfig()
	fs := pl.FileSystem()

	if c.LogFile != "" {
		if err := debug.OpenLogFile(fs, c.LogFile); err != nil {
			dialog.ShowErrorMessage(err.Error())
			return
		}
		defer debug.Close()
	}
	debug.MuteLogging(platform.Terminal())
	defer debug.MuteLogging(false)

	romDevice, err := rom.Open(fs, c.Program)
	if err != nil {
		log.Print(err)
		dialog.ShowErrorMessage(err.Error())
		return
	}

	p, err := NewMachine(c, romDevice)
	if err != nil {
		log.Print(err)
		dialog.ShowErrorMessage(err.Error())
		return
	}
	defer p.Close()

	if c.ValidateFile != "" {
		rec, err := validator.Create(fs, c.ValidateFile, validator.DefaultQueueSize, validator.DefaultBufferSize)
		if err != nil {
			dialog.ShowErrorMessage(err.Error())
			return
		}
		defer func() {
			if err := rec.Close(); err != nil {
				log.Print(err)
			}
		}()
		p.SetTracer(rec)
	}

	log.Printf("Starting %s (%s, %d cycles/frame, %d Hz)", c.Program, c.Quirks, c.CyclesPerFrame, c.FrameRate)
	if err := Run(c, p); err != nil {
		log.Print(err)
		dialog.ShowErrorMessage(err.Error())
	}
}
