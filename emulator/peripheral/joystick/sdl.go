// +build sdl

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

package joystick

import (
	"flag"
	"log"
	"sync"
	"time"

	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/veandco/go-sdl2/sdl"
)

type Device struct {
	lock     sync.Mutex
	stick    *sdl.Joystick
	state    State
	applied  State
	keypad   *processor.Keypad
	quitChan chan struct{}
}

func (m *Device) Install(p processor.Processor) error {
	if !enabled {
		return nil
	}

	var err error
	sdl.Do(func() {
		if err = sdl.InitSubSystem(sdl.INIT_JOYSTICK); err != nil {
			return
		}

		if sdl.NumJoysticks() == 0 {
			log.Print("No joystick's found!")
			return
		}
		m.stick = sdl.JoystickOpen(0)
		log.Printf("Joystick: %s", m.stick.Name())
	})
	if err != nil {
		return err
	}

	m.keypad = p.GetKeypad()
	m.startUpdateLoop()
	return nil
}

func (m *Device) Name() string {
	return "Joystick"
}

func (m *Device) Reset() {
	m.applied = State{}
}

func (m *Device) Poll() error {
	if m.keypad == nil {
		return nil
	}

	m.lock.Lock()
	next := m.state
	m.lock.Unlock()

	err := applyState(m.keypad, m.applied, next)
	m.applied = next
	return err
}

func (m *Device) Step(int) error {
	return nil
}

func (m *Device) Close() error {
	if m.quitChan == nil {
		return nil
	}
	m.quitChan <- struct{}{}
	<-m.quitChan
	return nil
}

func (m *Device) startUpdateLoop() {
	m.quitChan = make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()

		for {
			select {
			case <-m.quitChan:
				sdl.Do(func() {
					if s := m.stick; s != nil && s.Attached() {
						s.Close()
					}
					sdl.QuitSubSystem(sdl.INIT_JOYSTICK)
				})
				close(m.quitChan)
				return
			case <-ticker.C:
				sdl.Do(func() {
					var st State
					if s := m.stick; s != nil && s.Attached() {
						st.Axis[0] = s.Axis(0)
						st.Axis[1] = s.Axis(1)
						st.Buttons = s.Button(0) | (s.Button(1) << 1)
					}

					m.lock.Lock()
					m.state = st
					m.lock.Unlock()
				})
			}
		}
	}()
}

var enabled bool

func init() {
	flag.BoolVar(&enabled, "joystick", enabled, "Enable joystick support")
}
