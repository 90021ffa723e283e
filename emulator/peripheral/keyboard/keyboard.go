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

package keyboard

import (
	"errors"
	"log"

	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/andreas-jonsson/virtualc8/platform"
)

const MaxEvents = 64

var ErrQueueFull = errors.New("event queue is full")

// Device feeds host key events into the keypad. Events arrive from the
// platform goroutine and are applied when the frame driver polls.
type Device struct {
	events chan platform.Scancode
	keypad *processor.Keypad
}

func (m *Device) Install(p processor.Processor) error {
	m.keypad = p.GetKeypad()
	m.events = make(chan platform.Scancode, MaxEvents)

	if platform.Instance != nil {
		platform.Instance.SetKeyboardHandler(func(ev platform.Scancode) {
			if err := m.PushEvent(ev); err != nil {
				log.Print(err)
			}
		})
	}
	return nil
}

func (m *Device) Name() string {
	return "Hex Keypad"
}

func (m *Device) Reset() {
	for {
		select {
		case <-m.events:
		default:
			return
		}
	}
}

func (m *Device) PushEvent(ev platform.Scancode) error {
	select {
	case m.events <- ev:
		return nil
	default:
		return ErrQueueFull
	}
}

func (m *Device) Poll() error {
	for {
		select {
		case ev := <-m.events:
			key, ok := KeyFromScancode(ev.Key())
			if !ok {
				continue
			}
			if err := m.keypad.Set(key, !ev.KeyUp()); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (m *Device) Step(int) error {
	return nil
}
