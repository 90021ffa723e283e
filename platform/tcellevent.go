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

package platform

import (
	"log"
	"time"

	"github.com/andreas-jonsson/virtualc8/platform/dialog"
	"github.com/gdamore/tcell"
)

// Terminals only report key presses. The release is faked after this delay.
const tcellKeyRelease = 150 * time.Millisecond

var (
	tcellPixelOn  = tcell.ColorWhite
	tcellPixelOff = tcell.ColorBlack
)

func (p *tcellPlatform) initializeTcellEvents() error {
	go func() {
		s := p.screen
		for {
			ev := s.PollEvent()
			switch ev := ev.(type) {
			case nil:
				return
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					dialog.Quit()
				case tcell.KeyF5:
					dialog.Restart()
				default:
					p.pushKeyEvent(ev)
				}
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventInterrupt:
				if frame, ok := ev.Data().(*tcellFrame); ok {
					p.drawFrame(frame)
				}
			}
		}
	}()
	return nil
}

// drawFrame packs two pixel rows into one cell using the upper half block.
func (p *tcellPlatform) drawFrame(frame *tcellFrame) {
	s := p.screen
	color := func(x, y int) tcell.Color {
		if y < frame.height && frame.pixels[y*frame.width+x] {
			return tcellPixelOn
		}
		return tcellPixelOff
	}

	for y := 0; y < frame.height; y += 2 {
		for x := 0; x < frame.width; x++ {
			style := tcell.StyleDefault.Foreground(color(x, y)).Background(color(x, y+1))
			s.SetContent(x, y/2, '▀', nil, style)
		}
	}
	s.Show()
}

func (p *tcellPlatform) pushKeyEvent(ev *tcell.EventKey) {
	deviceEvent := createEventFromTCELL(ev)
	if deviceEvent == ScanInvalid {
		log.Print("Unknown key!")
		return
	}

	p.Lock()
	defer p.Unlock()

	if p.keyboardHandler == nil {
		return
	}
	p.keyboardHandler(deviceEvent)

	go func() {
		time.Sleep(tcellKeyRelease)

		p.Lock()
		defer p.Unlock()
		p.keyboardHandler(deviceEvent | KeyUpMask)
	}()
}

func createEventFromTCELL(ev *tcell.EventKey) Scancode {
	if ev.Key() == tcell.KeyRune {
		return runeToScancode(ev.Rune())
	}
	return ScanInvalid
}
