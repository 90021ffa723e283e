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

package platform

import (
	"log"
	"time"

	"github.com/andreas-jonsson/virtualc8/platform/dialog"
	"github.com/veandco/go-sdl2/sdl"
)

func (p *sdlPlatform) initializeSDLEvents() error {
	var err error
	sdl.Do(func() {
		err = sdl.InitSubSystem(sdl.INIT_EVENTS)
	})
	if err != nil {
		return err
	}

	p.quitChan = make(chan struct{})
	registerCleanup(p, shutdownSDLEvents)

	go func() {
		ticker := time.NewTicker(time.Second / 120)
		defer ticker.Stop()

		for {
			select {
			case <-p.quitChan:
				close(p.quitChan)
				return
			case <-ticker.C:
				sdl.Do(func() {
					for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
						switch ev := event.(type) {
						case *sdl.QuitEvent:
							dialog.Quit()
						case *sdl.KeyboardEvent:
							p.sdlProcessKey(ev)
						}
					}
				})
			}
		}
	}()
	return nil
}

func shutdownSDLEvents(p *sdlPlatform) {
	p.quitChan <- struct{}{}
	<-p.quitChan

	sdl.Do(func() {
		sdl.QuitSubSystem(sdl.INIT_EVENTS)
	})
}

func (p *sdlPlatform) sdlProcessKey(ev *sdl.KeyboardEvent) {
	keyUp := ev.Type == sdl.KEYUP
	switch ev.Keysym.Scancode {
	case sdl.SCANCODE_ESCAPE:
		if keyUp {
			dialog.Quit()
		}
	case sdl.SCANCODE_F12:
		if keyUp {
			dialog.MainMenu()
		}
	case sdl.SCANCODE_F5:
		if keyUp {
			dialog.Restart()
		}
	case sdl.SCANCODE_F11:
		if keyUp {
			if (p.window.GetFlags() & sdl.WINDOW_FULLSCREEN) != 0 {
				p.window.SetFullscreen(0)
			} else {
				p.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
			}
		}
	default:
		if ev.Repeat != 0 {
			return
		}
		if scan := sdlScanToScancode(ev.Keysym.Scancode); scan != ScanInvalid && p.keyboardHandler != nil {
			if keyUp {
				scan |= KeyUpMask
			}
			p.keyboardHandler(scan)
		} else {
			log.Printf("Invalid key \"%s\"", sdl.GetKeyName(ev.Keysym.Sym))
		}
	}
}

func (p *sdlPlatform) SetKeyboardHandler(h func(Scancode)) {
	sdl.Do(func() {
		p.keyboardHandler = h
	})
}

func sdlScanToScancode(s sdl.Scancode) Scancode {
	switch s {
	case sdl.SCANCODE_1:
		return Scan1
	case sdl.SCANCODE_2:
		return Scan2
	case sdl.SCANCODE_3:
		return Scan3
	case sdl.SCANCODE_4:
		return Scan4
	case sdl.SCANCODE_Q:
		return ScanQ
	case sdl.SCANCODE_W:
		return ScanW
	case sdl.SCANCODE_E:
		return ScanE
	case sdl.SCANCODE_R:
		return ScanR
	case sdl.SCANCODE_A:
		return ScanA
	case sdl.SCANCODE_S:
		return ScanS
	case sdl.SCANCODE_D:
		return ScanD
	case sdl.SCANCODE_F:
		return ScanF
	case sdl.SCANCODE_Z:
		return ScanZ
	case sdl.SCANCODE_X:
		return ScanX
	case sdl.SCANCODE_C:
		return ScanC
	case sdl.SCANCODE_V:
		return ScanV
	}
	return ScanInvalid
}
