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
	"sync"

	"github.com/andreas-jonsson/virtualc8/platform/dialog"
	"github.com/gdamore/tcell"
	"github.com/spf13/afero"
)

type tcellPlatform struct {
	sync.Mutex

	screen     tcell.Screen
	fileSystem afero.Fs

	keyboardHandler func(Scancode)
}

type tcellFrame struct {
	pixels        []bool
	width, height int
}

var tcellPlatformInstance tcellPlatform

func tcellStart(mainLoop func(Platform), configs ...Config) {
	for _, cfg := range configs {
		if err := cfg(&tcellPlatformInstance); err != nil {
			log.Fatal(err)
		}
	}

	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	var err error
	if tcellPlatformInstance.screen, err = tcell.NewScreen(); err != nil {
		log.Fatal(err)
	}

	tcellPlatformInstance.fileSystem = afero.NewOsFs()
	Instance = &tcellPlatformInstance
	s := tcellPlatformInstance.screen

	if err = s.Init(); err != nil {
		log.Fatal(err)
	}
	defer dialog.FlushMessages()
	defer s.Fini()

	s.HideCursor()
	s.DisableMouse()
	s.Clear()

	if err := tcellPlatformInstance.initializeTcellEvents(); err != nil {
		log.Fatal(err)
	}
	mainLoop(Instance)
}

// Terminal reports if the terminal frontend owns the screen.
func Terminal() bool {
	_, ok := Instance.(*tcellPlatform)
	return ok
}

func (p *tcellPlatform) FileSystem() afero.Fs {
	return p.fileSystem
}

func (p *tcellPlatform) RenderFrame(pixels []bool, width, height int) {
	frame := &tcellFrame{make([]bool, len(pixels)), width, height}
	copy(frame.pixels, pixels)
	p.screen.PostEvent(tcell.NewEventInterrupt(frame))
}

func (p *tcellPlatform) SetTitle(title string) {
}

func (p *tcellPlatform) SetKeyboardHandler(h func(Scancode)) {
	p.Lock()
	p.keyboardHandler = h
	p.Unlock()
}
