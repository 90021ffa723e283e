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

package video

import (
	"fmt"
	"strings"
	"time"

	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/andreas-jonsson/virtualc8/platform"
	"github.com/andreas-jonsson/virtualc8/platform/dialog"
)

var applicationStart = time.Now()

// Device presents the display buffer once per frame. The platform only
// ever receives a snapshot.
type Device struct {
	Platform platform.Platform

	windowTitleTicker *time.Ticker
	frame             processor.Frame
	numFrames         uint64

	p       processor.Processor
	display *processor.Display
}

func (m *Device) Install(p processor.Processor) error {
	if m.Platform == nil {
		m.Platform = platform.Instance
	}
	m.p = p
	m.display = p.GetDisplay()
	m.windowTitleTicker = time.NewTicker(time.Second)
	return nil
}

func (m *Device) Name() string {
	return "Monochrome Display Adapter"
}

func (m *Device) Reset() {
	m.frame = processor.Frame{}
	m.numFrames = 0
}

func (m *Device) Close() error {
	m.windowTitleTicker.Stop()
	return nil
}

func (m *Device) Step(int) error {
	m.frame = m.display.Snapshot()
	m.numFrames++

	if m.Platform == nil {
		return nil
	}
	m.Platform.RenderFrame(m.frame[:], processor.DisplayWidth, processor.DisplayHeight)

	select {
	case <-m.windowTitleTicker.C:
		hint := !dialog.MainMenuWasOpen() && time.Since(applicationStart) < time.Second*10
		m.Platform.SetTitle(windowTitle(m.p.GetStats(), hint))
	default:
	}
	return nil
}

func windowTitle(stats processor.Stats, hint bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "VirtualC8 - %d IPS", stats.NumInstructions)
	if stats.NumUnknown > 0 {
		fmt.Fprintf(&sb, ", %d unknown", stats.NumUnknown)
	}
	if stats.NumWaits > 0 {
		sb.WriteString(", waiting for key")
	}
	if hint {
		sb.WriteString(" (Press F12 for menu)")
	}
	return sb.String()
}

// Frame returns the last presented frame.
func (m *Device) Frame() processor.Frame {
	return m.frame
}

func (m *Device) NumFrames() uint64 {
	return m.numFrames
}
