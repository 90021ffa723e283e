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
	"github.com/spf13/afero"
)

type internalPlatform interface{}

type Config func(internalPlatform) error

type Platform interface {
	FileSystem() afero.Fs

	// RenderFrame presents a row-major monochrome frame. The slice is only
	// valid for the duration of the call.
	RenderFrame(pixels []bool, width, height int)
	SetTitle(title string)
	SetKeyboardHandler(h func(Scancode))
}

var Instance Platform

type Scancode byte

const KeyUpMask Scancode = 0x80

const (
	ScanInvalid Scancode = iota
	ScanEscape
	Scan1
	Scan2
	Scan3
	Scan4
	ScanQ
	ScanW
	ScanE
	ScanR
	ScanA
	ScanS
	ScanD
	ScanF
	ScanZ
	ScanX
	ScanC
	ScanV
	ScanF5
)

func (s Scancode) KeyUp() bool {
	return s&KeyUpMask != 0
}

func (s Scancode) Key() Scancode {
	return s &^ KeyUpMask
}

// runeToScancode maps the keys of the conventional 4x4 layout, upper and
// lower case.
func runeToScancode(r rune) Scancode {
	switch r {
	case '1':
		return Scan1
	case '2':
		return Scan2
	case '3':
		return Scan3
	case '4':
		return Scan4
	case 'q', 'Q':
		return ScanQ
	case 'w', 'W':
		return ScanW
	case 'e', 'E':
		return ScanE
	case 'r', 'R':
		return ScanR
	case 'a', 'A':
		return ScanA
	case 's', 'S':
		return ScanS
	case 'd', 'D':
		return ScanD
	case 'f', 'F':
		return ScanF
	case 'z', 'Z':
		return ScanZ
	case 'x', 'X':
		return ScanX
	case 'c', 'C':
		return ScanC
	case 'v', 'V':
		return ScanV
	}
	return ScanInvalid
}
