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

import "github.com/andreas-jonsson/virtualc8/platform"

// Host layout:   Keypad:
//   1 2 3 4      1 2 3 C
//   Q W E R      4 5 6 D
//   A S D F      7 8 9 E
//   Z X C V      A 0 B F
var keymap = map[platform.Scancode]int{
	platform.Scan1: 0x1,
	platform.Scan2: 0x2,
	platform.Scan3: 0x3,
	platform.Scan4: 0xC,
	platform.ScanQ: 0x4,
	platform.ScanW: 0x5,
	platform.ScanE: 0x6,
	platform.ScanR: 0xD,
	platform.ScanA: 0x7,
	platform.ScanS: 0x8,
	platform.ScanD: 0x9,
	platform.ScanF: 0xE,
	platform.ScanZ: 0xA,
	platform.ScanX: 0x0,
	platform.ScanC: 0xB,
	platform.ScanV: 0xF,
}

func KeyFromScancode(s platform.Scancode) (int, bool) {
	k, ok := keymap[s.Key()]
	return k, ok
}
