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

import "github.com/andreas-jonsson/virtualc8/emulator/processor"

const Deadzone = 8000

// State is a sampled stick. Axis 0 is horizontal and axis 1 vertical.
type State struct {
	Axis    [2]int16
	Buttons byte
}

// Stick directions map to 4/6 and 2/8, the first two buttons to 5 and 0.
var (
	axisKeys   = [2][2]int{{0x4, 0x6}, {0x2, 0x8}}
	buttonKeys = [2]int{0x5, 0x0}
)

func (s State) Keys() (keys [processor.NumKeys]bool) {
	for i, v := range s.Axis {
		if v < -Deadzone {
			keys[axisKeys[i][0]] = true
		} else if v > Deadzone {
			keys[axisKeys[i][1]] = true
		}
	}
	for i, k := range buttonKeys {
		if s.Buttons&(1<<i) != 0 {
			keys[k] = true
		}
	}
	return
}

// applyState only writes keys that changed, so keyboard input is kept.
func applyState(k *processor.Keypad, prev, next State) error {
	a, b := prev.Keys(), next.Keys()
	for i := range b {
		if a[i] != b[i] {
			if err := k.Set(i, b[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
