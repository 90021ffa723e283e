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

package processor

import "fmt"

const NumKeys = 16

type Keypad struct {
	keys [NumKeys]bool
}

func (k *Keypad) Reset() {
	*k = Keypad{}
}

func (k *Keypad) Set(key int, pressed bool) error {
	if key < 0 || key >= NumKeys {
		return fmt.Errorf("key %d: %w", key, ErrInvalidKey)
	}
	k.keys[key] = pressed
	return nil
}

func (k *Keypad) Pressed(key int) (bool, error) {
	if key < 0 || key >= NumKeys {
		return false, fmt.Errorf("key %d: %w", key, ErrInvalidKey)
	}
	return k.keys[key], nil
}

// First returns the lowest pressed key.
func (k *Keypad) First() (int, bool) {
	for i, v := range k.keys {
		if v {
			return i, true
		}
	}
	return 0, false
}
