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

// Timer is an 8-bit countdown register. It never decrements below zero.
type Timer struct {
	value byte
}

func (t *Timer) Set(v byte) {
	t.value = v
}

func (t *Timer) Get() byte {
	return t.value
}

func (t *Timer) Tick() {
	if t.value > 0 {
		t.value--
	}
}

type Timers struct {
	Delay, Sound Timer
}

func (t *Timers) Reset() {
	*t = Timers{}
}

func (t *Timers) Tick() {
	t.Delay.Tick()
	t.Sound.Tick()
}
