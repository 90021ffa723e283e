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

import (
	"fmt"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
)

const StackSize = 16

type Stack struct {
	data [StackSize]memory.Address
	ptr  int
}

func (s *Stack) Reset() {
	*s = Stack{}
}

func (s *Stack) Len() int {
	return s.ptr
}

func (s *Stack) Push(addr memory.Address) error {
	if s.ptr >= StackSize {
		return fmt.Errorf("push %v: %w", addr, ErrStackOverflow)
	}
	s.data[s.ptr] = addr
	s.ptr++
	return nil
}

func (s *Stack) Pop() (memory.Address, error) {
	if s.ptr <= 0 {
		return 0, ErrStackUnderflow
	}
	s.ptr--
	return s.data[s.ptr], nil
}
