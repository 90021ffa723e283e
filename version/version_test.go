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

package version

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestString(t *testing.T) {
	v := Version{1, 2, 3, ""}
	assert.Equal(t, "1.2.3", v.String())
	assert.Equal(t, "1.2.3", v.FullString())

	v.Build = "rc1"
	assert.Equal(t, "1.2.3-rc1", v.FullString())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a, b Version
		res  int
	}{
		{Version{0, 1, 0, ""}, Version{0, 1, 0, "beta"}, 0},
		{Version{0, 1, 0, ""}, Version{0, 1, 1, ""}, -1},
		{Version{1, 0, 0, ""}, Version{0, 9, 9, ""}, 1},
		{Version{0, 2, 0, ""}, Version{0, 10, 0, ""}, -1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.res, tt.a.Compare(tt.b))
	}
}
