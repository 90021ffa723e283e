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

package emulator

import (
	"flag"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/andreas-jonsson/virtualc8/emulator/processor"
)

const (
	DefaultCyclesPerFrame = 12
	DefaultFrameRate      = 60
)

// Config is the machine setup. Start collects it from the command line.
type Config struct {
	CyclesPerFrame int
	FrameRate      int
	Quirks         processor.Quirks

	Program      string
	LogFile      string
	ValidateFile string
}

var flagConfig = DefaultConfig()

func DefaultConfig() Config {
	return Config{
		CyclesPerFrame: DefaultCyclesPerFrame,
		FrameRate:      DefaultFrameRate,
	}
}

func lookupIntEnv(name string, v *int) {
	if p, ok := os.LookupEnv(name); ok {
		if n, err := strconv.Atoi(p); err == nil && n > 0 {
			*v = n
		} else {
			log.Printf("Invalid value for %s: %q", name, p)
		}
	}
}

func init() {
	lookupIntEnv("VC8_CYCLES_PER_FRAME", &flagConfig.CyclesPerFrame)
	lookupIntEnv("VC8_FRAME_RATE", &flagConfig.FrameRate)

	flag.IntVar(&flagConfig.CyclesPerFrame, "cpf", flagConfig.CyclesPerFrame, "Instructions executed per frame")
	flag.IntVar(&flagConfig.FrameRate, "hz", flagConfig.FrameRate, "Frames per second")
	flag.BoolVar(&flagConfig.Quirks.Shift, "shift-quirk", false, "8XY6 and 8XYE shift VY into VX")
	flag.BoolVar(&flagConfig.Quirks.Jump, "jump-quirk", false, "BNNN jumps relative to VX instead of V0")
	flag.StringVar(&flagConfig.LogFile, "log", "", "Write log output to file")
	flag.StringVar(&flagConfig.ValidateFile, "validate", "", "Write an execution trace to file (.gz is compressed)")
}

// FlagConfig returns the configuration given on the command line. Call it
// after flag.Parse.
func FlagConfig() Config {
	c := flagConfig
	c.Program = flag.Arg(0)
	return c
}

func (c Config) FrameDuration() time.Duration {
	if c.FrameRate <= 0 {
		return time.Second / DefaultFrameRate
	}
	return time.Second / time.Duration(c.FrameRate)
}
