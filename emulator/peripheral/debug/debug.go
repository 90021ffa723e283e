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

package debug

import (
	"io"
	"log"
	"os"
	"sync"

	"github.com/spf13/afero"
)

var (
	internalLogger = &Logger{out: os.Stderr}
	Log            = log.New(internalLogger, "", 0)
)

// Logger is the sink for the standard logger. Output can be muted while a
// frontend owns the terminal, unless it is redirected to a file.
type Logger struct {
	sync.Mutex

	out   io.Writer
	file  io.Closer
	muted bool
}

func (l *Logger) Write(p []byte) (n int, err error) {
	l.Lock()
	defer l.Unlock()

	if l.muted && l.file == nil {
		return len(p), nil
	}
	return l.out.Write(p)
}

func init() {
	log.SetOutput(internalLogger)
}

func MuteLogging(b bool) {
	internalLogger.Lock()
	internalLogger.muted = b
	internalLogger.Unlock()
}

// SetOutput replaces the log destination and closes a previously opened log file.
func SetOutput(w io.Writer) error {
	internalLogger.Lock()
	defer internalLogger.Unlock()

	var err error
	if internalLogger.file != nil {
		err = internalLogger.file.Close()
		internalLogger.file = nil
	}
	internalLogger.out = w
	return err
}

// OpenLogFile redirects all logging to the named file.
func OpenLogFile(fs afero.Fs, name string) error {
	fp, err := fs.Create(name)
	if err != nil {
		return err
	}
	if err := SetOutput(fp); err != nil {
		log.Print(err)
	}

	internalLogger.Lock()
	internalLogger.file = fp
	internalLogger.Unlock()
	return nil
}

func Close() error {
	return SetOutput(os.Stderr)
}
