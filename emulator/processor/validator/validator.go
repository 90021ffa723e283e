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

package validator

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log"
	"strings"

	"github.com/andreas-jonsson/virtualc8/emulator/memory"
	"github.com/andreas-jonsson/virtualc8/emulator/processor"
	"github.com/spf13/afero"
)

// Recorder writes one JSON event per executed instruction. The output can be
// compared against traces from a reference interpreter.
type Recorder struct {
	inScope      bool
	currentEvent Event

	outputChan chan Event
	quitChan   chan error
}

// Create opens a trace file on fs. Names ending in .gz are compressed.
func Create(fs afero.Fs, name string, queueSize, bufferSize int) (*Recorder, error) {
	fp, err := fs.Create(name)
	if err != nil {
		return nil, err
	}

	var w io.WriteCloser = fp
	if strings.HasSuffix(name, ".gz") {
		w = &gzipFile{gzip.NewWriter(fp), fp}
	}
	return NewRecorder(w, queueSize, bufferSize), nil
}

type gzipFile struct {
	*gzip.Writer
	fp io.Closer
}

func (f *gzipFile) Close() error {
	if err := f.Writer.Close(); err != nil {
		f.fp.Close()
		return err
	}
	return f.fp.Close()
}

func NewRecorder(w io.WriteCloser, queueSize, bufferSize int) *Recorder {
	r := &Recorder{
		outputChan: make(chan Event, queueSize),
		quitChan:   make(chan error, 1),
	}

	go func() {
		var (
			buffer bytes.Buffer
			err    error
		)

		defer func() {
			if _, cerr := io.Copy(w, &buffer); err == nil {
				err = cerr
			}
			if cerr := w.Close(); err == nil {
				err = cerr
			}
			r.quitChan <- err
		}()

		enc := json.NewEncoder(&buffer)

		for ev := range r.outputChan {
			if err != nil {
				continue
			}
			if err = enc.Encode(ev); err != nil {
				log.Print(err)
				continue
			}
			if buffer.Len() >= bufferSize {
				if _, err = io.Copy(w, &buffer); err != nil {
					log.Print(err)
				}
			}
		}
	}()
	return r
}

func (r *Recorder) Begin(regs processor.Registers) {
	r.inScope = true
	r.currentEvent = Event{Before: newRegsInfo(regs)}
}

func (r *Recorder) WriteByte(addr memory.Address, data byte) {
	if !r.inScope {
		return
	}
	r.currentEvent.Writes = append(r.currentEvent.Writes, newMemOp(addr, data))
}

func (r *Recorder) End(c processor.Cycle, regs processor.Registers) {
	if !r.inScope {
		return
	}
	r.inScope = false

	ev := &r.currentEvent
	ev.Address = uint16(c.Address)
	ev.Opcode = c.Opcode
	ev.Status = c.Status.String()
	ev.After = newRegsInfo(regs)
	r.outputChan <- *ev
}

func (r *Recorder) Discard() {
	r.inScope = false
}

// Close flushes all pending events and closes the output.
func (r *Recorder) Close() error {
	close(r.outputChan)
	return <-r.quitChan
}
