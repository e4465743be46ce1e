// Package journal appends a compressed JSONL record of every player event.
// It is write-only: nothing in the game reads it back.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"

	"worldofbits/pkg/engine/world"
)

// Entry is one journalled event
type Entry struct {
	Time    time.Time  `json:"time"`
	Seq     uint64     `json:"seq"`
	Kind    string     `json:"kind"`
	Cell    world.Cell `json:"cell"`
	Outcome string     `json:"outcome,omitempty"`
	Held    int        `json:"held"`
	Value   int        `json:"value"`
}

// Recorder receives journal entries
type Recorder interface {
	Record(e Entry) error
	Close() error
}

// Nop discards every entry
var Nop Recorder = nop{}

type nop struct{}

func (nop) Record(Entry) error { return nil }
func (nop) Close() error       { return nil }

// Writer writes entries to hourly zstd-compressed JSONL files under a directory
type Writer struct {
	baseDir string
	prefix  string
	now     func() time.Time

	mu      sync.Mutex
	seq     uint64
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
}

// NewWriter creates a writer; files are created lazily on the first entry
func NewWriter(baseDir, prefix string) *Writer {
	if prefix == "" {
		prefix = "events"
	}
	return &Writer{
		baseDir: baseDir,
		prefix:  prefix,
		now:     time.Now,
	}
}

// Record stamps e with the time and a sequence number and appends it
func (w *Writer) Record(e Entry) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := w.now().UTC()
	hour := now.Format("2006-01-02-15")
	if hour != w.curHour {
		if err := w.rotateLocked(hour); err != nil {
			return err
		}
	}

	w.seq++
	e.Seq = w.seq
	if e.Time.IsZero() {
		e.Time = now
	}
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

// Close flushes and closes the current file
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

// Path returns the file entries for hour are written to
func (w *Writer) Path(hour time.Time) string {
	return w.pathForHour(hour.UTC().Format("2006-01-02-15"))
}

func (w *Writer) rotateLocked(hour string) error {
	if err := w.closeLocked(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(w.pathForHour(hour), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	w.f = f
	w.enc = enc
	w.w = bufio.NewWriterSize(enc, 32*1024)
	w.curHour = hour
	return nil
}

func (w *Writer) closeLocked() error {
	var err error
	if w.w != nil {
		_ = w.w.Flush()
	}
	if w.enc != nil {
		err = w.enc.Close()
		w.enc = nil
	}
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}
	w.w = nil
	w.curHour = ""
	return err
}

func (w *Writer) pathForHour(hour string) string {
	return filepath.Join(w.baseDir, fmt.Sprintf("%s-%s.jsonl.zst", w.prefix, hour))
}
