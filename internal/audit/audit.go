// Package audit keeps an append-only trail of every accepted submission.
package audit

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/wordle-tribble/internal/scores"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Recorder writes one line per accepted submission.
type Recorder interface {
	Record(user string, day int, entry scores.Entry)
	Close() error
}

type fileRecorder struct {
	mu     sync.Mutex
	out    io.WriteCloser
	logger *log.Logger
}

// NewFile returns a Recorder appending to path, rotated by size.
// An empty path disables auditing.
func NewFile(path string) Recorder {
	if path == "" {
		return Nop()
	}
	out := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     365, // days
		Compress:   true,
	}
	return newRecorder(out)
}

func newRecorder(out io.WriteCloser) *fileRecorder {
	return &fileRecorder{
		out: out,
		logger: log.NewWithOptions(out, log.Options{
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
		}),
	}
}

func (r *fileRecorder) Record(user string, day int, entry scores.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger.Printf("Day %d\t%s\tscore %s", day, user, entry.Token())
}

func (r *fileRecorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.out.Close()
}

type nop struct{}

// Nop returns a Recorder that discards everything.
func Nop() Recorder { return nop{} }

func (nop) Record(string, int, scores.Entry) {}
func (nop) Close() error                     { return nil }
