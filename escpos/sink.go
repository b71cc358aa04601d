package escpos

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogSink writes audit records to an ordered set of byte-stream consumers —
// typically a log file and the console — in call order. Each record takes
// the lock only for the duration of its own write; a LogSink never holds a
// lock across a full Decoder.Feed call (spec.md §9).
type LogSink struct {
	mu      sync.Mutex
	writers []io.Writer

	warnOnce sync.Once
}

// NewLogSink wraps the given writers. Writers are written to in the order
// given, once per record.
func NewLogSink(writers ...io.Writer) *LogSink {
	return &LogSink{writers: writers}
}

// NewFileConsoleSink creates dir/escpos_YYYYMMDD_HHMMSS.log (local time,
// seconds resolution), creating dir if it does not exist, and duplicates
// every record to console as well (spec.md §6).
func NewFileConsoleSink(dir string, console io.Writer) (*LogSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("escpos: creating log directory %s: %w", dir, err)
	}
	name := fmt.Sprintf("escpos_%s.log", time.Now().Format("20060102_150405"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("escpos: opening log file: %w", err)
	}
	return NewLogSink(f, console), nil
}

// write fans a single formatted line out to every configured writer. A
// write failure on any one writer is swallowed (spec.md §7) and reported at
// most once per session via log.Print, so a flaky sink never interrupts
// decoding.
func (s *LogSink) write(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, w := range s.writers {
		if _, err := io.WriteString(w, line); err != nil {
			s.warnOnce.Do(func() {
				log.Printf("escpos: audit sink write failed, further failures on this sink are not reported: %v", err)
			})
		}
	}
}

func (s *LogSink) Startup() {
	s.write(fmt.Sprintf("%s PKT  decoder session started\n", isoMillis(time.Now())))
}

func (s *LogSink) Packet(data []byte) {
	s.write(formatPacket(time.Now(), data))
}

func (s *LogSink) Command(cmd Command) {
	s.write(formatCommand(cmd.Timestamp, cmd))
}

func (s *LogSink) Response(raw []byte, description string) {
	s.write(formatResponse(time.Now(), raw, description))
}
