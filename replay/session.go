// Package replay drives an escpos.Decoder from a pty, standing in for the
// fragmented byte stream a real BLE write characteristic would deliver.
// It is a development/test harness, not part of the BLE peripheral stack
// itself (see ble package doc and spec.md §1's Out of scope list).
package replay

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log"
	"os"
	"syscall"

	"github.com/creack/pty"

	"escposemu/ble"
	"escposemu/escpos"
)

// Session reads from src in MTU-sized chunks and feeds each chunk to a
// Decoder, exactly as a BLE peripheral stack would hand write-characteristic
// payloads to Decoder.Feed one packet at a time.
type Session struct {
	decoder *escpos.Decoder
	notify  ble.Notifier

	src *os.File
	raw bytes.Buffer

	mtu int
}

// New wraps src (typically the master side of a pty) for decoding. mtu
// bounds how many bytes are read per Feed call, simulating a BLE
// attribute-write MTU; a non-positive mtu falls back to a conservative
// default.
func New(src *os.File, decoder *escpos.Decoder, notify ble.Notifier, mtu int) *Session {
	if mtu <= 0 {
		mtu = 20
	}
	s := &Session{decoder: decoder, notify: notify, src: src, mtu: mtu}

	if err := pty.Setsize(src, &pty.Winsize{Rows: 1, Cols: 0}); err != nil {
		log.Printf("replay: pty.Setsize failed: %v", err)
	}

	return s
}

// Run reads from the pty until ctx is cancelled or the pty closes, feeding
// every chunk read to the decoder and driving Notifier per the caller
// contract in spec.md §6: one Notify per synthesized response, or a single
// default ACK when a burst decoded at least one non-malformed command but
// produced no scripted response.
func (s *Session) Run(ctx context.Context) error {
	buf := make([]byte, s.mtu)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := s.src.Read(buf)
		if n > 0 {
			chunk := append([]byte(nil), buf[:n]...)
			s.raw.Write(chunk)
			if notifyErr := s.deliver(chunk); notifyErr != nil {
				log.Printf("replay: notify failed: %v", notifyErr)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, syscall.EIO) {
				return nil
			}
			return err
		}
	}
}

func (s *Session) deliver(chunk []byte) error {
	commands, responses := s.decoder.Feed(chunk)

	for _, resp := range responses {
		if err := s.notify.Notify(resp); err != nil {
			return err
		}
	}

	if len(responses) == 0 && anyWellFormed(commands) {
		return s.notify.Notify(ble.DefaultACK)
	}
	return nil
}

func anyWellFormed(commands []escpos.Command) bool {
	for _, c := range commands {
		if !c.Malformed {
			return true
		}
	}
	return false
}
