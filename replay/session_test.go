package replay

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escposemu/escpos"
)

func pipe(t *testing.T) (*os.File, *os.File, error) {
	t.Helper()
	return os.Pipe()
}

type recordingNotifier struct {
	notified [][]byte
}

func (r *recordingNotifier) Notify(data []byte) error {
	r.notified = append(r.notified, append([]byte(nil), data...))
	return nil
}

func TestSessionDeliversResponsesAndCloses(t *testing.T) {
	r, w, err := pipe(t)
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	decoder := escpos.New(nil)
	session := New(r, decoder, notifier, 8)

	go func() {
		_, _ = w.Write([]byte{0x10, 0x04, 0x01})
		w.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = session.Run(ctx)
	require.NoError(t, err)
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, []byte{0x16}, notifier.notified[0])
}

func TestSessionSendsDefaultACKWhenNoResponse(t *testing.T) {
	r, w, err := pipe(t)
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	decoder := escpos.New(nil)
	session := New(r, decoder, notifier, 8)

	go func() {
		_, _ = w.Write([]byte{0x1B, 0x40}) // ESC @, no scripted response
		w.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = session.Run(ctx)
	require.NoError(t, err)
	require.Len(t, notifier.notified, 1)
	assert.Equal(t, []byte{0x00}, notifier.notified[0])
}

func TestSessionRunStopsOnContextCancel(t *testing.T) {
	r, _, err := pipe(t)
	require.NoError(t, err)

	notifier := &recordingNotifier{}
	decoder := escpos.New(nil)
	session := New(r, decoder, notifier, 8)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = session.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
