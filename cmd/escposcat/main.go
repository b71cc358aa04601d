/* escposcat is a developer harness for the BT-B36 ESC/POS decoder.
 *
 * It opens a pty, execs a child command whose stdout stands in for a
 * capture source (anything that writes raw ESC/POS bytes — a fixture
 * replay tool, a serial bridge, `cat some-capture.bin`), and feeds the
 * pty's output to escpos.Decoder exactly as a BLE write characteristic
 * would feed bytes to it, one MTU-sized fragment at a time. Typed stdin is
 * also forwarded into the pty so a developer can interactively poke the
 * decoder with raw bytes.
 *
 * This mirrors the shape of the teacher program it was built from: open a
 * pty, exec a child, read the child's output in a loop.
 */
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"golang.org/x/term"

	"escposemu/escpos"
	"escposemu/replay"
)

// stdoutNotifier prints each synthesized notification the way a developer
// watching a real BLE notify characteristic would see it.
type stdoutNotifier struct{}

func (stdoutNotifier) Notify(data []byte) error {
	fmt.Printf("NOTIFY <- % x\n", data)
	return nil
}

func main() {
	logDir := flag.String("logdir", "logs", "directory for the audit log file")
	mtu := flag.Int("mtu", 20, "simulated BLE write-characteristic MTU in bytes")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatal("usage: escposcat [-logdir dir] [-mtu n] <command> [args...]")
	}

	sink, err := escpos.NewFileConsoleSink(*logDir, os.Stdout)
	if err != nil {
		log.Fatalf("escposcat: %v", err)
	}
	decoder := escpos.New(sink)

	ptmx, pts, err := pty.Open()
	if err != nil {
		log.Fatalf("escposcat: opening pty: %v", err)
	}
	defer ptmx.Close()

	cmd := exec.Command(flag.Arg(0), flag.Args()[1:]...)
	cmd.Stdin = pts
	cmd.Stdout = pts
	cmd.Stderr = pts

	if err := cmd.Start(); err != nil {
		log.Fatalf("escposcat: command failed to start: %v", err)
	}
	_ = pts.Close()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			log.Printf("escposcat: failed to put stdin in raw mode: %v", err)
		} else {
			defer term.Restore(int(os.Stdin.Fd()), oldState)
		}
		go func() {
			if _, err := io.Copy(ptmx, os.Stdin); err != nil {
				log.Printf("escposcat: stdin forwarding stopped: %v", err)
			}
		}()
	}

	session := replay.New(ptmx, decoder, stdoutNotifier{}, *mtu)
	if err := session.Run(context.Background()); err != nil {
		log.Printf("escposcat: session ended: %v", err)
	}

	if err := cmd.Wait(); err != nil {
		log.Printf("escposcat: command exited with: %v", err)
	}
}
