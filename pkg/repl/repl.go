// Package repl implements the line-oriented front end: it prints the
// prompt, reads one line at a time, and writes each response as
// newline-terminated lines.
package repl

import (
	"bufio"
	"errors"
	"io"
	"rowstore/pkg/database"
	"strings"
)

// Prompt is written before every read, without a newline.
const Prompt = "db > "

// ErrInputClosed is returned by Run when input ends before .exit.
var ErrInputClosed = errors.New("input closed before .exit")

// REPL drives a Dispatcher from a reader and writes responses to a writer.
type REPL struct {
	dispatcher *Dispatcher
	in         *bufio.Reader
	out        *bufio.Writer
}

func New(db *database.Database, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		dispatcher: NewDispatcher(db),
		in:         bufio.NewReader(in),
		out:        bufio.NewWriter(out),
	}
}

// Run processes lines until .exit, end of input, or a fatal error.
// It returns nil only after .exit. Buffered output is flushed on every path.
func (r *REPL) Run() (err error) {
	defer func() {
		if flushErr := r.out.Flush(); err == nil {
			err = flushErr
		}
	}()

	for {
		if _, err := r.out.WriteString(Prompt); err != nil {
			return err
		}
		if err := r.out.Flush(); err != nil {
			return err
		}

		line, ok, err := r.readLine()
		if err != nil {
			return err
		}
		if !ok {
			if _, err := r.out.WriteString("Error reading input\n"); err != nil {
				return err
			}
			return ErrInputClosed
		}

		resp, err := r.dispatcher.Dispatch(line)
		if err != nil {
			return err
		}
		if resp.Exit {
			return nil
		}

		for _, l := range resp.Lines {
			if _, err := r.out.WriteString(l + "\n"); err != nil {
				return err
			}
		}
	}
}

// readLine returns the next line without its terminator. ok is false once
// input is exhausted; a final unterminated line is still returned.
func (r *REPL) readLine() (string, bool, error) {
	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}
