package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Reader reads commands from a terminal or a plain stream.
// On a terminal it switches to raw mode for each read so arrow keys return
// immediately; otherwise it reads whole lines.
type Reader struct {
	in   io.Reader
	echo io.Writer
	fd   int
	raw  bool
	br   *bufio.Reader
}

// NewReader creates a reader on in. If in is a terminal, raw mode is used.
func NewReader(in io.Reader, echo io.Writer) *Reader {
	r := &Reader{in: in, echo: echo, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		r.fd = int(f.Fd())
		r.raw = true
	}
	if echo == nil {
		r.echo = io.Discard
	}
	r.br = bufio.NewReader(in)
	return r
}

// NewStdinReader reads commands from the process's stdin
func NewStdinReader() *Reader {
	return NewReader(os.Stdin, os.Stdout)
}

// ReadCommand returns the next command code. Arrow keys are returned as
// "arrow_up" and friends, shifted arrows as "shift_arrow_up". Ctrl+C and
// Ctrl+D return "quit".
func (r *Reader) ReadCommand() (string, error) {
	if !r.raw {
		return r.readLine()
	}

	oldState, err := term.MakeRaw(r.fd)
	if err != nil {
		return "", fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	defer term.Restore(r.fd, oldState)

	return r.readRaw()
}

func (r *Reader) readLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (r *Reader) readRaw() (string, error) {
	b1, err := r.br.ReadByte()
	if err != nil {
		return "", err
	}

	if code, _ := r.tryReadArrowKey(b1); code != "" {
		fmt.Fprint(r.echo, "\r\n")
		return code, nil
	}

	switch b1 {
	case 3, 4:
		fmt.Fprint(r.echo, "\r\n")
		return "quit", nil
	case '\n', '\r':
		return "", nil
	}

	// Regular characters: collect until Enter
	var line []byte
	if b1 >= 32 && b1 < 127 {
		line = append(line, b1)
		fmt.Fprint(r.echo, string(b1))
	}
	for {
		b, err := r.br.ReadByte()
		if err != nil {
			break
		}
		switch {
		case b == 0x1b:
			// arrow keys during text entry are discarded
			r.tryReadArrowKey(b)
		case b == 127 || b == 8:
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Fprint(r.echo, "\b \b")
			}
		case b == '\n' || b == '\r':
			fmt.Fprint(r.echo, "\r\n")
			return string(line), nil
		case b == 3:
			fmt.Fprint(r.echo, "\r\n")
			return "quit", nil
		case b >= 32 && b < 127:
			line = append(line, b)
			fmt.Fprint(r.echo, string(b))
		}
	}
	return string(line), nil
}

// tryReadArrowKey attempts to read an arrow key escape sequence.
// Returns the arrow code if successful, empty string otherwise.
func (r *Reader) tryReadArrowKey(first byte) (string, []byte) {
	if first != 0x1b {
		return "", []byte{first}
	}
	b2, err := r.br.ReadByte()
	if err != nil {
		return "", nil
	}
	// CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "", []byte{first, b2}
	}
	b3, err := r.br.ReadByte()
	if err != nil {
		return "", nil
	}
	prefix := ""
	// Modified arrows arrive as ESC [ 1 ; 2 A
	if b3 == '1' {
		seq := make([]byte, 0, 3)
		for len(seq) < 3 {
			b, err := r.br.ReadByte()
			if err != nil {
				return "", nil
			}
			seq = append(seq, b)
		}
		if seq[0] != ';' {
			return "", nil
		}
		if seq[1] == '2' {
			prefix = "shift_"
		}
		b3 = seq[2]
	}
	if code := arrowCode(b3); code != "" {
		return prefix + code, nil
	}
	return "", nil
}

// arrowCode maps the final byte of an arrow escape sequence to a code
func arrowCode(b byte) string {
	switch b {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}
