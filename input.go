// input.go - decide where the text to encode comes from.
//
// To the extent possible under law, Ivan Markin waived all copyright
// and related or neighboring rights to this module of qrize, using the creative
// commons "cc0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package qrize

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"
)

// StdinMarker as the data argument forces reading standard input.
const StdinMarker = "-"

// Prompt is shown before reading an interactive line.
const Prompt = "Enter the text or URL: "

// Source tells where a payload was taken from.
type Source int

const (
	FromArgument Source = iota
	FromStdin
	FromPrompt
)

func (s Source) String() string {
	switch s {
	case FromArgument:
		return "argument"
	case FromStdin:
		return "stdin"
	case FromPrompt:
		return "prompt"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// Resolver reads the payload from an argument, piped input or an
// interactive prompt.
type Resolver struct {
	Stdin io.Reader
	// Stdout receives the option hint and the prompt.
	Stdout io.Writer
	// Interactive reports whether Stdin is a terminal.
	Interactive bool
}

// Resolve returns the payload for arg. A prompt line may carry
// "-o NAME", "--output NAME" or "--output=NAME", which replaces
// p.Output. An empty payload yields ErrNoData.
func (r *Resolver) Resolve(arg string, p *Parameters) (string, Source, error) {
	if arg != "" && arg != StdinMarker {
		return arg, FromArgument, nil
	}
	if arg == StdinMarker || !r.Interactive {
		b, err := io.ReadAll(r.Stdin)
		if err != nil {
			return "", FromStdin, fmt.Errorf("unable to read stdin: %w", err)
		}
		data := strings.TrimSpace(string(b))
		if data == "" {
			return "", FromStdin, ErrNoData
		}
		return data, FromStdin, nil
	}

	WriteHint(r.Stdout, *p)
	fmt.Fprint(r.Stdout, Prompt)
	line, err := bufio.NewReader(r.Stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", FromPrompt, fmt.Errorf("unable to read input: %w", err)
	}
	data, output := SplitOutputOverride(strings.TrimSpace(line))
	if output != "" {
		p.Output = output
	}
	if data == "" {
		return "", FromPrompt, ErrNoData
	}
	return data, FromPrompt, nil
}

// SplitOutputOverride pulls an output override out of an interactive
// line. Without an override the line is returned untouched; with one,
// the remaining tokens are joined by single spaces.
func SplitOutputOverride(line string) (data, output string) {
	parts, err := shellquote.Split(line)
	if err != nil {
		parts = strings.Fields(line)
	}
	rest := make([]string, 0, len(parts))
	for i := 0; i < len(parts); i++ {
		tok := parts[i]
		switch {
		case (tok == "-o" || tok == "--output") && i+1 < len(parts):
			output = parts[i+1]
			i++
		case strings.HasPrefix(tok, "--output="):
			output = strings.TrimPrefix(tok, "--output=")
		default:
			rest = append(rest, tok)
		}
	}
	if output == "" {
		return line, ""
	}
	return strings.TrimSpace(strings.Join(rest, " ")), output
}

// WriteHint lists the appearance options and their current values.
func WriteHint(w io.Writer, p Parameters) {
	fmt.Fprintln(w, "\nYou can customize the QR appearance with these options:")
	fmt.Fprintf(w, "  box size (module pixels): --box-size %d  # default %d\n", p.BoxSize, p.BoxSize)
	fmt.Fprintf(w, "  border (white margin in modules): --border %d  # default %d\n", p.Border, p.Border)
	fmt.Fprintf(w, "  fill color: --fill-color %s  # default %s\n", p.FillColor, p.FillColor)
	fmt.Fprintf(w, "  background color: --back-color %s  # default %s\n", p.BackColor, p.BackColor)
	fmt.Fprintf(w, "  error correction: --error-correction %s  # default %s\n", p.Level, p.Level)
}
