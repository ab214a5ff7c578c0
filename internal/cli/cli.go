package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Utility-Gods/charswap/internal/app"
	"github.com/Utility-Gods/charswap/pkg/types"
)

const (
	promptLine = "Enter string: "
	promptFrom = "Enter character to be replaced = "
	promptTo   = "Enter replacing character = "
)

// RunCLI runs the replace loop on in and out until the stop line is read or
// the input ends. Both endings return nil.
func RunCLI(a *app.App, in io.Reader, out io.Writer) error {
	r := bufio.NewReader(in)
	line := &types.Line{}

	for {
		if _, err := io.WriteString(out, promptLine); err != nil {
			return err
		}
		text, err := readLine(r)
		if err != nil {
			return ignoreEOF(err)
		}

		line.Set(text)
		if line.IsSentinel() {
			return nil
		}

		var (
			pair types.Pair
			rest string
		)
		if pair.From, rest, err = readChar(r, out, promptFrom, rest); err != nil {
			return ignoreEOF(err)
		}
		// whatever follows the replacing character on its line is dropped
		if pair.To, _, err = readChar(r, out, promptTo, rest); err != nil {
			return ignoreEOF(err)
		}

		res := a.Apply(line, pair)
		if _, err := fmt.Fprintf(out, "New string: %s\n", res.Output); err != nil {
			return err
		}
	}
}

// readLine returns the next line without its terminator. A final line with
// no terminator is returned as is; io.EOF is returned only when nothing was
// left to read.
func readLine(r *bufio.Reader) (string, error) {
	s, err := r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || s == "") {
		return "", err
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// readChar prompts once, then returns the first non-whitespace byte found in
// pending or, when pending is blank, in the next non-blank line. The unread
// remainder of that line is returned with it.
func readChar(r *bufio.Reader, out io.Writer, prompt, pending string) (byte, string, error) {
	if _, err := io.WriteString(out, prompt); err != nil {
		return 0, "", err
	}
	s := pending
	for {
		if s = strings.TrimLeft(s, " \t\n\v\f\r"); s != "" {
			return s[0], s[1:], nil
		}
		var err error
		if s, err = readLine(r); err != nil {
			return 0, "", err
		}
	}
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
