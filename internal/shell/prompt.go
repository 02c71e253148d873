package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"farekiosk/internal/utils"
)

// ErrInputClosed is returned once the input stream has no more lines.
var ErrInputClosed = errors.New("input closed")

// Prompter asks questions on out and reads answers line by line from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}
	}
	return utils.TrimOrEmpty(line), nil
}

// IntInRange re-prompts until the answer is a whole number within [min, max].
func (p *Prompter) IntInRange(prompt string, min, max int) (int, error) {
	for {
		raw, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if !utils.IsDigits(raw) {
			fmt.Fprintln(p.out, "Please enter a whole number.")
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value < min || value > max {
			fmt.Fprintf(p.out, "Please enter a number from %d to %d.\n", min, max)
			continue
		}
		return value, nil
	}
}

// NonNegativeInt re-prompts until the answer is a whole number from 0 to max.
func (p *Prompter) NonNegativeInt(prompt string, max int) (int, error) {
	for {
		raw, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if raw == "" {
			fmt.Fprintln(p.out, "Please enter a number (0 or more).")
			continue
		}
		if !utils.IsDigits(raw) {
			fmt.Fprintln(p.out, "Please enter a whole number (0 or more).")
			continue
		}
		value, err := strconv.Atoi(raw)
		if err != nil || value > max {
			fmt.Fprintf(p.out, "Please enter a number from 0 to %d.\n", max)
			continue
		}
		return value, nil
	}
}

// Confirm reports whether the answer is "y", case-insensitive.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	raw, err := p.readLine(prompt)
	if err != nil {
		return false, err
	}
	return strings.ToLower(raw) == "y", nil
}
