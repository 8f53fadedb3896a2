// Package shell implements the line-oriented menu for picking a standard,
// requesting charts and converting samples.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	levels "github.com/tphakala/go-audio-levels"
	"github.com/tphakala/go-audio-levels/internal/logger"
)

// Console text
const (
	standardMenu = "Select the audio standard to plot:\n" +
		"1. SMPTE\n" +
		"2. EBU\n" +
		"3. Exit\n"
	standardPrompt  = "Enter your choice (1, 2, or 3): "
	standardInvalid = "Invalid choice. Please select 1, 2, or 3."

	actionMenu = "1. Linear Scale Plot\n" +
		"2. Logarithmic Scale Plot\n" +
		"3. Convert Floating-point to Integer Audio Value\n" +
		"4. Back to Standard Selection\n"
	actionPrompt  = "Enter your choice (1, 2, 3, or 4): "
	actionInvalid = "Invalid choice. Please select 1, 2, 3, or 4."

	samplePrompt  = "Enter the floating-point audio value: "
	sampleInvalid = "Invalid input. Please enter a valid floating-point number."
	sampleResult  = "The integer audio value is: %d\n"
)

// Plotter renders a chart and returns where it was written.
type Plotter interface {
	Render(std levels.Standard, scale levels.Scale) (string, error)
}

// Shell drives the menu state machine over a line reader and a writer.
type Shell struct {
	in      *bufio.Reader
	out     io.Writer
	plotter Plotter

	state State
	std   levels.Standard
}

// New returns a shell in StateSelectStandard.
func New(in io.Reader, out io.Writer, plotter Plotter) *Shell {
	return &Shell{
		in:      bufio.NewReader(in),
		out:     out,
		plotter: plotter,
		state:   StateSelectStandard,
	}
}

// State returns the current menu state.
func (s *Shell) State() State { return s.state }

// Standard returns the selected standard. Meaningful in StateSelectAction.
func (s *Shell) Standard() levels.Standard { return s.std }

// Run processes input until the user exits or input ends. End of input is
// treated like Exit.
func (s *Shell) Run() error {
	for s.state != StateExit {
		s.printMenu()

		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			logger.Debugf("shell: input closed in %s", s.state)
			s.state = StateExit
			break
		}
		if err != nil {
			return err
		}

		if err := s.handle(line); err != nil {
			return err
		}
	}
	return nil
}

func (s *Shell) handle(input string) error {
	step := Transition(s.state, s.std, input)
	if step.Err != nil {
		s.printInvalid()
		logger.Debugf("shell: %v %q in %s", step.Err, input, s.state)
		return nil
	}

	if step.State != s.state {
		logger.Debugf("shell: %s -> %s (%s)", s.state, step.State, step.Standard)
	}
	s.state, s.std = step.State, step.Standard

	switch step.Action {
	case ActionPlotLinear:
		s.plot(levels.ScaleLinear)
	case ActionPlotLog:
		s.plot(levels.ScaleLog)
	case ActionConvert:
		return s.convert()
	}
	return nil
}

func (s *Shell) printMenu() {
	switch s.state {
	case StateSelectStandard:
		fmt.Fprint(s.out, standardMenu, standardPrompt)
	case StateSelectAction:
		fmt.Fprintf(s.out, "Select an option for %s:\n", s.std)
		fmt.Fprint(s.out, actionMenu, actionPrompt)
	}
}

func (s *Shell) printInvalid() {
	if s.state == StateSelectStandard {
		fmt.Fprintln(s.out, standardInvalid)
		return
	}
	fmt.Fprintln(s.out, actionInvalid)
}

func (s *Shell) plot(scale levels.Scale) {
	path, err := s.plotter.Render(s.std, scale)
	if err != nil {
		logger.Errorf("shell: rendering %s %s chart: %v", s.std, scale, err)
		fmt.Fprintf(s.out, "Failed to render chart: %v\n", err)
		return
	}
	logger.Infof("shell: %s %s chart saved to %s", s.std, scale, path)
	fmt.Fprintf(s.out, "Chart saved to %s\n", path)
}

// convert reads one value and prints its integer form. End of input here
// ends the session like it does at a menu.
func (s *Shell) convert() error {
	fmt.Fprint(s.out, samplePrompt)

	line, err := s.readLine()
	if errors.Is(err, io.EOF) {
		s.state = StateExit
		return nil
	}
	if err != nil {
		return err
	}

	value, err := ParseSample(line)
	if err != nil {
		fmt.Fprintln(s.out, sampleInvalid)
		return nil
	}

	result, err := levels.Convert(s.std, value)
	switch {
	case errors.Is(err, levels.ErrInvalidSample):
		fmt.Fprintln(s.out, sampleInvalid)
		return nil
	case err != nil:
		logger.Errorf("shell: converting %g for %s: %v", value, s.std, err)
		fmt.Fprintf(s.out, "Conversion failed: %v\n", err)
		return nil
	}

	logger.Infof("shell: %s %g -> %d", s.std, value, result)
	fmt.Fprintf(s.out, sampleResult, result)
	return nil
}

// ParseSample parses a floating-point sample, ignoring surrounding spaces.
func ParseSample(input string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, input)
	}
	return v, nil
}

// readLine returns one line without its terminator. A final line without a
// newline is returned normally; io.EOF is returned only when nothing is left.
func (s *Shell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
