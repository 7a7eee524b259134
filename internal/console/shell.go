// Package console provides the interactive text menu for the smart home
// controller.
//
// The shell owns all presentation: it prints the menu and prompts, parses
// whitespace-separated input, calls the controller with already-parsed
// arguments and renders the results. The controller itself never touches a
// terminal.
//
// Input is read line by line on a separate goroutine, so a cancelled context
// ends the shell even while it waits at a prompt. Several answers may share a
// line ("1 7 lamp"); when one of them fails to parse, the rest of that line is
// dropped.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nerrad567/smarthome-core/internal/controller"
	"github.com/nerrad567/smarthome-core/internal/device"
)

// Menu choices.
const (
	choiceAddLight = iota + 1
	choiceAddFan
	choiceAddHeater
	choiceAddDoor
	choiceRemove
	choiceTurnOn
	choiceTurnOff
	choiceAdjust
	choiceShowAll
	choiceStats
	choiceExit
)

const menu = `
=== Smart Home Control System ===
1. Add Light
2. Add Fan
3. Add Heater
4. Add Automatic Door
5. Remove Device
6. Turn On Device
7. Turn Off Device
8. Adjust Device Settings
9. Show All Devices
10. Show Statistics
11. Exit
Enter your choice: `

// addChoices maps the add-device menu entries to device kinds.
var addChoices = map[int]device.Kind{
	choiceAddLight:  device.KindLight,
	choiceAddFan:    device.KindFan,
	choiceAddHeater: device.KindHeater,
	choiceAddDoor:   device.KindAutomaticDoor,
}

// errInvalidNumber is returned by readInt when the next token is not an integer.
var errInvalidNumber = errors.New("invalid number")

// Shell runs the interactive menu against a controller.
type Shell struct {
	ctrl *controller.Controller
	in   io.Reader
	out  io.Writer

	lines   <-chan []string // fields of each non-blank input line
	pending []string        // unread fields of the current line
	readErr error           // scanner error, valid once lines is closed
}

// New creates a shell reading whitespace-separated tokens from in and
// writing to out.
func New(ctrl *controller.Controller, in io.Reader, out io.Writer) *Shell {
	return &Shell{ctrl: ctrl, in: in, out: out}
}

// Run shows the menu and handles choices until the user exits, input ends
// or ctx is cancelled. Cancellation is noticed at any prompt; the reader
// goroutine then exits once the next line arrives or input is closed.
// Run returns nil on exit and cancellation, and the read error, if any, when
// input ends.
func (s *Shell) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	s.lines = s.scan(done)
	s.pending = nil

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		s.print(menu)
		choice, err := s.readInt(ctx)
		if stop, runErr := s.stopped(err); stop {
			return runErr
		}
		if err != nil {
			s.discardLine()
			s.println("Invalid choice. Please try again.")
			continue
		}

		if choice == choiceExit {
			s.println("Exiting the system...")
			return nil
		}

		err = s.handle(ctx, choice)
		if stop, runErr := s.stopped(err); stop {
			return runErr
		}
		if err != nil {
			s.discardLine()
			s.println("Invalid number.")
		}
	}
}

// scan reads in on its own goroutine and sends the fields of each non-blank
// line until input ends or done is closed.
func (s *Shell) scan(done <-chan struct{}) <-chan []string {
	lines := make(chan []string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			fields := strings.Fields(scanner.Text())
			if len(fields) == 0 {
				continue
			}
			select {
			case lines <- fields:
			case <-done:
				return
			}
		}
		s.readErr = scanner.Err()
	}()
	return lines
}

// stopped reports whether err ends the session, and what Run should return.
func (s *Shell) stopped(err error) (bool, error) {
	switch {
	case errors.Is(err, io.EOF):
		return true, s.readErr
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return true, nil
	default:
		return false, nil
	}
}

// handle performs one menu choice. It returns io.EOF when input ends
// mid-choice, the context error when cancelled and errInvalidNumber when an
// argument cannot be parsed.
func (s *Shell) handle(ctx context.Context, choice int) error {
	if kind, ok := addChoices[choice]; ok {
		return s.addDevice(ctx, kind)
	}

	switch choice {
	case choiceRemove:
		id, err := s.promptInt(ctx, "Enter Device ID to remove: ")
		if err != nil {
			return err
		}
		s.report(s.ctrl.RemoveDevice(id))

	case choiceTurnOn, choiceTurnOff:
		on := choice == choiceTurnOn
		prompt := "Enter Device ID to turn OFF: "
		if on {
			prompt = "Enter Device ID to turn ON: "
		}
		id, err := s.promptInt(ctx, prompt)
		if err != nil {
			return err
		}
		s.report(s.ctrl.ControlDevice(id, on))

	case choiceAdjust:
		return s.adjustSettings(ctx)

	case choiceShowAll:
		s.showAll()

	case choiceStats:
		s.showStats()

	default:
		s.println("Invalid choice. Please try again.")
	}
	return nil
}

func (s *Shell) addDevice(ctx context.Context, kind device.Kind) error {
	s.print(fmt.Sprintf("Enter %s ID and Name: ", kind.Label()))
	id, err := s.readInt(ctx)
	if err != nil {
		return err
	}
	name, err := s.readToken(ctx)
	if err != nil {
		return err
	}

	d, err := device.New(kind, id, name)
	if err != nil {
		s.println("Error: " + err.Error())
		return nil
	}
	s.report(s.ctrl.AddDevice(d))
	return nil
}

func (s *Shell) adjustSettings(ctx context.Context) error {
	id, err := s.promptInt(ctx, "Enter Device ID to adjust settings: ")
	if err != nil {
		return err
	}

	// Look the device up first so the prompt matches its kind.
	d, err := s.ctrl.GetDevice(id)
	if err != nil {
		s.report(device.Result{}, err)
		return nil
	}

	value, err := s.promptInt(ctx, device.SettingsPrompt(d.Kind))
	if err != nil {
		if errors.Is(err, errInvalidNumber) && d.Kind == device.KindAutomaticDoor {
			s.discardLine()
			s.println("Invalid option!")
			return nil
		}
		return err
	}
	s.report(s.ctrl.AdjustDeviceSettings(id, value))
	return nil
}
func (s *Shell) showAll() {
	n := 0
	for d := range s.ctrl.Devices() {
		s.println(d.String())
		n++
	}
	if n == 0 {
		s.println("No devices registered.")
	}
}

func (s *Shell) showStats() {
	stats := s.ctrl.Stats()
	s.println(fmt.Sprintf("Devices: %d (%d ON)", stats.Total, stats.On))
	for _, k := range device.AllKinds() {
		s.println(fmt.Sprintf("  %s: %d", k.Label(), stats.ByKind[k]))
	}
}

// report renders the outcome of a controller call.
func (s *Shell) report(res device.Result, err error) {
	switch {
	case err == nil:
		s.println(res.Message)
	case errors.Is(err, controller.ErrDeviceNotFound):
		s.println("Device not found.")
	case errors.Is(err, device.ErrInvalidOption):
		s.println("Invalid option!")
	case errors.Is(err, controller.ErrDeviceExists):
		s.println(fmt.Sprintf("Device ID %d already exists.", res.DeviceID))
	default:
		s.println("Error: " + err.Error())
	}
}

func (s *Shell) promptInt(ctx context.Context, prompt string) (int, error) {
	s.print(prompt)
	return s.readInt(ctx)
}

// readToken returns the next input field, waiting for a new line when the
// current one is used up.
func (s *Shell) readToken(ctx context.Context) (string, error) {
	for len(s.pending) == 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case line, ok := <-s.lines:
			if !ok {
				return "", io.EOF
			}
			s.pending = line
		}
	}

	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok, nil
}

// discardLine drops the unread fields of the current line.
func (s *Shell) discardLine() {
	s.pending = nil
}

func (s *Shell) readInt(ctx context.Context) (int, error) {
	tok, err := s.readToken(ctx)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidNumber, tok)
	}
	return n, nil
}

func (s *Shell) print(text string) {
	fmt.Fprint(s.out, text)
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}
