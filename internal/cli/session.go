// Package cli implements the interactive calculator session.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/internal/presentation/tui"
	"github.com/aretw0/tally/pkg/domain"
)

// RunOptions configures an interactive session.
type RunOptions struct {
	// UnitsPath optionally points at a units file with extra conversions.
	UnitsPath string
	// Debug enables engine event logging on stderr.
	Debug bool
}

// RunSession starts a calculator session on stdin/stdout and blocks until
// the user exits or input is exhausted.
func RunSession(opts RunOptions) error {
	var logger *slog.Logger
	if opts.Debug {
		logger = logging.New(slog.LevelDebug)
	} else {
		logger = logging.NewNop()
	}

	engineOpts := []tally.Option{tally.WithLogger(logger)}
	if opts.UnitsPath != "" {
		engineOpts = append(engineOpts, tally.WithUnitsFile(opts.UnitsPath))
	}

	eng, err := tally.New(engineOpts...)
	if err != nil {
		return fmt.Errorf("error initializing tally: %w", err)
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		tui.PrintBanner(tally.Version)
	}

	return runLoop(eng, os.Stdin, os.Stdout, interactive)
}

// runLoop is the session event loop, split out so tests can drive it with
// buffered IO.
func runLoop(eng *tally.Engine, in io.Reader, out io.Writer, interactive bool) error {
	renderHelp := tui.NewRenderer()
	scanner := bufio.NewScanner(in)

	for {
		if interactive {
			fmt.Fprintf(out, "%s> ", strings.ToLower(eng.Mode().String()))
		}
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "exit" || line == "quit":
			return nil

		case line == "help":
			rendered, err := renderHelp(helpText)
			if err != nil {
				rendered = helpText
			}
			fmt.Fprintln(out, rendered)

		case line == "layout":
			fmt.Fprint(out, tui.RenderGrid(eng.CurrentLayout(), eng.Conversions()))

		case strings.HasPrefix(line, "mode "):
			arg := strings.TrimSpace(strings.TrimPrefix(line, "mode "))
			mode, err := parseModeArg(arg)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			layout := eng.SwitchMode(mode)
			fmt.Fprint(out, tui.RenderGrid(layout, eng.Conversions()))

		case line == "C" || line == "clear":
			eng.PressClear()
			fmt.Fprintln(out, "(cleared)")

		case isConversion(eng, line):
			display, err := eng.PressConvert(line)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, display)

		default:
			fmt.Fprintln(out, pressLine(eng, line))
		}
	}
}

// pressLine feeds a typed line to the engine one button at a time, the way
// the keypad would: "=" evaluates, "C" clears, everything else appends.
func pressLine(eng *tally.Engine, line string) string {
	display := eng.Buffer()
	for _, r := range line {
		switch r {
		case '=':
			display = eng.PressEquals()
		case 'C':
			eng.PressClear()
			display = ""
		default:
			display = eng.PressToken(string(r))
		}
	}
	return display
}

func parseModeArg(arg string) (domain.Mode, error) {
	for _, m := range []domain.Mode{domain.ModeStandard, domain.ModeConvert} {
		if strings.EqualFold(arg, m.String()) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q (try Standard or Convert)", arg)
}

func isConversion(eng *tally.Engine, line string) bool {
	for _, name := range eng.Conversions() {
		if line == name {
			return true
		}
	}
	return false
}

const helpText = `# Tally

Type an expression and press enter; end with ` + "`=`" + ` to evaluate.

  - ` + "`2+3*4=`" + ` evaluates with standard precedence
  - ` + "`C`" + ` or ` + "`clear`" + ` empties the buffer
  - ` + "`mode Convert`" + ` / ` + "`mode Standard`" + ` switch keypads
  - In Convert mode, type a number and then an operation name, e.g. ` + "`Mi to Km`" + `
  - ` + "`layout`" + ` shows the current keypad grid
  - ` + "`exit`" + ` leaves the session
`
