// Package console is the interactive front end of the event manager. It
// renders one screen per event phase and turns menu choices into calls on
// app.State.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/klabast/wb-services/event-manager/internal/app"
)

// Console drives the menus. It is not safe for concurrent use.
type Console struct {
	state  *app.State
	in     Prompter
	out    io.Writer
	logger *zap.Logger
}

// New creates a console for state reading from in and writing to out
func New(state *app.State, in Prompter, out io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{state: state, in: in, out: out, logger: logger}
}

// Run shows the main menu until the user exits, input ends or ctx is done
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("\n=== Event Management System ===\n\n")
		for i, s := range screens {
			c.printf("%d. %s\n", i+1, s.title)
		}
		c.printf("0. Exit\n")

		choice, err := c.in.ReadLine("> ")
		if err != nil {
			return endOfInput(err)
		}

		n, ok := parseChoice(choice, len(screens))
		switch {
		case !ok:
			c.printf("[Error] Unknown option %q.\n", strings.TrimSpace(choice))
		case n == 0:
			c.printf("Goodbye.\n")
			return nil
		default:
			if err := c.runScreen(ctx, screens[n-1]); err != nil {
				return endOfInput(err)
			}
		}
	}
}

// runScreen loops on a single screen until the user goes back
func (c *Console) runScreen(ctx context.Context, s screen) error {
	c.logger.Debug("screen opened", zap.String("screen", s.title))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printf("\n--- %s ---\n\n", s.title)
		s.render(c)
		c.printf("\n")
		for i, a := range s.actions {
			c.printf("%d. %s\n", i+1, a.label)
		}
		c.printf("0. Back to Main Menu\n")

		choice, err := c.in.ReadLine("> ")
		if err != nil {
			return err
		}

		n, ok := parseChoice(choice, len(s.actions))
		switch {
		case !ok:
			c.printf("[Error] Unknown option %q.\n", strings.TrimSpace(choice))
		case n == 0:
			return nil
		default:
			if err := s.actions[n-1].run(c); err != nil {
				return err
			}
		}
	}
}

// ask reads a single field
func (c *Console) ask(label string) (string, error) {
	return c.in.ReadLine(label + ": ")
}

// report shows the outcome of an operation in place of a dialog box
func (c *Console) report(n app.Notice, err error) {
	if err != nil {
		c.printf("[Error] %s\n", err)
		return
	}
	c.printf("[%s] %s\n", n.Title, n.Text)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) list(header string, items []string) {
	c.printf("%s\n", header)
	for i, item := range items {
		c.printf("%d. %s\n", i+1, item)
	}
}

func (c *Console) bullets(header, sep string, entries []app.Assignment) {
	c.printf("%s\n", header)
	for _, e := range entries {
		c.printf("• %s%s%s\n", e.Key, sep, e.Value)
	}
}

// parseChoice accepts 0..limit
func parseChoice(text string, limit int) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 0 || n > limit {
		return 0, false
	}
	return n, true
}

// endOfInput turns a closed input stream into a normal exit
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
