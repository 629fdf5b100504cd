package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"portfolio/internal/book"
	"portfolio/internal/navigation"

	"github.com/spf13/cobra"
)

const readHelp = `commands: n|next, p|prev, g <page>, key <name>, wheel <deltaY>, swipe <deltaX> [deltaY], q|quit`

func readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Page through the book in the terminal",
		Long:  "Reads navigation commands from stdin, one per line.\n" + readHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return fmt.Errorf("read: %w", err)
			}
			defer rt.Close()

			data, err := rt.Loader.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("read: %w", err)
			}
			pages := book.Map(data.CVData, data.YearsOfExperience)
			return readBook(cmd.InOrStdin(), cmd.OutOrStdout(), pages)
		},
	}
}

type readCommand struct {
	event navigation.Event
	goTo  int
	quit  bool
}

func parseReadCommand(line string) (readCommand, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return readCommand{event: navigation.Event{Type: navigation.EventKey, Key: "ArrowRight"}, goTo: -1}, nil
	}
	rc := readCommand{goTo: -1}
	switch strings.ToLower(fields[0]) {
	case "n", "next":
		rc.event = navigation.Event{Type: navigation.EventKey, Key: "ArrowRight"}
	case "p", "prev", "previous":
		rc.event = navigation.Event{Type: navigation.EventKey, Key: "ArrowLeft"}
	case "q", "quit", "exit":
		rc.quit = true
	case "g", "goto":
		if len(fields) != 2 {
			return rc, fmt.Errorf("usage: g <page>")
		}
		n, err := strconv.Atoi(fields[1])
		if err != nil {
			return rc, fmt.Errorf("page must be a number")
		}
		rc.goTo = n
	case "key":
		if len(fields) != 2 {
			return rc, fmt.Errorf("usage: key <name>")
		}
		rc.event = navigation.Event{Type: navigation.EventKey, Key: fields[1]}
	case "wheel":
		if len(fields) != 2 {
			return rc, fmt.Errorf("usage: wheel <deltaY>")
		}
		dy, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return rc, fmt.Errorf("deltaY must be a number")
		}
		rc.event = navigation.Event{Type: navigation.EventWheel, DeltaY: dy}
	case "swipe":
		if len(fields) < 2 || len(fields) > 3 {
			return rc, fmt.Errorf("usage: swipe <deltaX> [deltaY]")
		}
		dx, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return rc, fmt.Errorf("deltaX must be a number")
		}
		var dy float64
		if len(fields) == 3 {
			if dy, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return rc, fmt.Errorf("deltaY must be a number")
			}
		}
		rc.event = navigation.Event{Type: navigation.EventSwipe, DeltaX: dx, DeltaY: dy}
	default:
		return rc, fmt.Errorf("unknown command %q", fields[0])
	}
	return rc, nil
}

func describePage(p book.Page, total int) string {
	return fmt.Sprintf("[%d/%d] %-5s %-20s %s", p.Number, total-1, p.Side(), p.Kind(), p.Title)
}

// readBook drives a navigation.Book from line commands. Page turns settle
// immediately since there is no animation in a terminal.
func readBook(in io.Reader, out io.Writer, pages []book.Page) error {
	nav := navigation.NewNavigator(navigation.NewBook(len(pages)), nil)
	b := nav.Book()

	fmt.Fprintln(out, describePage(pages[b.Current()], len(pages)))
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		rc, err := parseReadCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(out, "%v\n%s\n", err, readHelp)
			continue
		}
		if rc.quit {
			return nil
		}

		var moved bool
		if rc.goTo >= 0 {
			moved = b.GoTo(rc.goTo)
		} else {
			moved = nav.Handle(rc.event)
		}
		b.Settle()
		if !moved {
			fmt.Fprintln(out, "(no move)")
			continue
		}
		fmt.Fprintln(out, describePage(pages[b.Current()], len(pages)))
	}
	return scanner.Err()
}
