package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tourkit/distance"
	"github.com/katalvlaran/tourkit/tsp"
)

var errInputClosed = errors.New("input closed before all stops were entered")

// prompter collects stops one whitespace-separated token at a time and asks
// again whenever a token is not usable.
type prompter struct {
	in    *bufio.Scanner
	out   io.Writer
	warn  io.Writer
	table *distance.Table
}

func newPrompter(in io.Reader, out, warn io.Writer, t *distance.Table) *prompter {
	s := bufio.NewScanner(in)
	s.Split(bufio.ScanWords)

	return &prompter{in: s, out: out, warn: warn, table: t}
}

func (p *prompter) next(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s ", prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", errInputClosed
	}

	return p.in.Text(), nil
}

// node reads names until one is in the table.
func (p *prompter) node(prompt string) (string, error) {
	for {
		tok, err := p.next(prompt)
		if err != nil {
			return "", err
		}
		name := resolve(p.table, tok)
		if p.table.Has(name) {
			return name, nil
		}
		fmt.Fprintln(p.warn, "Invalid node. Please enter a valid node from the table.")
	}
}

// count reads tokens until one is a non-negative integer.
func (p *prompter) count(prompt string) (int, error) {
	for {
		tok, err := p.next(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(tok)
		switch {
		case err != nil:
			fmt.Fprintln(p.warn, "Invalid input. Please enter a valid integer.")
		case n < 0:
			fmt.Fprintln(p.warn, "Value must be non-negative. Try again.")
		default:
			return n, nil
		}
	}
}

func (p *prompter) zones(countPrompt, zonePrompt string) ([]string, error) {
	n, err := p.count(countPrompt)
	if err != nil {
		return nil, err
	}
	var zones []string
	for i := 0; i < n; i++ {
		z, err := p.node(zonePrompt)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, nil
}

// stops runs the whole dialogue: start, end, pick-ups, drop-offs.
func (p *prompter) stops() (tsp.Stops, error) {
	var (
		s   tsp.Stops
		err error
	)
	if s.Start, err = p.node("What is your start point?"); err != nil {
		return s, err
	}
	if s.End, err = p.node("What is your end point?"); err != nil {
		return s, err
	}
	if s.Pickups, err = p.zones("How many pick-up zones do you want?", "Which pick-up zone do you want?"); err != nil {
		return s, err
	}
	s.Dropoffs, err = p.zones("How many drop-off zones do you want?", "Which drop-off zone do you want?")

	return s, err
}

// resolve returns name as typed when t has it, otherwise its upper-case form.
func resolve(t *distance.Table, name string) string {
	name = strings.TrimSpace(name)
	if t.Has(name) {
		return name
	}

	return strings.ToUpper(name)
}

func resolveAll(t *distance.Table, names []string) []string {
	for i, name := range names {
		names[i] = resolve(t, name)
	}

	return names
}

// splitList parses a comma-separated flag value into trimmed names.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			out = append(out, name)
		}
	}

	return out
}
