// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/location"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numStyle    = cellStyle.Align(lipgloss.Right)
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// newTable returns a bordered table; columns listed in numeric are right-aligned.
func newTable(headers []string, numeric ...int) *table.Table {
	right := make(map[int]bool, len(numeric))
	for _, c := range numeric {
		right[c] = true
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(dimStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case right[col]:
				return numStyle
			default:
				return cellStyle
			}
		})
}

func locationsTable(locs []location.Location) string {
	t := newTable([]string{"Name", "Type", "Visit (min)"}, 2)
	for _, l := range locs {
		t.Row(l.Name, l.Type, strconv.Itoa(l.VisitTime))
	}

	return t.String()
}

func namesTable(header string, names []string) string {
	t := newTable([]string{header})
	for _, n := range names {
		t.Row(n)
	}

	return t.String()
}

func edgesTable(edges []core.Edge) string {
	t := newTable([]string{"From", "To", "Weight"}, 2)
	for _, e := range edges {
		t.Row(e.From, e.To, strconv.FormatInt(e.Weight, 10))
	}

	return t.String()
}

func routeView(r *campus.Route) string {
	return fmt.Sprintf("%s\ntotal weight: %d", joinStops(r.Vertices), r.Weight)
}

func hopRouteView(stops []string) string {
	return fmt.Sprintf("%s\npaths: %d", joinStops(stops), len(stops)-1)
}

func nearbyTable(near []campus.Hop) string {
	t := newTable([]string{"Location", "Hops"}, 1)
	for _, h := range near {
		t.Row(h.Name, strconv.Itoa(h.Hops))
	}

	return t.String()
}

func connectivityView(c campus.Connectivity) string {
	var b strings.Builder
	if c.Connected {
		b.WriteString(okStyle.Render("connected"))
		fmt.Fprintf(&b, " (%d component)", len(c.Components))
		return b.String()
	}

	b.WriteString(warnStyle.Render("disconnected"))
	fmt.Fprintf(&b, " (%d components)\n", len(c.Components))

	t := newTable([]string{"#", "Locations"}, 0)
	for i, comp := range c.Components {
		t.Row(strconv.Itoa(i+1), strings.Join(comp, ", "))
	}
	b.WriteString(t.String())
	b.WriteString("\nproposed bridges:\n")
	b.WriteString(edgesTable(c.Bridges))

	return b.String()
}

func eulerView(r *campus.EulerReport) string {
	switch {
	case r.Circuit:
		return okStyle.Render("eulerian circuit") + ": every path can be walked once, ending where it started"
	case r.Exists:
		return okStyle.Render("eulerian path") + ": every path can be walked once, from " +
			r.OddVertices[0] + " to " + r.OddVertices[1]
	default:
		return warnStyle.Render("no eulerian path") + fmt.Sprintf(": %d locations have an odd number of paths (%s)",
			len(r.OddVertices), strings.Join(r.OddVertices, ", "))
	}
}

func tourView(tour *campus.Tour) string {
	t := newTable([]string{"#", "Name", "Visit (min)"}, 0, 2)
	for i, l := range tour.Stops {
		t.Row(strconv.Itoa(i+1), l.Name, strconv.Itoa(l.VisitTime))
	}

	return fmt.Sprintf("%s\ntotal visit time: %d min", t.String(), tour.TotalVisitTime)
}

func joinStops(names []string) string {
	return strings.Join(names, " -> ")
}
