package main

import (
	"fmt"
	"strconv"
	"strings"

	"ticket-booking/booking"
	"ticket-booking/booking/infra"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	soldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

func renderReport(rep booking.Report, totals infra.Counters) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Show ID", "Initial", "Remaining", "Booked")
	for _, s := range rep.Shows {
		t.Row(s.ID.String(), strconv.Itoa(s.Capacity), strconv.Itoa(s.Remaining), strconv.Itoa(s.Booked()))
	}
	t.Row("TOTAL", strconv.Itoa(rep.TotalCapacity), strconv.Itoa(rep.TotalRemaining), strconv.Itoa(rep.TotalBooked))

	var b strings.Builder
	b.WriteString(titleStyle.Render("FINAL BOOKING REPORT"))
	b.WriteString("\n")
	b.WriteString(t.String())
	b.WriteString("\n")
	fmt.Fprintf(&b, "users: %d\n", rep.Users)
	fmt.Fprintf(&b, "tickets available: %d\n", rep.TotalCapacity)
	fmt.Fprintf(&b, "tickets booked: %d\n", rep.TotalBooked)
	fmt.Fprintf(&b, "sold out responses: %d\n", totals.SoldOut)
	if totals.Rejected > 0 || totals.Abandoned > 0 {
		fmt.Fprintf(&b, "not attempted: rejected=%d abandoned=%d\n", totals.Rejected, totals.Abandoned)
	}
	fmt.Fprintf(&b, "success rate: %.1f%%\n", rep.SuccessRate())
	if rep.AllSoldOut() {
		b.WriteString(soldStyle.Render("ALL SHOWS SOLD OUT!"))
		b.WriteString("\n")
	}
	return b.String()
}
