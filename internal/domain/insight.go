package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	untitledEvent = "Untitled event"
	unknownDate   = "Unknown date"
)

// EventDigestLines renders one line per event: "• <summary> on <start>".
// The start prefers the precise timestamp shown in loc, then the date-only value,
// then "Unknown date".
func EventDigestLines(events []CalendarEvent, loc *time.Location) []string {
	lines := make([]string, 0, len(events))
	for _, e := range events {
		summary := e.Summary
		if summary == "" {
			summary = untitledEvent
		}
		lines = append(lines, fmt.Sprintf("• %s on %s", summary, eventStartLabel(e.Start, loc)))
	}
	return lines
}

func eventStartLabel(start *EventTime, loc *time.Location) string {
	switch {
	case start == nil:
		return unknownDate
	case start.DateTime != "":
		return FormatDisplayTime(start.DateTime, loc)
	case start.Date != "":
		return start.Date
	default:
		return unknownDate
	}
}

// EventAnalysisPrompt wraps the digest lines in the fixed instructional template
func EventAnalysisPrompt(lines []string) string {
	var b strings.Builder
	b.WriteString("\nYou are an assistant that analyzes a user's Google Calendar schedule and gives helpful, friendly insights.\n")
	b.WriteString("Here are the upcoming events:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\nPlease summarize their day, highlight busy periods, and suggest productivity or planning tips.\n")
	return b.String()
}
