package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// EventTime is the start or end of a calendar event: either a precise
// timestamp (DateTime, RFC3339) or a date-only value for all-day events.
type EventTime struct {
	DateTime string `json:"dateTime,omitempty"`
	Date     string `json:"date,omitempty"`
	TimeZone string `json:"timeZone,omitempty"`
}

// CalendarEvent is a provider event. The original JSON object is kept in Raw
// and written back verbatim, so the event shape is never transformed.
type CalendarEvent struct {
	Summary string
	Start   *EventTime
	End     *EventTime
	Raw     json.RawMessage
}

type calendarEventFields struct {
	Summary string     `json:"summary,omitempty"`
	Start   *EventTime `json:"start,omitempty"`
	End     *EventTime `json:"end,omitempty"`
}

// UnmarshalJSON keeps a copy of the raw value alongside the parsed fields.
// Any JSON value is accepted: fields of the wrong type are left empty, and a
// non-string summary keeps its literal text.
func (e *CalendarEvent) UnmarshalJSON(data []byte) error {
	*e = CalendarEvent{Raw: append(json.RawMessage(nil), data...)}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return nil
	}
	e.Summary = looseString(fields["summary"])
	e.Start = eventTimeFrom(fields["start"])
	e.End = eventTimeFrom(fields["end"])
	return nil
}

func eventTimeFrom(raw json.RawMessage) *EventTime {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil
	}
	return &EventTime{
		DateTime: stringValue(fields["dateTime"]),
		Date:     stringValue(fields["date"]),
		TimeZone: stringValue(fields["timeZone"]),
	}
}

// stringValue returns raw when it is a JSON string, "" otherwise
func stringValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// looseString renders a scalar as text. Falsy values (null, false, 0, "") give "".
func looseString(raw json.RawMessage) string {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if !x {
			return ""
		}
		return "true"
	case float64:
		if x == 0 {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return string(raw)
	}
}

// MarshalJSON writes the raw provider object when present
func (e CalendarEvent) MarshalJSON() ([]byte, error) {
	if len(e.Raw) > 0 {
		return e.Raw, nil
	}
	return json.Marshal(calendarEventFields{Summary: e.Summary, Start: e.Start, End: e.End})
}

// TimeWindow is a half-open range of event start times to fetch
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// TodayWindow returns the window from now until 23:59:59.999 of the same local day
func TodayWindow(now time.Time) TimeWindow {
	return TimeWindow{Start: now, End: EndOfDay(now)}
}
