package utils

import (
	"strings"
	"time"
)

// Back-office date layouts expected by the payment-registration endpoint.
const (
	LayoutShortBack        = "2006-01-02"
	LayoutDateTimeFullBack = "2006-01-02 15:04:05"
	LayoutShortFront       = "02/01/2006"
)

// DateShortBack formats a timestamp as yyyy-MM-dd.
func DateShortBack(t time.Time) string {
	return t.Format(LayoutShortBack)
}

// DateTimeFullBack formats a timestamp as yyyy-MM-dd HH:mm:ss.
func DateTimeFullBack(t time.Time) string {
	return t.Format(LayoutDateTimeFullBack)
}

// BusinessValueDate rolls weekend captures back to the preceding Friday:
// Sunday moves two days back, Saturday one. Weekday captures keep their
// date. The settlement system only books payments on business days.
func BusinessValueDate(captured time.Time) time.Time {
	switch captured.Weekday() {
	case time.Sunday:
		return captured.AddDate(0, 0, -2)
	case time.Saturday:
		return captured.AddDate(0, 0, -1)
	}
	return captured
}

// PayDayDateBack converts a dd/MM/yyyy pay-day date from the capture form
// into the yyyy-MM-dd wire format. An empty or malformed input yields "",
// which the endpoint accepts as "no scheduled pay day".
func PayDayDateBack(front string) string {
	parts := strings.Split(front, "/")
	if len(parts) != 3 {
		return ""
	}
	if _, err := time.Parse(LayoutShortFront, front); err != nil {
		return ""
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}
