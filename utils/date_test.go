package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBusinessValueDate(t *testing.T) {
	// 2026-08-21 is a Friday.
	saturday := time.Date(2026, 8, 22, 14, 30, 0, 0, time.UTC)
	sunday := time.Date(2026, 8, 23, 9, 15, 0, 0, time.UTC)
	tuesday := time.Date(2026, 8, 25, 11, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-08-21", DateShortBack(BusinessValueDate(saturday)))
	assert.Equal(t, "2026-08-21", DateShortBack(BusinessValueDate(sunday)))
	assert.Equal(t, "2026-08-25", DateShortBack(BusinessValueDate(tuesday)))
}

func TestBusinessValueDateKeepsTimeOfDay(t *testing.T) {
	sunday := time.Date(2026, 8, 23, 9, 15, 42, 0, time.UTC)
	rolled := BusinessValueDate(sunday)

	assert.Equal(t, time.Friday, rolled.Weekday())
	assert.Equal(t, 9, rolled.Hour())
	assert.Equal(t, 15, rolled.Minute())
}

func TestDateFormats(t *testing.T) {
	ts := time.Date(2026, 8, 25, 11, 5, 9, 0, time.UTC)

	assert.Equal(t, "2026-08-25", DateShortBack(ts))
	assert.Equal(t, "2026-08-25 11:05:09", DateTimeFullBack(ts))
}

func TestPayDayDateBack(t *testing.T) {
	assert.Equal(t, "2026-08-28", PayDayDateBack("28/08/2026"))
	assert.Equal(t, "", PayDayDateBack(""))
	assert.Equal(t, "", PayDayDateBack("2026-08-28"))
	assert.Equal(t, "", PayDayDateBack("99/99/2026"))
}
