package datemath

import (
	"fmt"
	"time"
)

// Parser performs calendar-date parsing and arithmetic in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Europe/Berlin"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// ParseDate parses a strict "YYYY-MM-DD" calendar date. The result is
// midnight of that day in the parser's timezone.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, s, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// Today returns midnight of the current day relative to baseTime.
func (p *Parser) Today(baseTime time.Time) time.Time {
	return p.startOfDay(baseTime)
}

// DaysUntil returns the number of whole days from baseTime's day to the
// given date. Negative means the date is in the past.
func (p *Parser) DaysUntil(date, baseTime time.Time) int {
	from := p.startOfDay(baseTime)
	to := p.startOfDay(date)
	return int(to.Sub(from).Hours() / 24)
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given start-of-day time.
func (p *Parser) EndOfDay(startOfDay time.Time) time.Time {
	return startOfDay.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
