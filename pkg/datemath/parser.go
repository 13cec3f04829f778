package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Parser binds a Resolver to an IANA timezone so resolved dates can be turned
// into absolute instants on the caller's clock.
type Parser struct {
	location *time.Location
	resolver *Resolver
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc, resolver: NewResolver()}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Now returns the current time in the parser's timezone.
func (p *Parser) Now() time.Time {
	return time.Now().In(p.location)
}

// Resolve resolves fragment against baseTime converted to the parser's timezone.
func (p *Parser) Resolve(fragment string, baseTime time.Time) (ParsedDateTime, bool) {
	return p.resolver.Resolve(fragment, baseTime.In(p.location))
}

// Parse converts a relative date string to an absolute time.Time.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	res, err := p.ParseResult(relative, baseTime)
	if err != nil {
		return baseTime, err
	}
	return res.AbsoluteTime, nil
}

// ParseResult is Parse with the all-day flag preserved.
func (p *Parser) ParseResult(relative string, baseTime time.Time) (ParseResult, error) {
	relative = strings.TrimSpace(relative)
	parsed, ok := p.Resolve(relative, baseTime)
	if !ok {
		return ParseResult{}, fmt.Errorf("no date or time found in %q", relative)
	}
	return ParseResult{
		AbsoluteTime: parsed.At(p.location),
		IsAllDay:     parsed.Time == nil,
	}, nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the day containing t.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.startOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}
