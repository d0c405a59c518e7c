package main

import (
	"time"

	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/astro"
	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/errors"
	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/types"
)

// The calculation core assumes pre-validated scalars, so every string
// field is parsed and range-checked here before a Moment is built.

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// parseDate parses a strict "YYYY-MM-DD" date. time.Parse also rejects
// calendar-impossible dates like February 30.
func parseDate(s string) (year, month, day int, err error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, 0, 0, err
	}
	return t.Year(), int(t.Month()), t.Day(), nil
}

// parseClock parses a strict "HH:MM:SS" wall-clock time.
func parseClock(s string) (hour, minute, second int, err error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return 0, 0, 0, err
	}
	return t.Hour(), t.Minute(), t.Second(), nil
}

// buildInput validates a request and assembles the calculation input,
// applying the timezone and ayanamsa defaults for absent fields.
func (s *server) buildInput(req types.BirthChartRequest) (astro.Input, *errors.AppError) {
	year, month, day, err := parseDate(req.BirthDate)
	if err != nil {
		return astro.Input{}, errors.NewValidationError("birth_date must be a valid YYYY-MM-DD date", err.Error())
	}

	hour, minute, second, err := parseClock(req.BirthTime)
	if err != nil {
		return astro.Input{}, errors.NewValidationError("birth_time must be a valid HH:MM:SS time", err.Error())
	}

	timezone := s.cfg.DefaultTimezone
	if req.Timezone != nil {
		timezone = *req.Timezone
	}
	if timezone < -12 || timezone > 14 {
		return astro.Input{}, errors.NewValidationError("timezone must be between -12 and +14 hours")
	}

	if req.Latitude < -90 || req.Latitude > 90 {
		return astro.Input{}, errors.NewValidationError("latitude must be between -90 and 90 degrees")
	}
	if req.Longitude < -180 || req.Longitude > 180 {
		return astro.Input{}, errors.NewValidationError("longitude must be between -180 and 180 degrees")
	}

	ayanamsa := req.Ayanamsa
	if ayanamsa == "" {
		ayanamsa = astro.DefaultAyanamsa
	}

	return astro.Input{
		Name:      req.Name,
		Sex:       req.Sex,
		BirthDate: req.BirthDate,
		BirthTime: req.BirthTime,
		Timezone:  timezone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Ayanamsa:  ayanamsa,
		Moment: astro.Moment{
			Year:      year,
			Month:     month,
			Day:       day,
			Hour:      hour,
			Minute:    minute,
			Second:    second,
			UTCOffset: timezone,
		},
	}, nil
}
