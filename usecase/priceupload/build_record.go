package priceupload

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/radhian/price-upload-system/consts"
	"github.com/radhian/price-upload-system/entity"
)

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidClose = errors.New("invalid close value")
)

// BuildRecord validates a candidate and turns it into a PriceRecord stamped
// with the Finance::Quote provenance tags. Dates must be YYYY-MM-DD. Unless
// strict is set, a date like 2018-02-30 is accepted as is.
func BuildRecord(c entity.Candidate, strict bool) (entity.PriceRecord, error) {
	dateText := strings.TrimSpace(c.DateText)
	closeText := strings.TrimSpace(c.CloseText)

	year, month, day, err := splitDate(dateText)
	if err != nil {
		return entity.PriceRecord{}, &entity.LineError{Err: err}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return entity.PriceRecord{}, &entity.LineError{
			Err: fmt.Errorf("%w %q: month or day out of range", ErrInvalidDate, dateText),
		}
	}
	if strict && !calendarDate(year, month, day) {
		return entity.PriceRecord{}, &entity.LineError{
			Err: fmt.Errorf("%w %q: no such calendar day", ErrInvalidDate, dateText),
		}
	}

	value, err := strconv.ParseFloat(closeText, 64)
	if err != nil {
		return entity.PriceRecord{}, &entity.LineError{Err: fmt.Errorf("%w %q: %v", ErrInvalidClose, closeText, err)}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return entity.PriceRecord{}, &entity.LineError{Err: fmt.Errorf("%w %q: not finite", ErrInvalidClose, closeText)}
	}
	if _, _, err := toRational(value); err != nil {
		return entity.PriceRecord{}, &entity.LineError{Err: fmt.Errorf("%w %q: %v", ErrInvalidClose, closeText, err)}
	}

	return entity.PriceRecord{
		Year:   year,
		Month:  month,
		Day:    day,
		Value:  value,
		Kind:   consts.PriceTypeLast,
		Source: consts.PriceSourceFQuote,
	}, nil
}

// splitDate splits at the first and second '-'.
func splitDate(s string) (year, month, day uint16, err error) {
	first := strings.Index(s, "-")
	if first < 0 {
		return 0, 0, 0, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}
	rest := s[first+1:]
	second := strings.Index(rest, "-")
	if second < 0 {
		return 0, 0, 0, fmt.Errorf("%w %q: expected YYYY-MM-DD", ErrInvalidDate, s)
	}

	parts := [3]string{s[:first], rest[:second], rest[second+1:]}
	var values [3]uint16
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 10, 16)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w %q: %v", ErrInvalidDate, s, err)
		}
		values[i] = uint16(v)
	}
	return values[0], values[1], values[2], nil
}

func calendarDate(year, month, day uint16) bool {
	t := time.Date(int(year), time.Month(month), int(day), 0, 0, 0, 0, time.UTC)
	return t.Year() == int(year) && t.Month() == time.Month(month) && t.Day() == int(day)
}
