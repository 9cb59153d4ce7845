package priceupload

import (
	"errors"
	"testing"

	"github.com/radhian/price-upload-system/consts"
	"github.com/radhian/price-upload-system/entity"
)

func TestBuildRecord(t *testing.T) {
	rec, err := BuildRecord(entity.Candidate{DateText: " 2018-01-02 ", CloseText: " 10.5 "}, false)
	if err != nil {
		t.Fatalf("BuildRecord: %v", err)
	}
	if rec.Year != 2018 || rec.Month != 1 || rec.Day != 2 {
		t.Errorf("date = %d-%d-%d, want 2018-1-2", rec.Year, rec.Month, rec.Day)
	}
	if rec.Value != 10.5 {
		t.Errorf("Value = %v, want 10.5", rec.Value)
	}
	if rec.Kind != consts.PriceTypeLast || rec.Source != consts.PriceSourceFQuote {
		t.Errorf("provenance = %q/%q, want last/Finance::Quote", rec.Kind, rec.Source)
	}
	if rec.DateString() != "2018-01-02" {
		t.Errorf("DateString = %q", rec.DateString())
	}
}

func TestBuildRecordRejects(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		close  string
		target error
	}{
		{"word date", "bad-date", "1", ErrInvalidDate},
		{"no separators", "20180102", "1", ErrInvalidDate},
		{"one separator", "2018-01", "1", ErrInvalidDate},
		{"slash separators", "2018/01/02", "1", ErrInvalidDate},
		{"trailing part", "2018-01-02-03", "1", ErrInvalidDate},
		{"negative year", "-2018-01-02", "1", ErrInvalidDate},
		{"year overflows 16 bits", "70000-01-02", "1", ErrInvalidDate},
		{"month zero", "2018-00-02", "1", ErrInvalidDate},
		{"month 13", "2018-13-02", "1", ErrInvalidDate},
		{"day 32", "2018-01-32", "1", ErrInvalidDate},
		{"empty date", "", "1", ErrInvalidDate},
		{"empty close", "2018-01-02", "", ErrInvalidClose},
		{"text close", "2018-01-02", "null", ErrInvalidClose},
		{"nan close", "2018-01-02", "NaN", ErrInvalidClose},
		{"inf close", "2018-01-02", "+Inf", ErrInvalidClose},
		{"huge close", "2018-01-02", "1e300", ErrInvalidClose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildRecord(entity.Candidate{DateText: tt.date, CloseText: tt.close}, false)
			if err == nil {
				t.Fatal("expected error")
			}
			var lineErr *entity.LineError
			if !errors.As(err, &lineErr) {
				t.Fatalf("error %T is not a *entity.LineError", err)
			}
			if !errors.Is(err, tt.target) {
				t.Errorf("error %v does not wrap %v", err, tt.target)
			}
		})
	}
}

func TestBuildRecordCalendarCheck(t *testing.T) {
	c := entity.Candidate{DateText: "2018-02-30", CloseText: "3"}

	rec, err := BuildRecord(c, false)
	if err != nil {
		t.Fatalf("lenient mode rejected %s: %v", c.DateText, err)
	}
	if rec.DateString() != "2018-02-30" {
		t.Errorf("DateString = %q, want date kept unchanged", rec.DateString())
	}

	if _, err := BuildRecord(c, true); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("strict mode error = %v, want ErrInvalidDate", err)
	}

	if _, err := BuildRecord(entity.Candidate{DateText: "2020-02-29", CloseText: "3"}, true); err != nil {
		t.Errorf("strict mode rejected leap day: %v", err)
	}
}

func TestToRational(t *testing.T) {
	tests := []float64{0, 1, 10.5, 11, 0.0001, 123.456789, 1234567.5, -2.25, 0.1234567891234}
	for _, v := range tests {
		num, denom, err := toRational(v)
		if err != nil {
			t.Fatalf("toRational(%v): %v", v, err)
		}
		if denom < 1 || denom > 1000000000 {
			t.Errorf("toRational(%v) denom = %d", v, denom)
		}
		for d := denom; d > 1; d /= 10 {
			if d%10 != 0 {
				t.Fatalf("toRational(%v) denom %d is not a power of ten", v, denom)
			}
		}
		got := float64(num) / float64(denom)
		diff := got - v
		if diff < 0 {
			diff = -diff
		}
		if diff > 1e-9 {
			t.Errorf("toRational(%v) = %d/%d (%v)", v, num, denom, got)
		}
	}

	num, denom, _ := toRational(10.5)
	if num != 105 || denom != 10 {
		t.Errorf("toRational(10.5) = %d/%d, want 105/10", num, denom)
	}
}

func TestBuildRecordCloseMustFitNumerator(t *testing.T) {
	rec, err := BuildRecord(entity.Candidate{DateText: "2018-01-02", CloseText: "9e18"}, false)
	if err != nil {
		t.Fatalf("9e18 rejected: %v", err)
	}
	if rec.Value != 9e18 {
		t.Errorf("value = %v", rec.Value)
	}

	if _, err := BuildRecord(entity.Candidate{DateText: "2018-01-02", CloseText: "1e19"}, false); !errors.Is(err, ErrInvalidClose) {
		t.Errorf("1e19 error = %v, want ErrInvalidClose", err)
	}
}
