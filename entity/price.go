package entity

import "fmt"

// Candidate holds the raw date and close fields cut out of one input line.
type Candidate struct {
	DateText  string
	CloseText string
}

// PriceRecord is one validated price observation ready to be written.
type PriceRecord struct {
	Year   uint16
	Month  uint16
	Day    uint16
	Value  float64
	Kind   string
	Source string
}

// DateString returns the record date as YYYY-MM-DD. The date is not calendar checked.
func (p PriceRecord) DateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", p.Year, p.Month, p.Day)
}

// Batch is the ordered list of records read from one file.
type Batch []PriceRecord

// CommodityIdentity names the share and the currency its prices are quoted in.
type CommodityIdentity struct {
	ShareName    string `json:"share"`
	CurrencyName string `json:"currency"`
}

func (c CommodityIdentity) String() string {
	return c.ShareName + "/" + c.CurrencyName
}

type ReadOptions struct {
	// Header discards the first line of the file.
	Header bool
	// StrictDates rejects dates that do not exist in the calendar.
	StrictDates bool
}

type ReadResult struct {
	Batch      Batch
	LineErrors []*LineError
	LinesRead  int
}

type WriteSummary struct {
	Written  int `json:"written"`
	Inserted int `json:"inserted"`
	Updated  int `json:"updated"`
	Removed  int `json:"removed"`
}

type UploadResult struct {
	Identity   CommodityIdentity `json:"identity"`
	LinesRead  int               `json:"lines_read"`
	Records    int               `json:"records"`
	LineErrors []LineIssue       `json:"line_errors,omitempty"`
	Summary    WriteSummary      `json:"summary"`
}

// LineIssue is the caller-facing form of a LineError. It never carries the
// line's text.
type LineIssue struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// StoredPrice is a price row as read back from the ledger.
type StoredPrice struct {
	Date   string  `json:"date"`
	Value  float64 `json:"value"`
	Kind   string  `json:"type"`
	Source string  `json:"source"`
}
