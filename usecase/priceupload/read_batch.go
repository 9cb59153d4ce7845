package priceupload

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/radhian/price-upload-system/entity"
)

const maxLineSize = 1024 * 1024

var ErrLineTooLong = errors.New("line too long")

// lineOutcome is the result of processing one input line: a record, a line
// error, or nothing when the line was empty.
type lineOutcome struct {
	record entity.PriceRecord
	err    *entity.LineError
	skip   bool
}

func processLine(lineNo int, line string, strict bool) lineOutcome {
	candidate, ok := ParseLine(line)
	if !ok {
		return lineOutcome{skip: true}
	}

	record, err := BuildRecord(candidate, strict)
	if err != nil {
		lineErr, ok := err.(*entity.LineError)
		if !ok {
			lineErr = &entity.LineError{Err: err}
		}
		lineErr.Line = lineNo
		lineErr.Text = line
		return lineOutcome{err: lineErr}
	}
	return lineOutcome{record: record}
}

// readLine returns the next line without its line ending. Bytes past
// maxLineSize are read and discarded, and tooLong is set. io.EOF is only
// returned once the input is exhausted.
func readLine(br *bufio.Reader) (line string, tooLong bool, err error) {
	var buf []byte
	read := false
	for {
		chunk, err := br.ReadSlice('\n')
		if len(chunk) > 0 {
			read = true
			if len(buf)+len(chunk) <= maxLineSize+2 {
				buf = append(buf, chunk...)
			} else {
				tooLong = true
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF && read {
			break
		}
		if err != nil {
			return "", false, err
		}
		break
	}

	buf = bytes.TrimSuffix(buf, []byte("\n"))
	buf = bytes.TrimSuffix(buf, []byte("\r"))
	if len(buf) > maxLineSize {
		tooLong = true
	}
	if tooLong {
		return "", true, nil
	}
	return string(buf), false, nil
}

// ReadBatch reads r line by line and accumulates every valid line into the
// batch. Bad lines, including lines longer than maxLineSize, are logged with
// their 1-based line number and skipped. Only a read failure stops the loop.
func (u *priceUploadUsecase) ReadBatch(r io.Reader, opts entity.ReadOptions) (entity.ReadResult, error) {
	var result entity.ReadResult

	br := bufio.NewReader(r)
	lineNo := 0
	for {
		line, tooLong, err := readLine(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			u.logger.Errorf("[PriceUpload] Failed to read input after line %d: %v", lineNo, err)
			return entity.ReadResult{}, fmt.Errorf("failed to read input after line %d: %w", lineNo, err)
		}
		lineNo++

		if lineNo == 1 && opts.Header {
			continue
		}

		var outcome lineOutcome
		if tooLong {
			outcome.err = &entity.LineError{Line: lineNo, Err: fmt.Errorf("%w: more than %d bytes", ErrLineTooLong, maxLineSize)}
		} else {
			outcome = processLine(lineNo, line, opts.StrictDates)
		}

		switch {
		case outcome.skip:
			continue
		case outcome.err != nil:
			u.logger.Warnf("[PriceUpload] Error in line %d. Continuing... (%v)", lineNo, outcome.err.Err)
			result.LineErrors = append(result.LineErrors, outcome.err)
		default:
			result.Batch = append(result.Batch, outcome.record)
		}
	}

	result.LinesRead = lineNo
	u.logger.Infof("[PriceUpload] Read %d lines: %d records, %d invalid lines", lineNo, len(result.Batch), len(result.LineErrors))
	return result, nil
}
