package priceupload

import (
	"strings"

	"github.com/radhian/price-upload-system/consts"
	"github.com/radhian/price-upload-system/entity"
)

// ParseLine cuts the date and close columns out of a
// "date,open,high,low,close,adj close,volume" line. It reports false for an
// empty line. A line with too few columns yields an empty close field, which
// BuildRecord then rejects.
func ParseLine(line string) (entity.Candidate, bool) {
	if line == "" {
		return entity.Candidate{}, false
	}

	fields := strings.SplitN(line, consts.ColumnDelimiter, consts.ColumnClose+2)

	candidate := entity.Candidate{DateText: fields[consts.ColumnDate]}
	if len(fields) > consts.ColumnClose {
		candidate.CloseText = fields[consts.ColumnClose]
	}
	return candidate, true
}
