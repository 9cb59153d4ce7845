package priceupload

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/radhian/price-upload-system/consts"
)

// toRational converts v to the num/denom pair GnuCash stores. denom is a
// power of ten; at most consts.MaxValueScale decimals are kept.
func toRational(v float64) (num int64, denom int64, err error) {
	d := decimal.NewFromFloat(v)
	if d.Exponent() < -consts.MaxValueScale {
		d = d.Round(consts.MaxValueScale)
	}

	scale := int32(0)
	if exp := d.Exponent(); exp < 0 {
		scale = -exp
	}

	n := d.Shift(scale).BigInt()
	if !n.IsInt64() {
		return 0, 0, fmt.Errorf("value %v does not fit a 64-bit numerator", v)
	}
	return n.Int64(), decimal.New(1, scale).IntPart(), nil
}
