package priceupload

import (
	"errors"
	"fmt"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/radhian/price-upload-system/entity"
)

var ErrInputFile = errors.New("input file")

// UploadFile reads the price file at path and writes its batch for identity.
func (u *priceUploadUsecase) UploadFile(path string, identity entity.CommodityIdentity, opts entity.ReadOptions) (entity.UploadResult, error) {
	result := entity.UploadResult{Identity: identity}

	if path == "" {
		return result, fmt.Errorf("%w not specified", ErrInputFile)
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return result, fmt.Errorf("%w not found: %s", ErrInputFile, path)
		}
		return result, fmt.Errorf("failed to open %w %s: %v", ErrInputFile, path, err)
	}
	defer file.Close()

	u.logger.Infof("[PriceUpload] Reading %s for %s", path, identity)

	readResult, err := u.ReadBatch(file, opts)
	if err != nil {
		return result, err
	}
	result.LinesRead = readResult.LinesRead
	result.Records = len(readResult.Batch)
	for _, lineErr := range readResult.LineErrors {
		result.LineErrors = append(result.LineErrors, entity.LineIssue{Line: lineErr.Line, Reason: lineErrorReason(lineErr)})
	}

	u.logger.Infof("[PriceUpload] Starting writing records to database...")
	u.logger.Infof("[PriceUpload] There are %d records to write.", len(readResult.Batch))

	summary, err := u.WriteBatch(readResult.Batch, identity)
	if err != nil {
		return result, err
	}
	result.Summary = summary

	if n := len(readResult.Batch); n > 0 {
		last := readResult.Batch[n-1]
		u.logger.Infof("[PriceUpload] Last price %s: %s", last.DateString(), displayPrice(last.Value, identity.CurrencyName))
	}
	u.logger.Infof("[PriceUpload] Completed uploading records to database.")

	return result, nil
}

func lineErrorReason(err error) string {
	for _, known := range []error{ErrLineTooLong, ErrInvalidDate, ErrInvalidClose} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return "invalid line"
}

// displayPrice formats value in the currency's minor units when the
// currency is a known ISO code.
func displayPrice(value float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return fmt.Sprintf("%.4f %s", value, currency)
	}
	minor := decimal.NewFromFloat(value).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, currency).Display()
}
