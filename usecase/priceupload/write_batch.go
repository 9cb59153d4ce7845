package priceupload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"

	"github.com/radhian/price-upload-system/consts"
	"github.com/radhian/price-upload-system/entity"
	"github.com/radhian/price-upload-system/infra/db/dao"
	"github.com/radhian/price-upload-system/infra/db/model"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrAmbiguous = errors.New("ambiguous")
)

// WriteBatch applies the batch to the prices table of identity in a single
// transaction. A date that already has a price is overwritten, so running
// the same batch twice leaves the same rows as running it once.
func (u *priceUploadUsecase) WriteBatch(batch entity.Batch, identity entity.CommodityIdentity) (entity.WriteSummary, error) {
	var summary entity.WriteSummary

	err := u.dao.Transaction(func(tx dao.DaoMethod) error {
		commodity, currency, err := resolveIdentity(tx, identity)
		if err != nil {
			return err
		}

		for i, record := range batch {
			if err := applyRecord(tx, commodity.GUID, currency.GUID, record, &summary); err != nil {
				return &entity.StoreError{
					Op:  fmt.Sprintf("write record %d (%s)", i+1, record.DateString()),
					Err: err,
				}
			}
		}
		return nil
	})
	if err != nil {
		err = classifyWriteError(err)
		u.logger.Errorf("[PriceUpload] Write for %s rolled back: %v", identity, err)
		return entity.WriteSummary{}, err
	}

	summary.Written = len(batch)
	u.logger.Infof("[PriceUpload] Wrote %d prices for %s: inserted=%d, updated=%d, removed duplicates=%d",
		summary.Written, identity, summary.Inserted, summary.Updated, summary.Removed)
	return summary, nil
}

func classifyWriteError(err error) error {
	var resErr *entity.ResolutionError
	var storeErr *entity.StoreError
	switch {
	case errors.As(err, &resErr), errors.As(err, &storeErr):
		return err
	case errors.Is(err, dao.ErrBeginTx):
		return &entity.ResolutionError{Kind: "connection", Err: err}
	default:
		return &entity.StoreError{Op: "commit", Err: err}
	}
}

func resolveIdentity(d dao.DaoMethod, identity entity.CommodityIdentity) (model.Commodity, model.Commodity, error) {
	currency, err := d.GetCurrencyByMnemonic(identity.CurrencyName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = ErrNotFound
		}
		return model.Commodity{}, model.Commodity{}, &entity.ResolutionError{Kind: "currency", Name: identity.CurrencyName, Err: err}
	}

	commodities, err := d.GetCommoditiesByMnemonic(identity.ShareName)
	if err != nil {
		return model.Commodity{}, model.Commodity{}, &entity.ResolutionError{Kind: "commodity", Name: identity.ShareName, Err: err}
	}
	switch len(commodities) {
	case 0:
		return model.Commodity{}, model.Commodity{}, &entity.ResolutionError{Kind: "commodity", Name: identity.ShareName, Err: ErrNotFound}
	case 1:
		return commodities[0], currency, nil
	default:
		namespaces := make([]string, 0, len(commodities))
		for _, c := range commodities {
			namespaces = append(namespaces, c.Namespace)
		}
		return model.Commodity{}, model.Commodity{}, &entity.ResolutionError{
			Kind: "commodity",
			Name: identity.ShareName,
			Err:  fmt.Errorf("%w: listed in namespaces %s", ErrAmbiguous, strings.Join(namespaces, ", ")),
		}
	}
}

// applyRecord inserts the record, or overwrites the price already stored for
// its day. Extra rows for the same day are deleted.
func applyRecord(d dao.DaoMethod, commodityGUID, currencyGUID string, record entity.PriceRecord, summary *entity.WriteSummary) error {
	num, denom, err := toRational(record.Value)
	if err != nil {
		return err
	}

	payload := model.Price{
		CommodityGUID: commodityGUID,
		CurrencyGUID:  currencyGUID,
		Date:          record.DateString() + " " + consts.PriceTimeOfDay,
		Source:        record.Source,
		Type:          record.Kind,
		ValueNum:      num,
		ValueDenom:    denom,
	}

	existing, err := d.GetPricesOnDate(commodityGUID, currencyGUID, record.DateString())
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		payload.GUID = newGUID()
		if err := d.CreatePrice(&payload); err != nil {
			return err
		}
		summary.Inserted++
		return nil
	}

	if err := d.UpdatePriceValue(existing[0].GUID, payload); err != nil {
		return err
	}
	summary.Updated++

	for _, extra := range existing[1:] {
		if err := d.DeletePrice(extra.GUID); err != nil {
			return err
		}
		summary.Removed++
	}
	return nil
}

// newGUID returns a GnuCash style GUID: 32 hex digits, no dashes.
func newGUID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
