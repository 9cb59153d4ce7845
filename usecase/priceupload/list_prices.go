package priceupload

import (
	"github.com/radhian/price-upload-system/entity"
)

func (u *priceUploadUsecase) ListPrices(identity entity.CommodityIdentity) ([]entity.StoredPrice, error) {
	commodity, currency, err := resolveIdentity(u.dao, identity)
	if err != nil {
		return nil, err
	}

	prices, err := u.dao.GetPrices(commodity.GUID, currency.GUID)
	if err != nil {
		return nil, &entity.StoreError{Op: "list prices", Err: err}
	}

	stored := make([]entity.StoredPrice, 0, len(prices))
	for _, p := range prices {
		stored = append(stored, entity.StoredPrice{
			Date:   p.Date,
			Value:  p.Float(),
			Kind:   p.Type,
			Source: p.Source,
		})
	}
	return stored, nil
}
