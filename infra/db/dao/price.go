package dao

import (
	"fmt"

	"github.com/radhian/price-upload-system/infra/db/model"
)

// GetPricesOnDate returns every price of the pair on the calendar day date (YYYY-MM-DD).
func (d *dao) GetPricesOnDate(commodityGUID, currencyGUID, date string) ([]model.Price, error) {
	var prices []model.Price
	if err := d.db.
		Where("commodity_guid = ? AND currency_guid = ?", commodityGUID, currencyGUID).
		Where("date >= ? AND date <= ?", date+" 00:00:00", date+" 23:59:59").
		Order("guid ASC").
		Find(&prices).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch prices on %s: %w", date, err)
	}
	return prices, nil
}

func (d *dao) GetPrices(commodityGUID, currencyGUID string) ([]model.Price, error) {
	var prices []model.Price
	if err := d.db.
		Where("commodity_guid = ? AND currency_guid = ?", commodityGUID, currencyGUID).
		Order("date ASC").
		Find(&prices).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch prices: %w", err)
	}
	return prices, nil
}

func (d *dao) CreatePrice(payload *model.Price) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to create price: %w", err)
	}
	return nil
}

// UpdatePriceValue overwrites value, source and type of an existing price.
func (d *dao) UpdatePriceValue(guid string, payload model.Price) error {
	if err := d.db.Model(&model.Price{}).
		Where("guid = ?", guid).
		Updates(map[string]interface{}{
			"value_num":   payload.ValueNum,
			"value_denom": payload.ValueDenom,
			"source":      payload.Source,
			"type":        payload.Type,
		}).Error; err != nil {
		return fmt.Errorf("failed to update price %s: %w", guid, err)
	}
	return nil
}

func (d *dao) DeletePrice(guid string) error {
	if guid == "" {
		return fmt.Errorf("failed to delete price: empty guid")
	}
	if err := d.db.Where("guid = ?", guid).Delete(&model.Price{}).Error; err != nil {
		return fmt.Errorf("failed to delete price %s: %w", guid, err)
	}
	return nil
}
