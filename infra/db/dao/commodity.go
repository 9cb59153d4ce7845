package dao

import (
	"fmt"

	"github.com/radhian/price-upload-system/consts"
	"github.com/radhian/price-upload-system/infra/db/model"
)

func (d *dao) GetCurrencyByMnemonic(mnemonic string) (model.Commodity, error) {
	var currency model.Commodity
	if err := d.db.
		Where("namespace = ? AND mnemonic = ?", consts.NamespaceCurrency, mnemonic).
		First(&currency).Error; err != nil {
		return currency, fmt.Errorf("currency not found: %w", err)
	}
	return currency, nil
}

func (d *dao) GetCommoditiesByMnemonic(mnemonic string) ([]model.Commodity, error) {
	var commodities []model.Commodity
	if err := d.db.
		Where("namespace <> ? AND mnemonic = ?", consts.NamespaceCurrency, mnemonic).
		Order("guid ASC").
		Find(&commodities).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch commodities: %w", err)
	}
	return commodities, nil
}
