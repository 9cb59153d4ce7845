package dao

import (
	"errors"

	"github.com/radhian/price-upload-system/infra/db/model"

	"github.com/jinzhu/gorm"
)

// ErrBeginTx is returned by Transaction when no transaction could be opened.
var ErrBeginTx = errors.New("cannot begin transaction")

type DaoMethod interface {
	GetCurrencyByMnemonic(mnemonic string) (model.Commodity, error)
	GetCommoditiesByMnemonic(mnemonic string) ([]model.Commodity, error)
	GetPricesOnDate(commodityGUID, currencyGUID, date string) ([]model.Price, error)
	GetPrices(commodityGUID, currencyGUID string) ([]model.Price, error)
	CreatePrice(payload *model.Price) error
	UpdatePriceValue(guid string, payload model.Price) error
	DeletePrice(guid string) error
	Transaction(fn func(tx DaoMethod) error) error
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
