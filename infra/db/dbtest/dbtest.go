// Package dbtest opens throwaway in-memory GnuCash databases for tests.
package dbtest

import (
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" //sqlite

	"github.com/radhian/price-upload-system/consts"
	"github.com/radhian/price-upload-system/infra/db/model"
)

const (
	AUDGuid = "a0000000000000000000000000000aud"
	USDGuid = "a0000000000000000000000000000usd"
	BHPGuid = "c0000000000000000000000000000bhp"
	CBAGuid = "c0000000000000000000000000000cba"
)

// Open returns an in-memory database holding the commodities and prices
// tables, seeded with AUD, USD, BHP and CBA.
func Open(t *testing.T) *gorm.DB {
	t.Helper()
	return OpenPath(t, ":memory:")
}

// OpenPath is Open backed by the sqlite database at path.
func OpenPath(t *testing.T, path string) *gorm.DB {
	t.Helper()

	conn, err := gorm.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// every connection to :memory: is a new database
	conn.DB().SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := conn.AutoMigrate(&model.Commodity{}, &model.Price{}).Error; err != nil {
		t.Fatalf("migrate: %v", err)
	}

	seed := []model.Commodity{
		{GUID: AUDGuid, Namespace: consts.NamespaceCurrency, Mnemonic: "AUD", Fullname: "Australian Dollar", Fraction: 100},
		{GUID: USDGuid, Namespace: consts.NamespaceCurrency, Mnemonic: "USD", Fullname: "US Dollar", Fraction: 100},
		{GUID: BHPGuid, Namespace: "ASX", Mnemonic: "BHP", Fullname: "BHP Group", Fraction: 10000, QuoteFlag: 1, QuoteSource: "yahoo_json"},
		{GUID: CBAGuid, Namespace: "ASX", Mnemonic: "CBA", Fullname: "Commonwealth Bank", Fraction: 10000},
	}
	for i := range seed {
		if err := conn.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed %s: %v", seed[i].Mnemonic, err)
		}
	}
	return conn
}

// CountPrices returns the number of rows in the prices table.
func CountPrices(t *testing.T, conn *gorm.DB) int {
	t.Helper()
	var n int
	if err := conn.Model(&model.Price{}).Count(&n).Error; err != nil {
		t.Fatalf("count prices: %v", err)
	}
	return n
}
