package model

// Commodity maps the GnuCash commodities table. Currencies live here too,
// under the CURRENCY namespace.
type Commodity struct {
	GUID        string `gorm:"column:guid;primary_key;size:32" json:"guid"`
	Namespace   string `gorm:"column:namespace;size:2048;not null" json:"namespace"`
	Mnemonic    string `gorm:"column:mnemonic;size:2048;not null" json:"mnemonic"`
	Fullname    string `gorm:"column:fullname;size:2048" json:"fullname"`
	Cusip       string `gorm:"column:cusip;size:2048" json:"cusip"`
	Fraction    int    `gorm:"column:fraction;not null" json:"fraction"`
	QuoteFlag   int    `gorm:"column:quote_flag;not null" json:"quote_flag"`
	QuoteSource string `gorm:"column:quote_source;size:2048" json:"quote_source"`
	QuoteTz     string `gorm:"column:quote_tz;size:2048" json:"quote_tz"`
}

func (Commodity) TableName() string { return "commodities" }
