package model

// Price maps the GnuCash prices table. Value is the rational ValueNum/ValueDenom.
type Price struct {
	GUID          string `gorm:"column:guid;primary_key;size:32" json:"guid"`
	CommodityGUID string `gorm:"column:commodity_guid;size:32;not null" json:"commodity_guid"`
	CurrencyGUID  string `gorm:"column:currency_guid;size:32;not null" json:"currency_guid"`
	Date          string `gorm:"column:date;size:19;not null" json:"date"`
	Source        string `gorm:"column:source;size:2048" json:"source"`
	Type          string `gorm:"column:type;size:2048" json:"type"`
	ValueNum      int64  `gorm:"column:value_num;not null" json:"value_num"`
	ValueDenom    int64  `gorm:"column:value_denom;not null" json:"value_denom"`
}

func (Price) TableName() string { return "prices" }

// Float returns the price value as a float64.
func (p Price) Float() float64 {
	if p.ValueDenom == 0 {
		return 0
	}
	return float64(p.ValueNum) / float64(p.ValueDenom)
}
