package entity

type UploadPricesRequest struct {
	FilePath    string `json:"file_path"`
	Share       string `json:"share"`
	Currency    string `json:"currency"`
	Header      *bool  `json:"header"`
	StrictDates bool   `json:"strict_dates"`
}

// ScheduledUpload is one cron entry of the cron server.
type ScheduledUpload struct {
	Name        string `yaml:"name"`
	Cron        string `yaml:"cron"`
	File        string `yaml:"file"`
	Share       string `yaml:"share"`
	Currency    string `yaml:"currency"`
	Header      *bool  `yaml:"header"`
	StrictDates bool   `yaml:"strict_dates"`
}

// Options resolves the header default, which is true when unset.
func (s ScheduledUpload) Options() ReadOptions {
	header := true
	if s.Header != nil {
		header = *s.Header
	}
	return ReadOptions{Header: header, StrictDates: s.StrictDates}
}

func (s ScheduledUpload) Identity() CommodityIdentity {
	return CommodityIdentity{ShareName: s.Share, CurrencyName: s.Currency}
}
