package consts

const (
	// Provenance tags stamped on every uploaded price
	PriceTypeLast     = "last"
	PriceSourceFQuote = "Finance::Quote"

	// GnuCash commodity namespace for currencies
	NamespaceCurrency = "CURRENCY"

	// Prices are stored at the GnuCash neutral time of day
	PriceTimeOfDay = "10:59:00"

	// Largest decimal scale kept when converting a value to num/denom
	MaxValueScale = 9

	// Column layout: date,open,high,low,close,adj_close,volume
	ColumnDelimiter = ","
	ColumnDate      = 0
	ColumnClose     = 4

	// Default config, matching a stock GnuCash SQL setup
	DefaultDBDriver   = "mysql"
	DefaultDBHost     = "localhost"
	DefaultDBPort     = 3306
	DefaultDBName     = "gnucash"
	DefaultDBUser     = "GNUCASH"
	DefaultDBPassword = "GNUCASH"
	DefaultDBSSLMode  = "disable"
	DefaultCurrency   = "AUD"
	DefaultServerPort = "8080"
	DefaultLogLevel   = "info"
	DefaultUploadDir  = "uploads"
)
