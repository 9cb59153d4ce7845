package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Rhymond/go-money"
	"github.com/google/subcommands"

	"github.com/radhian/price-upload-system/entity"
	"github.com/radhian/price-upload-system/infra/db"
	"github.com/radhian/price-upload-system/infra/db/dao"
	"github.com/radhian/price-upload-system/usecase/priceupload"
)

type uploadCmd struct {
	db       dbFlags
	file     string
	share    string
	currency string
	header   bool
	strict   bool

	out io.Writer
}

func (*uploadCmd) Name() string { return "upload" }
func (*uploadCmd) Synopsis() string {
	return "Uploads a share price history file into the GnuCash prices table."
}
func (*uploadCmd) Usage() string {
	return `price-upload upload -f <file.csv> -s <share> [--currency AUD] [--header=false]

  Reads "date,open,high,low,close,adj close,volume" lines and stores the close
  of every day as a Finance::Quote "last" price. A day that already has a price
  is overwritten. Lines that cannot be read are reported and skipped.
`
}

func (c *uploadCmd) SetFlags(f *flag.FlagSet) {
	c.db.register(f)
	f.StringVar(&c.file, "file", "", "File Name with Share Price Data")
	f.StringVar(&c.file, "f", "", "File Name with Share Price Data (shorthand)")
	f.StringVar(&c.share, "share", "", "Share Name")
	f.StringVar(&c.share, "s", "", "Share Name (shorthand)")
	f.StringVar(&c.currency, "currency", "", "Currency Name (default from config, AUD)")
	f.BoolVar(&c.header, "header", true, "First line of .csv file is headings.")
	f.BoolVar(&c.strict, "strict", false, "Reject dates that do not exist in the calendar.")
}

func (c *uploadCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(f); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var usageErr usageError
		if errors.As(err, &usageErr) {
			f.Usage()
			return subcommands.ExitUsageError
		}
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

type usageError string

func (e usageError) Error() string { return string(e) }

func (c *uploadCmd) run(f *flag.FlagSet) error {
	cfg, err := loadConfig(&c.db, f)
	if err != nil {
		return err
	}
	l, err := newLogger(cfg, c.out)
	if err != nil {
		return err
	}

	l.Infof("gnuCash: Share Price Upload")
	l.Infof("Version: %s (%s)", version, buildDate)

	if c.file == "" {
		l.Errorf("Input file name not specified. Use --file or -f option.")
		return usageError("input file not specified")
	}
	if _, err := os.Stat(c.file); err != nil {
		l.Errorf("Input file not found.")
		return fmt.Errorf("input file not found: %s", c.file)
	}
	if c.share == "" {
		return usageError("share not specified, use --share or -s option")
	}
	currency := c.currency
	if currency == "" {
		currency = cfg.Upload.Currency
	}
	if money.GetCurrency(currency) == nil {
		return usageError(fmt.Sprintf("currency %q is not an ISO 4217 code", currency))
	}

	opts := cfg.ReadOptions()
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "header":
			opts.Header = c.header
		case "strict":
			opts.StrictDates = c.strict
		}
	})

	conn, err := db.Open(cfg.Database)
	if err != nil {
		l.Errorf("Unable to connect to database.")
		return err
	}
	defer conn.Close()

	uc := priceupload.NewPriceUploadUsecase(dao.NewDaoMethod(conn), l)
	identity := entity.CommodityIdentity{ShareName: c.share, CurrencyName: currency}

	res, err := uc.UploadFile(c.file, identity, opts)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.output(), "%s: %d records written (%d inserted, %d updated), %d lines skipped\n",
		identity, res.Summary.Written, res.Summary.Inserted, res.Summary.Updated, len(res.LineErrors))
	return nil
}

func (c *uploadCmd) output() io.Writer {
	if c.out != nil {
		return c.out
	}
	return os.Stdout
}
