package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/radhian/price-upload-system/entity"
	"github.com/radhian/price-upload-system/infra/db"
	"github.com/radhian/price-upload-system/infra/db/dao"
	"github.com/radhian/price-upload-system/usecase/priceupload"
)

type listCmd struct {
	db       dbFlags
	share    string
	currency string

	out io.Writer
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "Lists the prices stored for a share." }
func (*listCmd) Usage() string {
	return `price-upload list -s <share> [--currency AUD]
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	c.db.register(f)
	f.StringVar(&c.share, "share", "", "Share Name")
	f.StringVar(&c.share, "s", "", "Share Name (shorthand)")
	f.StringVar(&c.currency, "currency", "", "Currency Name (default from config, AUD)")
}

func (c *listCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.share == "" {
		fmt.Fprintln(os.Stderr, "Please provide the share with --share or -s.")
		return subcommands.ExitUsageError
	}
	if err := c.run(f); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *listCmd) run(f *flag.FlagSet) error {
	cfg, err := loadConfig(&c.db, f)
	if err != nil {
		return err
	}
	l, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	currency := c.currency
	if currency == "" {
		currency = cfg.Upload.Currency
	}

	conn, err := db.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	uc := priceupload.NewPriceUploadUsecase(dao.NewDaoMethod(conn), l)
	prices, err := uc.ListPrices(entity.CommodityIdentity{ShareName: c.share, CurrencyName: currency})
	if err != nil {
		return err
	}

	out := c.out
	if out == nil {
		out = os.Stdout
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tVALUE\tTYPE\tSOURCE")
	for _, p := range prices {
		fmt.Fprintf(w, "%s\t%g\t%s\t%s\n", p.Date, p.Value, p.Kind, p.Source)
	}
	return w.Flush()
}
