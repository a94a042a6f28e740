package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"wallet/src/repositories"
	"wallet/src/schemas"
	"wallet/src/services"
	"wallet/src/utils"

	"github.com/google/subcommands"
)

type importCmd struct {
	output  string
	replace bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "extract mutual fund holdings from a workbook" }
func (*importCmd) Usage() string {
	return `holdings import [-o <out.csv>] [-replace] <workbook>

  Finds the scheme name and units columns of a statement workbook (xlsx or
  csv) and writes them to the mutual fund holdings file.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "holdings CSV to write (defaults to the configured mutual fund file)")
	f.BoolVar(&c.replace, "replace", false, "overwrite the holdings file instead of appending")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	workbook := f.Arg(0)

	cfg, logger, err := loadConfig()
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	output := c.output
	if output == "" {
		output = cfg.Storage.Path(cfg.Storage.MutualFunds)
	}

	file, err := os.Open(workbook)
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}
	defer file.Close()

	svc := services.NewImportService(services.NewExtractor(cfg.Import), repositories.NewMutualFundStore(output))
	ctx = utils.WithLogger(ctx, logger)
	res, err := svc.ImportWorkbook(ctx, file, schemas.ImportOptions{FileName: filepath.Base(workbook), Replace: c.replace})
	if err != nil {
		return fail(err, subcommands.ExitFailure)
	}

	fmt.Printf("Sheet %q, %s header at row %d (name column %d, units column %d)\n",
		res.Sheet, res.Tier, res.HeaderRow, res.NameColumn, res.QtyColumn)
	fmt.Printf("Wrote %d schemes to %s\n", res.RecordsCount, output)
	return subcommands.ExitSuccess
}
