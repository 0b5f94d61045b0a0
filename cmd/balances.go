package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mjansen/vavoping"
	"github.com/mjansen/vavoping/bitvavo"
	"github.com/mjansen/vavoping/renderer"
)

// balancesCmd holds the flags for the 'balances' subcommand.
type balancesCmd struct {
	raw      bool
	currency string
}

func (*balancesCmd) Name() string     { return "balances" }
func (*balancesCmd) Synopsis() string { return "display the account balances on the terminal" }
func (*balancesCmd) Usage() string {
	return `vp balances [-raw] [-currency <cur>]

  Fetches and values the account balances, and prints the summary to the
  terminal. Nothing is sent anywhere.
`
}

func (c *balancesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "skip valuation, list raw balances only")
	f.StringVar(&c.currency, "currency", "EUR", "reporting currency, EUR or USD")
}

func (c *balancesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	cfg := vavoping.ConfigFromEnv()
	if err := cfg.RequireExchange(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := vavoping.BuildSummary(ctx, bitvavo.New(cfg.APIKey, cfg.APISecret), c.raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.currency != "" && c.currency != "EUR" && !c.raw {
		rate, err := vavoping.LatestRate(c.currency)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot resolve %s rate: %v\n", c.currency, err)
			return subcommands.ExitFailure
		}
		s = s.Convert(c.currency, rate)
	}

	printMarkdown(renderer.Message(s))
	return subcommands.ExitSuccess
}
