package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "list the stocks you hold" }
func (*portfolioCmd) Usage() string {
	return "portfolio\n\n  Lists your held stocks. Requires login.\n"
}
func (*portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stocks, err := newClient().Portfolio(ctx)
	if err != nil {
		reportAPIError(err)
		return subcommands.ExitFailure
	}
	printStocks(stocks)
	return subcommands.ExitSuccess
}

type portfolioAddCmd struct {
	symbol string
}

func (*portfolioAddCmd) Name() string     { return "portfolio-add" }
func (*portfolioAddCmd) Synopsis() string { return "add a stock to your portfolio" }
func (*portfolioAddCmd) Usage() string {
	return "portfolio-add -symbol <sym>\n\n  Adds a held stock. Requires login.\n"
}

func (c *portfolioAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "ticker symbol (required)")
}

func (c *portfolioAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required.")
		return subcommands.ExitUsageError
	}
	if err := newClient().AddToPortfolio(ctx, c.symbol); err != nil {
		reportAPIError(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s to portfolio\n", c.symbol)
	return subcommands.ExitSuccess
}

type portfolioRmCmd struct {
	symbol string
}

func (*portfolioRmCmd) Name() string     { return "portfolio-rm" }
func (*portfolioRmCmd) Synopsis() string { return "remove a stock from your portfolio" }
func (*portfolioRmCmd) Usage() string {
	return "portfolio-rm -symbol <sym>\n\n  Removes a held stock. Requires login.\n"
}

func (c *portfolioRmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "ticker symbol (required)")
}

func (c *portfolioRmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required.")
		return subcommands.ExitUsageError
	}
	if err := newClient().RemoveFromPortfolio(ctx, c.symbol); err != nil {
		reportAPIError(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s from portfolio\n", c.symbol)
	return subcommands.ExitSuccess
}
