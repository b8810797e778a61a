package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"stockfolio/internal/client"
)

type stocksCmd struct {
	symbol     string
	company    string
	sortBy     string
	descending bool
	page       int
	pageSize   int
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "list stocks with optional filter, sort and paging" }
func (*stocksCmd) Usage() string {
	return `stocks [-symbol <substr>] [-company <substr>] [-sort symbol|companyName] [-desc] [-page N] [-size N]

  Lists stocks. Filters are substring matches and are combined.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "filter by symbol substring")
	f.StringVar(&c.company, "company", "", "filter by company name substring")
	f.StringVar(&c.sortBy, "sort", "", "sort key: symbol or companyName")
	f.BoolVar(&c.descending, "desc", false, "sort descending")
	f.IntVar(&c.page, "page", 1, "page number")
	f.IntVar(&c.pageSize, "size", 20, "page size")
}

func (c *stocksCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	stocks, err := newClient().ListStocks(ctx, client.StockQuery{
		Symbol:       c.symbol,
		CompanyName:  c.company,
		SortBy:       c.sortBy,
		IsDescending: c.descending,
		PageNumber:   c.page,
		PageSize:     c.pageSize,
	})
	if err != nil {
		reportAPIError(err)
		return subcommands.ExitFailure
	}

	printStocks(stocks)
	return subcommands.ExitSuccess
}

type addStockCmd struct {
	symbol    string
	company   string
	purchase  float64
	lastDiv   float64
	industry  string
	marketCap int64
}

func (*addStockCmd) Name() string     { return "add-stock" }
func (*addStockCmd) Synopsis() string { return "create a new stock" }
func (*addStockCmd) Usage() string {
	return `add-stock -symbol <sym> -company <name> [-purchase N] [-lastdiv N] [-industry <name>] [-marketcap N]

  Creates a stock and prints its assigned id.
`
}

func (c *addStockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "ticker symbol (required)")
	f.StringVar(&c.company, "company", "", "company name (required)")
	f.Float64Var(&c.purchase, "purchase", 0, "purchase price")
	f.Float64Var(&c.lastDiv, "lastdiv", 0, "last dividend")
	f.StringVar(&c.industry, "industry", "", "industry")
	f.Int64Var(&c.marketCap, "marketcap", 0, "market capitalization")
}

func (c *addStockCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.company == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol and -company are required.")
		return subcommands.ExitUsageError
	}

	stock, err := newClient().CreateStock(ctx, client.CreateStockPayload{
		Symbol:      c.symbol,
		CompanyName: c.company,
		Purchase:    c.purchase,
		LastDiv:     c.lastDiv,
		Industry:    c.industry,
		MarketCap:   c.marketCap,
	})
	if err != nil {
		reportAPIError(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created stock %s (id %d)\n", stock.Symbol, stock.ID)
	return subcommands.ExitSuccess
}

func printStocks(stocks []client.Stock) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSYMBOL\tCOMPANY\tPURCHASE\tLASTDIV\tINDUSTRY\tMARKETCAP")
	for _, s := range stocks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\t%s\t%d\n",
			s.ID, s.Symbol, s.CompanyName, s.Purchase, s.LastDiv, s.Industry, s.MarketCap)
	}
	w.Flush()
}
