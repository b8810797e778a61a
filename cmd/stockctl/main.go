package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

var apiURL = flag.String("api", envOr("STOCKFOLIO_API", "http://localhost:8080"), "base URL of the stockfolio API")

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(&registerCmd{}, "account")
	commander.Register(&loginCmd{}, "account")
	commander.Register(&logoutCmd{}, "account")
	commander.Register(&stocksCmd{}, "stocks")
	commander.Register(&addStockCmd{}, "stocks")
	commander.Register(&portfolioCmd{}, "portfolio")
	commander.Register(&portfolioAddCmd{}, "portfolio")
	commander.Register(&portfolioRmCmd{}, "portfolio")
	commander.Register(&commentsCmd{}, "comments")
	commander.Register(&commentCmd{}, "comments")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
