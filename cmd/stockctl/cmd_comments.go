package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type commentsCmd struct{}

func (*commentsCmd) Name() string             { return "comments" }
func (*commentsCmd) Synopsis() string         { return "list all comments" }
func (*commentsCmd) Usage() string            { return "comments\n\n  Lists every comment with its author.\n" }
func (*commentsCmd) SetFlags(f *flag.FlagSet) {}

func (c *commentsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	comments, err := newClient().Comments(ctx)
	if err != nil {
		reportAPIError(err)
		return subcommands.ExitFailure
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTOCK\tAUTHOR\tCREATED\tTITLE")
	for _, cm := range comments {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\n",
			cm.ID, cm.StockID, cm.CreatedBy, cm.CreatedOn.Format("2006-01-02"), cm.Title)
	}
	w.Flush()
	return subcommands.ExitSuccess
}

type commentCmd struct {
	stockID uint
	title   string
	content string
}

func (*commentCmd) Name() string     { return "comment" }
func (*commentCmd) Synopsis() string { return "comment on a stock" }
func (*commentCmd) Usage() string {
	return `comment -stock <id> -title <title> -content <text>

  Attaches a comment to a stock. Title and content must be 5-280 characters.
  Requires login.
`
}

func (c *commentCmd) SetFlags(f *flag.FlagSet) {
	f.UintVar(&c.stockID, "stock", 0, "stock id (required)")
	f.StringVar(&c.title, "title", "", "comment title (required)")
	f.StringVar(&c.content, "content", "", "comment content (required)")
}

func (c *commentCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.stockID == 0 || c.title == "" || c.content == "" {
		fmt.Fprintln(os.Stderr, "Error: -stock, -title and -content are required.")
		return subcommands.ExitUsageError
	}

	comment, err := newClient().CreateComment(ctx, c.stockID, c.title, c.content)
	if err != nil {
		reportAPIError(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Comment %d created on stock %d\n", comment.ID, comment.StockID)
	return subcommands.ExitSuccess
}
