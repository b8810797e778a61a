package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type registerCmd struct {
	username string
	email    string
	password string
}

func (*registerCmd) Name() string     { return "register" }
func (*registerCmd) Synopsis() string { return "create an account and store the issued token" }
func (*registerCmd) Usage() string {
	return `register -username <name> -email <email> -password <password>

  Registers a new account. On success the issued token is stored locally and
  used for subsequent authenticated commands.
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "username", "", "username (required)")
	f.StringVar(&c.email, "email", "", "email address (required)")
	f.StringVar(&c.password, "password", "", "password, at least 12 chars with upper, lower, digit and special (required)")
}

func (c *registerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.email == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -username, -email and -password are required.")
		return subcommands.ExitUsageError
	}

	user, err := newClient().Register(ctx, c.username, c.email, c.password)
	if err != nil {
		reportAPIError(err)
		return subcommands.ExitFailure
	}
	if err := saveCredentials(user); err != nil {
		fmt.Fprintf(os.Stderr, "Error storing credentials: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Registered and logged in as %s <%s>\n", user.Username, user.Email)
	return subcommands.ExitSuccess
}

type loginCmd struct {
	username string
	password string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "authenticate and store the issued token" }
func (*loginCmd) Usage() string {
	return `login -username <name> -password <password>

  Logs in and stores the issued token locally.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "username", "", "username (required)")
	f.StringVar(&c.password, "password", "", "password (required)")
}

func (c *loginCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.username == "" || c.password == "" {
		fmt.Fprintln(os.Stderr, "Error: -username and -password are required.")
		return subcommands.ExitUsageError
	}

	user, err := newClient().Login(ctx, c.username, c.password)
	if err != nil {
		reportAPIError(err)
		return subcommands.ExitFailure
	}
	if err := saveCredentials(user); err != nil {
		fmt.Fprintf(os.Stderr, "Error storing credentials: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Logged in as %s <%s>\n", user.Username, user.Email)
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string             { return "logout" }
func (*logoutCmd) Synopsis() string         { return "discard the stored token" }
func (*logoutCmd) Usage() string            { return "logout\n\n  Removes locally stored credentials.\n" }
func (*logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := clearCredentials(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Logged out")
	return subcommands.ExitSuccess
}
