// Command token-sweeper removes orphan verification-token keys and resets
// password-reset and email-change operations whose token has expired.
//
// Usage:
//
//	token-sweeper [-once]
//
// Without -once it runs on SWEEPER_SCHEDULE until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/account-service/internal/app"
)

func main() {
	once := flag.Bool("once", false, "run a single sweep and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunSweeper(ctx, *once); err != nil {
		fmt.Fprintf(os.Stderr, "token-sweeper: %v\n", err)
		os.Exit(1)
	}
}
