// Command mail-worker consumes queued mail jobs and delivers them over SMTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/account-service/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunMailWorker(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "mail-worker: %v\n", err)
		os.Exit(1)
	}
}
