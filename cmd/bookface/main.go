package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AntonStoeckl/bookface-go/library/shared/core"
)

const serviceName = "bookface"

func main() {
	cfg := parseFlags()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, os.Stdout, os.Stderr)
	if err != nil {
		stop()
		log.Fatalf("Failed to open the library in %s: %v", cfg.DataDir, err)
	}

	runErr := app.run(ctx, flag.Args(), time.Now())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err = app.close(shutdownCtx); err != nil {
		log.Printf("Failed to shut down observability: %v", err)
	}

	if runErr != nil {
		var illegal core.IllegalValueError
		if errors.As(runErr, &illegal) {
			fmt.Fprintln(os.Stderr, illegal.Reason)
		} else {
			fmt.Fprintln(os.Stderr, runErr)
		}

		cancel()
		stop()
		os.Exit(1) //nolint:gocritic
	}
}
