// Command lvsearch runs heuristic searches described in YAML problem files.
//
//	lvsearch run problem.yaml
//	lvsearch run problem.yaml --strategy beam --format json
//	lvsearch andor plans.yaml
//	lvsearch batch a.yaml b.yaml --concurrency 4 --metrics-out search.prom
//	lvsearch random --n 50 --p 0.1 --seed 7
//	lvsearch watch problem.yaml
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// Interrupts cancel running searches, which then report "cancelled".
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
