package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/escbytes"
	"github.com/aretw0/escbytes/internal/logging"
)

// RunConvert converts the fixed artifacts in dir. SIGINT or SIGTERM before
// the write phase aborts the run without touching the output.
func RunConvert(dir string, debug bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conv, err := escbytes.New(dir, escbytes.WithLogger(logging.ForDebug(debug)))
	if err != nil {
		return fmt.Errorf("failed to init converter: %w", err)
	}
	return conv.Run(ctx)
}
