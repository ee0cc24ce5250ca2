package lifecycle

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/luminaos/lumina-welcome/internal/logging"
)

// HookCleanup installs a handler so SIGINT/SIGTERM release the session
// marker before the process dies, avoiding an orphaned lock that would
// block the next launch in this session. A nil marker installs nothing.
//
// Release is idempotent, so racing the normal exit path is harmless.
func HookCleanup(marker *SessionMarker, logger *logging.Logger) {
	if marker == nil {
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Info().Str("signal", sig.String()).Msg("Received termination signal, cleaning up")
		marker.Release()

		// Conventional 128+signum exit status
		code := 1
		if num, ok := sig.(syscall.Signal); ok {
			code = 128 + int(num)
		}
		os.Exit(code)
	}()
}
