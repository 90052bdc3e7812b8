package gui

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Step renders the config window and then the chat window.
// Failures are expected once the windows are gone and are only logged.
func (c *Controller) Step() {
	for _, s := range []Surface{c.config, c.chat} {
		if err := s.Render(); err != nil {
			c.logger.Warn("Failed to update windows (this is normal while quitting the program)", zap.Error(err))
			return
		}
	}
}

// Run polls both windows every interval until Shutdown is called.
// Cancelling ctx is treated as an interrupt.
func (c *Controller) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.logger.Info("Starting main loop")

	interrupted := ctx.Done()
	for c.Running() {
		c.Step()

		select {
		case <-interrupted:
			interrupted = nil
			c.Interrupt()
		case <-c.done:
		case <-ticker.C:
		}
	}

	c.logger.Info("Main loop stopped")
}
