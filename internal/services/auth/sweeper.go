package auth

import (
	"context"
	"time"

	"listingadmin/internal/logger"
)

// RunSweeper deletes expired sessions every interval until ctx is done.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration, log *logger.Logger) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.Sweep(ctx)
			if err != nil {
				log.Error("Session sweep failed: %v", err)
				continue
			}
			if n > 0 {
				log.Info("Removed %d expired session(s)", n)
			}
		}
	}
}
