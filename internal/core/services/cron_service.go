package services

import (
	"context"
	"log"

	"psiconnect-backend/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs
type CronService struct {
	refreshTokenRepo repositories.RefreshTokenRepository
	cron             *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(refreshTokenRepo repositories.RefreshTokenRepository) *CronService {
	return &CronService{
		refreshTokenRepo: refreshTokenRepo,
		cron:             cron.New(),
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	// 03:00 daily: drop expired and revoked refresh tokens
	if _, err := s.cron.AddFunc("0 3 * * *", s.purgeRefreshTokens); err != nil {
		log.Printf("⚠️ Failed to schedule refresh token purge: %v", err)
		return
	}

	s.cron.Start()
	log.Println("✅ Cron service started")
}

// Stop stops the scheduler, waiting for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 Cron service stopped")
}

func (s *CronService) purgeRefreshTokens() {
	if err := s.refreshTokenRepo.DeleteExpired(context.Background()); err != nil {
		log.Printf("⚠️ Refresh token purge failed: %v", err)
		return
	}
	log.Println("🧹 Expired refresh tokens purged")
}
