package service

import (
	"context"
	"earlyledge_backend/internal/plan"
	"earlyledge_backend/internal/repository"
	"earlyledge_backend/pkg/logger"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ArchiveService renders last month's snapshot PDF for every plus-tier child
// and files it in object storage. Runs from the monthly cron job.
type ArchiveService struct {
	SubscriptionRepo *repository.SubscriptionRepository
	ChildRepo        *repository.ChildRepository
	Reports          *ReportService
	Storage          StorageProvider
}

func NewArchiveService(
	subscriptionRepo *repository.SubscriptionRepository,
	childRepo *repository.ChildRepository,
	reports *ReportService,
	storage StorageProvider,
) *ArchiveService {
	return &ArchiveService{
		SubscriptionRepo: subscriptionRepo,
		ChildRepo:        childRepo,
		Reports:          reports,
		Storage:          storage,
	}
}

// ArchivePreviousMonth archives the month that just ended. One failing child
// is logged and skipped rather than aborting the whole batch.
func (s *ArchiveService) ArchivePreviousMonth(ctx context.Context) error {
	month := time.Now().AddDate(0, -1, 0).Format("2006-01")
	return s.ArchiveMonth(ctx, month)
}

func (s *ArchiveService) ArchiveMonth(ctx context.Context, month string) error {
	userIDs, err := s.SubscriptionRepo.ListUserIDsByPlan(plan.Plus)
	if err != nil {
		return err
	}

	var archived, failed int
	for _, userID := range userIDs {
		children, err := s.ChildRepo.ListForUser(userID)
		if err != nil {
			logger.Log.Error("archive: listing children failed",
				zap.Uint("user_id", userID), zap.Error(err))
			failed++
			continue
		}
		for _, child := range children {
			if err := s.archiveChild(ctx, userID, child.ID, month); err != nil {
				logger.Log.Error("archive: snapshot failed",
					zap.Uint("user_id", userID), zap.Uint("child_id", child.ID),
					zap.String("month", month), zap.Error(err))
				failed++
				continue
			}
			archived++
		}
	}

	logger.Log.Info("monthly report archive finished",
		zap.String("month", month), zap.Int("archived", archived), zap.Int("failed", failed))
	return nil
}

func (s *ArchiveService) archiveChild(ctx context.Context, userID, childID uint, month string) error {
	data, filename, err := s.Reports.MonthlyPDF(userID, childID, month)
	if err != nil {
		return err
	}
	key := fmt.Sprintf("archives/%d/%d/%s", userID, childID, filename)
	_, err = UploadBytes(ctx, s.Storage, key, data, "application/pdf")
	return err
}
