package workflow

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/hekimalabs/smas_backend/config"
	"github.com/hekimalabs/smas_backend/models"
	"github.com/hekimalabs/smas_backend/utils"
)

// RecordActivity writes the audit row inside the caller's transaction
// and publishes the event after the fact. Publishing is best effort;
// the audit row is the source of truth.
func RecordActivity(ctx context.Context, tx *gorm.DB, logger *logrus.Logger, branchId uint, module string, activityType models.ActivityType, description string) error {
	userId, _ := utils.GetUserIdFromContext(ctx)

	activity := models.Activity{
		BranchId:     branchId,
		UserId:       userId,
		Module:       module,
		ActivityType: activityType,
		Description:  description,
	}

	if err := tx.Create(&activity).Error; err != nil {
		config.LogError(logger, "activityWorkflow.go", "RecordActivity", "Create", activity, err)
		return err
	}

	correlationId, _ := utils.GetCorrelationIdFromContext(ctx)
	event := config.ActivityEvent{
		BranchId:      branchId,
		UserId:        userId,
		Module:        module,
		Type:          string(activityType),
		Description:   description,
		OccurredAt:    time.Now().UTC(),
		CorrelationId: correlationId,
	}
	if err := config.PublishActivityEvent(ctx, event); err != nil {
		config.LogError(logger, "activityWorkflow.go", "RecordActivity", "PublishActivityEvent", event, err)
	}

	return nil
}
