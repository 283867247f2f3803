package manage_schedule

import (
	"context"

	"github.com/rsmnv/RST-BookingService/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateRule(ctx context.Context, req *models.RuleRequest) (*models.RuleResponse, error)
	UpdateRule(ctx context.Context, req *models.RuleRequest) error
	DeleteRule(ctx context.Context, id int64) error
	ReplaceRules(ctx context.Context, req *models.ReplaceRulesRequest) error

	CreateRecurringBlock(ctx context.Context, req *models.RecurringBlockRequest) (*models.RecurringBlockResponse, error)
	UpdateRecurringBlock(ctx context.Context, req *models.RecurringBlockRequest) error
	DeleteRecurringBlock(ctx context.Context, id int64) error

	CreateTimeBlock(ctx context.Context, req *models.TimeBlockRequest) (*models.TimeBlockResponse, error)
	DeleteTimeBlock(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
