package schedule

import (
	"context"

	"github.com/rsmnv/RST-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписания
type ScheduleRepository interface {
	CreateRule(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	UpdateRule(ctx context.Context, rule *domain.AvailabilityRule) error
	DeleteRule(ctx context.Context, id int64) error
	DeleteRulesByWeekdays(ctx context.Context, weekdays []int) error
	ListRules(ctx context.Context) ([]*domain.AvailabilityRule, error)

	CreateRecurringBlock(ctx context.Context, block *domain.RecurringBlock) (*domain.RecurringBlock, error)
	UpdateRecurringBlock(ctx context.Context, block *domain.RecurringBlock) error
	DeleteRecurringBlock(ctx context.Context, id int64) error
	ListRecurringBlocks(ctx context.Context) ([]*domain.RecurringBlock, error)

	CreateTimeBlock(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error)
	DeleteTimeBlock(ctx context.Context, id int64) error
	ListTimeBlocks(ctx context.Context) ([]*domain.TimeBlock, error)
}

// TransactionManager интерфейс для управления транзакциями: замена правил
// дня выполняется атомарно (удаление + вставка)
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
