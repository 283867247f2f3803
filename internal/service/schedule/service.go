package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rsmnv/RST-BookingService/internal/domain"
	scheduleRepo "github.com/rsmnv/RST-BookingService/internal/infra/storage/schedule"
	"github.com/rsmnv/RST-BookingService/internal/service/schedule/models"
)

// Service сервис управления расписанием: правила рабочих часов, еженедельные
// и разовые блокировки
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		location:     location,
		logger:       logger,
	}
}

// GetSchedule получает полное расписание: правила, еженедельные и разовые
// блокировки
func (s *Service) GetSchedule(ctx context.Context) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching full schedule")

	rules, err := s.scheduleRepo.ListRules(ctx)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list rules: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - list rules: %v", ErrInternal, err)
	}

	recurring, err := s.scheduleRepo.ListRecurringBlocks(ctx)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list recurring blocks: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - list recurring blocks: %v", ErrInternal, err)
	}

	timeBlocks, err := s.scheduleRepo.ListTimeBlocks(ctx)
	if err != nil {
		s.logger.Error("GetSchedule: failed to list time blocks: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - list time blocks: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(&domain.WeeklySchedule{
		Rules:           rules,
		RecurringBlocks: recurring,
		TimeBlocks:      timeBlocks,
	}), nil
}

// CreateRule создает правило рабочих часов
func (s *Service) CreateRule(ctx context.Context, req *models.RuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("CreateRule: weekday=%d, [%d, %d)", req.Weekday, req.StartMinutes, req.EndMinutes)

	if err := validateMinuteWindow(req.Weekday, req.StartMinutes, req.EndMinutes); err != nil {
		s.logger.Warn("CreateRule: validation failed: %v", err)
		return nil, err
	}

	rule, err := s.scheduleRepo.CreateRule(ctx, req.ToDomainRule())
	if err != nil {
		s.logger.Error("CreateRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRule: successfully created rule id=%d", rule.ID)
	return models.FromDomainRule(rule), nil
}

// UpdateRule обновляет правило рабочих часов
func (s *Service) UpdateRule(ctx context.Context, req *models.RuleRequest) error {
	if req.ID == nil {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	s.logger.Info("UpdateRule: id=%d, weekday=%d, [%d, %d)", *req.ID, req.Weekday, req.StartMinutes, req.EndMinutes)

	if err := validateMinuteWindow(req.Weekday, req.StartMinutes, req.EndMinutes); err != nil {
		s.logger.Warn("UpdateRule: validation failed: %v", err)
		return err
	}

	if err := s.scheduleRepo.UpdateRule(ctx, req.ToDomainRule()); err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			s.logger.Warn("UpdateRule: rule id=%d not found", *req.ID)
			return ErrRuleNotFound
		}
		s.logger.Error("UpdateRule: repository error: %v", err)
		return fmt.Errorf("%w: UpdateRule - repository error: %v", ErrInternal, err)
	}

	return nil
}

// DeleteRule удаляет правило рабочих часов
func (s *Service) DeleteRule(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRule: id=%d", id)

	if err := s.scheduleRepo.DeleteRule(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteRule: rule id=%d not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteRule: repository error: %v", err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	return nil
}

// ReplaceRules атомарно заменяет рабочие часы указанных дней: старые правила
// этих дней удаляются, новые создаются в одной транзакции. Так админка
// перезаписывает недельный график без промежуточных состояний.
func (s *Service) ReplaceRules(ctx context.Context, req *models.ReplaceRulesRequest) error {
	s.logger.Info("ReplaceRules: replacing rules for weekdays=%v with %d rules", req.Weekdays, len(req.Rules))

	if len(req.Weekdays) == 0 {
		return fmt.Errorf("%w: weekdays are required", ErrInvalidInput)
	}

	allowed := make(map[int]bool, len(req.Weekdays))
	for _, weekday := range req.Weekdays {
		if weekday < domain.MinWeekday || weekday > domain.MaxWeekday {
			return fmt.Errorf("%w: weekday must be between %d and %d", ErrInvalidInput, domain.MinWeekday, domain.MaxWeekday)
		}
		allowed[weekday] = true
	}

	for _, rule := range req.Rules {
		if err := validateMinuteWindow(rule.Weekday, rule.StartMinutes, rule.EndMinutes); err != nil {
			s.logger.Warn("ReplaceRules: validation failed: %v", err)
			return err
		}
		if !allowed[rule.Weekday] {
			return fmt.Errorf("%w: rule weekday %d is not in replaced weekdays", ErrInvalidInput, rule.Weekday)
		}
	}

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.scheduleRepo.DeleteRulesByWeekdays(txCtx, req.Weekdays); err != nil {
			return fmt.Errorf("%w: ReplaceRules - delete rules: %v", ErrInternal, err)
		}

		for i := range req.Rules {
			if _, err := s.scheduleRepo.CreateRule(txCtx, req.Rules[i].ToDomainRule()); err != nil {
				return fmt.Errorf("%w: ReplaceRules - create rule: %v", ErrInternal, err)
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return err
		}
		s.logger.Error("ReplaceRules: transaction failed: %v", err)
		return fmt.Errorf("%w: ReplaceRules - transaction: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceRules: successfully replaced rules for weekdays=%v", req.Weekdays)
	return nil
}

// CreateRecurringBlock создает еженедельную блокировку
func (s *Service) CreateRecurringBlock(ctx context.Context, req *models.RecurringBlockRequest) (*models.RecurringBlockResponse, error) {
	s.logger.Info("CreateRecurringBlock: weekday=%d, [%d, %d)", req.Weekday, req.StartMinutes, req.EndMinutes)

	block, err := s.buildRecurringBlock(req)
	if err != nil {
		s.logger.Warn("CreateRecurringBlock: validation failed: %v", err)
		return nil, err
	}

	created, err := s.scheduleRepo.CreateRecurringBlock(ctx, block)
	if err != nil {
		s.logger.Error("CreateRecurringBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRecurringBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRecurringBlock: successfully created block id=%d", created.ID)
	return models.FromDomainRecurringBlock(created), nil
}

// UpdateRecurringBlock обновляет еженедельную блокировку
func (s *Service) UpdateRecurringBlock(ctx context.Context, req *models.RecurringBlockRequest) error {
	if req.ID == nil {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	s.logger.Info("UpdateRecurringBlock: id=%d", *req.ID)

	block, err := s.buildRecurringBlock(req)
	if err != nil {
		s.logger.Warn("UpdateRecurringBlock: validation failed: %v", err)
		return err
	}

	if err := s.scheduleRepo.UpdateRecurringBlock(ctx, block); err != nil {
		if errors.Is(err, scheduleRepo.ErrRecurringBlockNotFound) {
			s.logger.Warn("UpdateRecurringBlock: block id=%d not found", *req.ID)
			return ErrRecurringBlockNotFound
		}
		s.logger.Error("UpdateRecurringBlock: repository error: %v", err)
		return fmt.Errorf("%w: UpdateRecurringBlock - repository error: %v", ErrInternal, err)
	}

	return nil
}

// DeleteRecurringBlock удаляет еженедельную блокировку
func (s *Service) DeleteRecurringBlock(ctx context.Context, id int64) error {
	s.logger.Info("DeleteRecurringBlock: id=%d", id)

	if err := s.scheduleRepo.DeleteRecurringBlock(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrRecurringBlockNotFound) {
			s.logger.Warn("DeleteRecurringBlock: block id=%d not found", id)
			return ErrRecurringBlockNotFound
		}
		s.logger.Error("DeleteRecurringBlock: repository error: %v", err)
		return fmt.Errorf("%w: DeleteRecurringBlock - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CreateTimeBlock создает разовую блокировку
func (s *Service) CreateTimeBlock(ctx context.Context, req *models.TimeBlockRequest) (*models.TimeBlockResponse, error) {
	s.logger.Info("CreateTimeBlock: [%s, %s)", req.StartAt, req.EndAt)

	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return nil, fmt.Errorf("%w: startAt and endAt are required", ErrInvalidInput)
	}
	if !req.StartAt.Before(req.EndAt) {
		return nil, fmt.Errorf("%w: startAt must be before endAt", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	created, err := s.scheduleRepo.CreateTimeBlock(ctx, req.ToDomainTimeBlock())
	if err != nil {
		s.logger.Error("CreateTimeBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateTimeBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateTimeBlock: successfully created block id=%d", created.ID)
	return models.FromDomainTimeBlock(created), nil
}

// DeleteTimeBlock удаляет разовую блокировку
func (s *Service) DeleteTimeBlock(ctx context.Context, id int64) error {
	s.logger.Info("DeleteTimeBlock: id=%d", id)

	if err := s.scheduleRepo.DeleteTimeBlock(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrTimeBlockNotFound) {
			s.logger.Warn("DeleteTimeBlock: block id=%d not found", id)
			return ErrTimeBlockNotFound
		}
		s.logger.Error("DeleteTimeBlock: repository error: %v", err)
		return fmt.Errorf("%w: DeleteTimeBlock - repository error: %v", ErrInternal, err)
	}

	return nil
}

// Вспомогательные методы

// buildRecurringBlock валидирует и конвертирует request в domain модель
func (s *Service) buildRecurringBlock(req *models.RecurringBlockRequest) (*domain.RecurringBlock, error) {
	if err := validateMinuteWindow(req.Weekday, req.StartMinutes, req.EndMinutes); err != nil {
		return nil, err
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	block, err := req.ToDomainRecurringBlock(s.location)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected %s", ErrInvalidInput, domain.DateFormat)
	}

	if block.EndsOn != nil && block.EndsOn.Before(block.StartsOn) {
		return nil, fmt.Errorf("%w: endsOn must not be before startsOn", ErrInvalidInput)
	}

	return block, nil
}

// validateMinuteWindow проверяет день недели и минутное окно [start, end)
func validateMinuteWindow(weekday, startMinutes, endMinutes int) error {
	if weekday < domain.MinWeekday || weekday > domain.MaxWeekday {
		return fmt.Errorf("%w: weekday must be between %d and %d", ErrInvalidInput, domain.MinWeekday, domain.MaxWeekday)
	}
	if startMinutes < 0 || endMinutes > domain.MinutesPerDay {
		return fmt.Errorf("%w: minutes must be within [0, %d]", ErrInvalidInput, domain.MinutesPerDay)
	}
	if startMinutes >= endMinutes {
		return fmt.Errorf("%w: startMinutes must be less than endMinutes", ErrInvalidInput)
	}
	return nil
}
