package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/rsmnv/RST-BookingService/internal/domain"
	"github.com/rsmnv/RST-BookingService/pkg/dbmetrics"
	"github.com/rsmnv/RST-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий входных данных расписания: правила рабочих часов,
// еженедельные и разовые блокировки. Ядро доступности только читает эти
// таблицы; запись идет через админ-сервис расписания.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ---------------------------------------------------------------
// Availability rules
// ---------------------------------------------------------------

var ruleColumns = []string{
	"id",
	"weekday",
	"start_minutes",
	"end_minutes",
	"is_active",
	"created_at",
	"updated_at",
}

// CreateRule создает правило рабочих часов
func (r *Repository) CreateRule(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_rules").
		Columns("weekday", "start_minutes", "end_minutes", "is_active").
		Values(rule.Weekday, rule.StartMinutes, rule.EndMinutes, rule.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRule - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRule - execute insert: %v", ErrExecQuery, err)
	}

	rule.CreatedAt = createdAt.Time
	rule.UpdatedAt = updatedAt.Time

	return rule, nil
}

// UpdateRule обновляет правило рабочих часов
func (r *Repository) UpdateRule(ctx context.Context, rule *domain.AvailabilityRule) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("availability_rules").
		Set("weekday", rule.Weekday).
		Set("start_minutes", rule.StartMinutes).
		Set("end_minutes", rule.EndMinutes).
		Set("is_active", rule.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": rule.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRule - execute update: %v", ErrExecQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// DeleteRule удаляет правило рабочих часов
func (r *Repository) DeleteRule(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_rules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteRule - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteRule - execute delete: %v", ErrExecQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrRuleNotFound
	}

	return nil
}

// DeleteRulesByWeekdays удаляет все правила указанных дней недели.
// Используется вместе с CreateRule внутри транзакции для операции
// "заменить рабочие часы дня целиком".
func (r *Repository) DeleteRulesByWeekdays(ctx context.Context, weekdays []int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_rules").
		Where(squirrel.Eq{"weekday": weekdays}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteRulesByWeekdays - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: DeleteRulesByWeekdays - execute delete: %v", ErrExecQuery, err)
	}

	return nil
}

// ListRules получает все правила рабочих часов, отсортированные по дню недели
func (r *Repository) ListRules(ctx context.Context) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		OrderBy("weekday ASC, start_minutes ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// GetActiveRulesForWeekday получает активные правила для дня недели.
// Пустой результат означает, что день закрыт (explicit opt-in модель).
func (r *Repository) GetActiveRulesForWeekday(ctx context.Context, weekday int) ([]*domain.AvailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(ruleColumns...).
		From("availability_rules").
		Where(squirrel.Eq{"weekday": weekday, "is_active": true}).
		OrderBy("start_minutes ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveRulesForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveRulesForWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRules(rows)
}

// ---------------------------------------------------------------
// Recurring blocks
// ---------------------------------------------------------------

var recurringColumns = []string{
	"id",
	"weekday",
	"start_minutes",
	"end_minutes",
	"starts_on",
	"ends_on",
	"reason",
	"created_at",
	"updated_at",
}

// CreateRecurringBlock создает еженедельную блокировку
func (r *Repository) CreateRecurringBlock(ctx context.Context, block *domain.RecurringBlock) (*domain.RecurringBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("recurring_blocks").
		Columns("weekday", "start_minutes", "end_minutes", "starts_on", "ends_on", "reason").
		Values(block.Weekday, block.StartMinutes, block.EndMinutes, block.StartsOn, block.EndsOn, block.Reason).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateRecurringBlock - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRecurringBlock - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return block, nil
}

// UpdateRecurringBlock обновляет еженедельную блокировку
func (r *Repository) UpdateRecurringBlock(ctx context.Context, block *domain.RecurringBlock) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("recurring_blocks").
		Set("weekday", block.Weekday).
		Set("start_minutes", block.StartMinutes).
		Set("end_minutes", block.EndMinutes).
		Set("starts_on", block.StartsOn).
		Set("ends_on", block.EndsOn).
		Set("reason", block.Reason).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": block.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateRecurringBlock - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateRecurringBlock - execute update: %v", ErrExecQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrRecurringBlockNotFound
	}

	return nil
}

// DeleteRecurringBlock удаляет еженедельную блокировку
func (r *Repository) DeleteRecurringBlock(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("recurring_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteRecurringBlock - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteRecurringBlock - execute delete: %v", ErrExecQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrRecurringBlockNotFound
	}

	return nil
}

// ListRecurringBlocks получает все еженедельные блокировки
func (r *Repository) ListRecurringBlocks(ctx context.Context) ([]*domain.RecurringBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(recurringColumns...).
		From("recurring_blocks").
		OrderBy("weekday ASC, start_minutes ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecurringBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecurringBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRecurringBlocks(rows)
}

// GetRecurringBlocksForWeekday получает еженедельные блокировки дня недели.
// Фильтрация по effective-диапазону дат выполняется выше, в резолвере
// расписания, чтобы сравнение дат шло в бизнес-таймзоне.
func (r *Repository) GetRecurringBlocksForWeekday(ctx context.Context, weekday int) ([]*domain.RecurringBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(recurringColumns...).
		From("recurring_blocks").
		Where(squirrel.Eq{"weekday": weekday}).
		OrderBy("start_minutes ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetRecurringBlocksForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRecurringBlocksForWeekday - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRecurringBlocks(rows)
}

// ---------------------------------------------------------------
// Time blocks
// ---------------------------------------------------------------

var timeBlockColumns = []string{
	"id",
	"start_at",
	"end_at",
	"reason",
	"created_at",
	"updated_at",
}

// CreateTimeBlock создает разовую блокировку
func (r *Repository) CreateTimeBlock(ctx context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("time_blocks").
		Columns("start_at", "end_at", "reason").
		Values(block.StartAt, block.EndAt, block.Reason).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateTimeBlock - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&block.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateTimeBlock - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return block, nil
}

// DeleteTimeBlock удаляет разовую блокировку
func (r *Repository) DeleteTimeBlock(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteTimeBlock - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteTimeBlock - execute delete: %v", ErrExecQuery, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrTimeBlockNotFound
	}

	return nil
}

// ListTimeBlocks получает все разовые блокировки
func (r *Repository) ListTimeBlocks(ctx context.Context) ([]*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timeBlockColumns...).
		From("time_blocks").
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListTimeBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListTimeBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTimeBlocks(rows)
}

// GetTimeBlocksInRange получает разовые блокировки, пересекающиеся с
// интервалом [from, to). Блокировка, перешагивающая границу суток, попадет
// в выборку каждого затронутого дня.
func (r *Repository) GetTimeBlocksInRange(ctx context.Context, from, to time.Time) ([]*domain.TimeBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(timeBlockColumns...).
		From("time_blocks").
		Where(squirrel.Lt{"start_at": to}).
		Where(squirrel.Gt{"end_at": from}).
		OrderBy("start_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTimeBlocksInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetTimeBlocksInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTimeBlocks(rows)
}

// ---------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------

func scanRules(rows *sql.Rows) ([]*domain.AvailabilityRule, error) {
	rules := make([]*domain.AvailabilityRule, 0)

	for rows.Next() {
		var rule domain.AvailabilityRule
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rule.ID,
			&rule.Weekday,
			&rule.StartMinutes,
			&rule.EndMinutes,
			&rule.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRules - scan row: %v", ErrScanRow, err)
		}

		rule.CreatedAt = createdAt.Time
		rule.UpdatedAt = updatedAt.Time
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRules - rows error: %v", ErrScanRow, err)
	}

	return rules, nil
}

func scanRecurringBlocks(rows *sql.Rows) ([]*domain.RecurringBlock, error) {
	blocks := make([]*domain.RecurringBlock, 0)

	for rows.Next() {
		var block domain.RecurringBlock
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.Weekday,
			&block.StartMinutes,
			&block.EndMinutes,
			&block.StartsOn,
			&block.EndsOn,
			&block.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRecurringBlocks - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time
		block.UpdatedAt = updatedAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRecurringBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

func scanTimeBlocks(rows *sql.Rows) ([]*domain.TimeBlock, error) {
	blocks := make([]*domain.TimeBlock, 0)

	for rows.Next() {
		var block domain.TimeBlock
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&block.ID,
			&block.StartAt,
			&block.EndAt,
			&block.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanTimeBlocks - scan row: %v", ErrScanRow, err)
		}

		block.CreatedAt = createdAt.Time
		block.UpdatedAt = updatedAt.Time
		blocks = append(blocks, &block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTimeBlocks - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}
