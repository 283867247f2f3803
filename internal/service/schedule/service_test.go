package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsmnv/RST-BookingService/internal/domain"
	scheduleRepo "github.com/rsmnv/RST-BookingService/internal/infra/storage/schedule"
	"github.com/rsmnv/RST-BookingService/internal/service/schedule/models"
	"github.com/rsmnv/RST-BookingService/pkg/ptr"
)

type fakeScheduleRepo struct {
	rules      []*domain.AvailabilityRule
	recurring  []*domain.RecurringBlock
	timeBlocks []*domain.TimeBlock

	nextID int64

	deletedWeekdays []int
	failDelete      bool
}

func (r *fakeScheduleRepo) CreateRule(_ context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	r.nextID++
	rule.ID = r.nextID
	r.rules = append(r.rules, rule)
	return rule, nil
}

func (r *fakeScheduleRepo) UpdateRule(_ context.Context, rule *domain.AvailabilityRule) error {
	for i, existing := range r.rules {
		if existing.ID == rule.ID {
			r.rules[i] = rule
			return nil
		}
	}
	return scheduleRepo.ErrRuleNotFound
}

func (r *fakeScheduleRepo) DeleteRule(_ context.Context, id int64) error {
	for i, existing := range r.rules {
		if existing.ID == id {
			r.rules = append(r.rules[:i], r.rules[i+1:]...)
			return nil
		}
	}
	return scheduleRepo.ErrRuleNotFound
}

func (r *fakeScheduleRepo) DeleteRulesByWeekdays(_ context.Context, weekdays []int) error {
	if r.failDelete {
		return scheduleRepo.ErrExecQuery
	}
	r.deletedWeekdays = weekdays

	kept := make([]*domain.AvailabilityRule, 0, len(r.rules))
	for _, rule := range r.rules {
		deleted := false
		for _, weekday := range weekdays {
			if rule.Weekday == weekday {
				deleted = true
				break
			}
		}
		if !deleted {
			kept = append(kept, rule)
		}
	}
	r.rules = kept
	return nil
}

func (r *fakeScheduleRepo) ListRules(_ context.Context) ([]*domain.AvailabilityRule, error) {
	return r.rules, nil
}

func (r *fakeScheduleRepo) CreateRecurringBlock(_ context.Context, block *domain.RecurringBlock) (*domain.RecurringBlock, error) {
	r.nextID++
	block.ID = r.nextID
	r.recurring = append(r.recurring, block)
	return block, nil
}

func (r *fakeScheduleRepo) UpdateRecurringBlock(_ context.Context, block *domain.RecurringBlock) error {
	for i, existing := range r.recurring {
		if existing.ID == block.ID {
			r.recurring[i] = block
			return nil
		}
	}
	return scheduleRepo.ErrRecurringBlockNotFound
}

func (r *fakeScheduleRepo) DeleteRecurringBlock(_ context.Context, id int64) error {
	for i, existing := range r.recurring {
		if existing.ID == id {
			r.recurring = append(r.recurring[:i], r.recurring[i+1:]...)
			return nil
		}
	}
	return scheduleRepo.ErrRecurringBlockNotFound
}

func (r *fakeScheduleRepo) ListRecurringBlocks(_ context.Context) ([]*domain.RecurringBlock, error) {
	return r.recurring, nil
}

func (r *fakeScheduleRepo) CreateTimeBlock(_ context.Context, block *domain.TimeBlock) (*domain.TimeBlock, error) {
	r.nextID++
	block.ID = r.nextID
	r.timeBlocks = append(r.timeBlocks, block)
	return block, nil
}

func (r *fakeScheduleRepo) DeleteTimeBlock(_ context.Context, id int64) error {
	for i, existing := range r.timeBlocks {
		if existing.ID == id {
			r.timeBlocks = append(r.timeBlocks[:i], r.timeBlocks[i+1:]...)
			return nil
		}
	}
	return scheduleRepo.ErrTimeBlockNotFound
}

func (r *fakeScheduleRepo) ListTimeBlocks(_ context.Context) ([]*domain.TimeBlock, error) {
	return r.timeBlocks, nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(_ string, _ ...interface{})  {}
func (nopLogger) Warn(_ string, _ ...interface{})  {}
func (nopLogger) Error(_ string, _ ...interface{}) {}

func newTestService(repo *fakeScheduleRepo) *Service {
	return NewService(repo, &fakeTxManager{}, time.UTC, nopLogger{})
}

func TestCreateRule_Validation(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{})

	tests := []struct {
		name string
		req  models.RuleRequest
	}{
		{"weekday too small", models.RuleRequest{Weekday: -1, StartMinutes: 540, EndMinutes: 1020}},
		{"weekday too big", models.RuleRequest{Weekday: 7, StartMinutes: 540, EndMinutes: 1020}},
		{"negative start", models.RuleRequest{Weekday: 1, StartMinutes: -15, EndMinutes: 600}},
		{"end past midnight", models.RuleRequest{Weekday: 1, StartMinutes: 540, EndMinutes: 1441}},
		{"start equals end", models.RuleRequest{Weekday: 1, StartMinutes: 540, EndMinutes: 540}},
		{"start after end", models.RuleRequest{Weekday: 1, StartMinutes: 600, EndMinutes: 540}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRule(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateRule_Success(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestService(repo)

	resp, err := svc.CreateRule(context.Background(), &models.RuleRequest{Weekday: 2, StartMinutes: 540, EndMinutes: 1020})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.True(t, resp.IsActive)
	assert.Len(t, repo.rules, 1)
}

func TestUpdateRule_NotFound(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{})

	err := svc.UpdateRule(context.Background(), &models.RuleRequest{ID: ptr.Ptr(int64(42)), Weekday: 1, StartMinutes: 540, EndMinutes: 1020})
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestUpdateRule_RequiresID(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{})

	err := svc.UpdateRule(context.Background(), &models.RuleRequest{Weekday: 1, StartMinutes: 540, EndMinutes: 1020})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReplaceRules_ReplacesOnlyNamedWeekdays(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestService(repo)

	_, err := svc.CreateRule(context.Background(), &models.RuleRequest{Weekday: 1, StartMinutes: 540, EndMinutes: 1020})
	require.NoError(t, err)
	_, err = svc.CreateRule(context.Background(), &models.RuleRequest{Weekday: 2, StartMinutes: 540, EndMinutes: 1020})
	require.NoError(t, err)

	err = svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
		Weekdays: []int{1},
		Rules: []models.RuleRequest{
			{Weekday: 1, StartMinutes: 600, EndMinutes: 900},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{1}, repo.deletedWeekdays)
	require.Len(t, repo.rules, 2)

	var mondayRule *domain.AvailabilityRule
	for _, rule := range repo.rules {
		if rule.Weekday == 1 {
			mondayRule = rule
		}
	}
	require.NotNil(t, mondayRule)
	assert.Equal(t, 600, mondayRule.StartMinutes)
	assert.Equal(t, 900, mondayRule.EndMinutes)
}

func TestReplaceRules_RejectsRuleOutsideWeekdays(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{})

	err := svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{
		Weekdays: []int{1},
		Rules: []models.RuleRequest{
			{Weekday: 3, StartMinutes: 540, EndMinutes: 1020},
		},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestReplaceRules_EmptyRulesClosesDay(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestService(repo)

	_, err := svc.CreateRule(context.Background(), &models.RuleRequest{Weekday: 1, StartMinutes: 540, EndMinutes: 1020})
	require.NoError(t, err)

	err = svc.ReplaceRules(context.Background(), &models.ReplaceRulesRequest{Weekdays: []int{1}})
	require.NoError(t, err)
	assert.Empty(t, repo.rules)
}

func TestCreateRecurringBlock_DateValidation(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{})

	_, err := svc.CreateRecurringBlock(context.Background(), &models.RecurringBlockRequest{
		Weekday: 1, StartMinutes: 720, EndMinutes: 780,
		StartsOn: "not-a-date",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateRecurringBlock(context.Background(), &models.RecurringBlockRequest{
		Weekday: 1, StartMinutes: 720, EndMinutes: 780,
		StartsOn: "2026-09-08",
		EndsOn:   ptr.Ptr("2026-09-01"), // раньше startsOn
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRecurringBlock_Success(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestService(repo)

	resp, err := svc.CreateRecurringBlock(context.Background(), &models.RecurringBlockRequest{
		Weekday: 1, StartMinutes: 720, EndMinutes: 780,
		StartsOn: "2026-09-08",
		Reason:   ptr.Ptr("lunch"),
	})
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "2026-09-08", resp.StartsOn)
	assert.Nil(t, resp.EndsOn)
}

func TestCreateTimeBlock_Validation(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{})

	start := time.Date(2026, 9, 8, 15, 0, 0, 0, time.UTC)

	_, err := svc.CreateTimeBlock(context.Background(), &models.TimeBlockRequest{StartAt: start, EndAt: start})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateTimeBlock(context.Background(), &models.TimeBlockRequest{StartAt: start, EndAt: start.Add(-time.Hour)})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteTimeBlock_NotFound(t *testing.T) {
	svc := newTestService(&fakeScheduleRepo{})

	err := svc.DeleteTimeBlock(context.Background(), 99)
	assert.ErrorIs(t, err, ErrTimeBlockNotFound)
}

func TestGetSchedule_CollectsAllInputs(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := newTestService(repo)

	_, err := svc.CreateRule(context.Background(), &models.RuleRequest{Weekday: 1, StartMinutes: 540, EndMinutes: 1020})
	require.NoError(t, err)
	_, err = svc.CreateRecurringBlock(context.Background(), &models.RecurringBlockRequest{
		Weekday: 1, StartMinutes: 720, EndMinutes: 780, StartsOn: "2026-09-08",
	})
	require.NoError(t, err)
	_, err = svc.CreateTimeBlock(context.Background(), &models.TimeBlockRequest{
		StartAt: time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC),
		EndAt:   time.Date(2026, 9, 10, 18, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	resp, err := svc.GetSchedule(context.Background())
	require.NoError(t, err)

	assert.Len(t, resp.Rules, 1)
	assert.Len(t, resp.RecurringBlocks, 1)
	assert.Len(t, resp.TimeBlocks, 1)
}
