package models

import (
	"time"

	"github.com/rsmnv/RST-BookingService/internal/domain"
)

// Request модели

// RuleRequest параметры правила рабочих часов
type RuleRequest struct {
	ID           *int64 `json:"id,omitempty"` // Обязателен для update_rule
	Weekday      int    `json:"weekday"`
	StartMinutes int    `json:"startMinutes"`
	EndMinutes   int    `json:"endMinutes"`
	IsActive     *bool  `json:"isActive,omitempty"` // По умолчанию true
}

// ToDomainRule конвертирует request в domain модель
func (r *RuleRequest) ToDomainRule() *domain.AvailabilityRule {
	rule := &domain.AvailabilityRule{
		Weekday:      r.Weekday,
		StartMinutes: r.StartMinutes,
		EndMinutes:   r.EndMinutes,
		IsActive:     true,
	}
	if r.ID != nil {
		rule.ID = *r.ID
	}
	if r.IsActive != nil {
		rule.IsActive = *r.IsActive
	}
	return rule
}

// ReplaceRulesRequest запрос на замену рабочих часов дней целиком
type ReplaceRulesRequest struct {
	Weekdays []int         `json:"weekdays"` // Дни, чьи правила заменяются
	Rules    []RuleRequest `json:"rules"`    // Новые правила для этих дней
}

// RecurringBlockRequest параметры еженедельной блокировки
type RecurringBlockRequest struct {
	ID           *int64  `json:"id,omitempty"` // Обязателен для update_recurring
	Weekday      int     `json:"weekday"`
	StartMinutes int     `json:"startMinutes"`
	EndMinutes   int     `json:"endMinutes"`
	StartsOn     string  `json:"startsOn"`          // "2006-01-02"
	EndsOn       *string `json:"endsOn,omitempty"`  // "2006-01-02", nil = бессрочно
	Reason       *string `json:"reason,omitempty"`
}

// ToDomainRecurringBlock конвертирует request в domain модель
func (r *RecurringBlockRequest) ToDomainRecurringBlock(loc *time.Location) (*domain.RecurringBlock, error) {
	startsOn, err := time.ParseInLocation(domain.DateFormat, r.StartsOn, loc)
	if err != nil {
		return nil, err
	}

	block := &domain.RecurringBlock{
		Weekday:      r.Weekday,
		StartMinutes: r.StartMinutes,
		EndMinutes:   r.EndMinutes,
		StartsOn:     startsOn,
		Reason:       r.Reason,
	}
	if r.ID != nil {
		block.ID = *r.ID
	}
	if r.EndsOn != nil {
		endsOn, err := time.ParseInLocation(domain.DateFormat, *r.EndsOn, loc)
		if err != nil {
			return nil, err
		}
		block.EndsOn = &endsOn
	}

	return block, nil
}

// TimeBlockRequest параметры разовой блокировки
type TimeBlockRequest struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
	Reason  *string   `json:"reason,omitempty"`
}

// ToDomainTimeBlock конвертирует request в domain модель
func (r *TimeBlockRequest) ToDomainTimeBlock() *domain.TimeBlock {
	return &domain.TimeBlock{
		StartAt: r.StartAt,
		EndAt:   r.EndAt,
		Reason:  r.Reason,
	}
}

// Response модели

// RuleResponse ответ с данными правила рабочих часов
type RuleResponse struct {
	ID           int64 `json:"id"`
	Weekday      int   `json:"weekday"`
	StartMinutes int   `json:"startMinutes"`
	EndMinutes   int   `json:"endMinutes"`
	IsActive     bool  `json:"isActive"`
}

// RecurringBlockResponse ответ с данными еженедельной блокировки
type RecurringBlockResponse struct {
	ID           int64   `json:"id"`
	Weekday      int     `json:"weekday"`
	StartMinutes int     `json:"startMinutes"`
	EndMinutes   int     `json:"endMinutes"`
	StartsOn     string  `json:"startsOn"`
	EndsOn       *string `json:"endsOn,omitempty"`
	Reason       *string `json:"reason,omitempty"`
}

// TimeBlockResponse ответ с данными разовой блокировки
type TimeBlockResponse struct {
	ID      int64     `json:"id"`
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
	Reason  *string   `json:"reason,omitempty"`
}

// ScheduleResponse полное расписание для админки
type ScheduleResponse struct {
	Rules           []RuleResponse           `json:"rules"`
	RecurringBlocks []RecurringBlockResponse `json:"recurringBlocks"`
	TimeBlocks      []TimeBlockResponse      `json:"timeBlocks"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(rule *domain.AvailabilityRule) *RuleResponse {
	if rule == nil {
		return nil
	}
	return &RuleResponse{
		ID:           rule.ID,
		Weekday:      rule.Weekday,
		StartMinutes: rule.StartMinutes,
		EndMinutes:   rule.EndMinutes,
		IsActive:     rule.IsActive,
	}
}

// FromDomainRecurringBlock конвертирует domain модель в DTO
func FromDomainRecurringBlock(block *domain.RecurringBlock) *RecurringBlockResponse {
	if block == nil {
		return nil
	}

	resp := &RecurringBlockResponse{
		ID:           block.ID,
		Weekday:      block.Weekday,
		StartMinutes: block.StartMinutes,
		EndMinutes:   block.EndMinutes,
		StartsOn:     block.StartsOn.Format(domain.DateFormat),
		Reason:       block.Reason,
	}
	if block.EndsOn != nil {
		endsOn := block.EndsOn.Format(domain.DateFormat)
		resp.EndsOn = &endsOn
	}

	return resp
}

// FromDomainTimeBlock конвертирует domain модель в DTO
func FromDomainTimeBlock(block *domain.TimeBlock) *TimeBlockResponse {
	if block == nil {
		return nil
	}
	return &TimeBlockResponse{
		ID:      block.ID,
		StartAt: block.StartAt,
		EndAt:   block.EndAt,
		Reason:  block.Reason,
	}
}

// FromDomainSchedule собирает полный ответ расписания
func FromDomainSchedule(schedule *domain.WeeklySchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		Rules:           make([]RuleResponse, 0, len(schedule.Rules)),
		RecurringBlocks: make([]RecurringBlockResponse, 0, len(schedule.RecurringBlocks)),
		TimeBlocks:      make([]TimeBlockResponse, 0, len(schedule.TimeBlocks)),
	}

	for _, rule := range schedule.Rules {
		if r := FromDomainRule(rule); r != nil {
			resp.Rules = append(resp.Rules, *r)
		}
	}
	for _, block := range schedule.RecurringBlocks {
		if b := FromDomainRecurringBlock(block); b != nil {
			resp.RecurringBlocks = append(resp.RecurringBlocks, *b)
		}
	}
	for _, block := range schedule.TimeBlocks {
		if b := FromDomainTimeBlock(block); b != nil {
			resp.TimeBlocks = append(resp.TimeBlocks, *b)
		}
	}

	return resp
}
