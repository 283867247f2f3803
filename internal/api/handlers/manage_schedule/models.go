package manage_schedule

import (
	"encoding/json"

	"github.com/rsmnv/RST-BookingService/internal/service/schedule/models"
)

// Действия мутации расписания
const (
	actionCreateRule      = "create_rule"
	actionUpdateRule      = "update_rule"
	actionDeleteRule      = "delete_rule"
	actionReplaceRules    = "replace_rules"
	actionCreateRecurring = "create_recurring"
	actionUpdateRecurring = "update_recurring"
	actionDeleteRecurring = "delete_recurring"
	actionCreateBlock     = "create_block"
	actionDeleteBlock     = "delete_block"
)

// ManageScheduleRequest диспетчеризуемый запрос мутации расписания.
// Поле action выбирает операцию, payload несёт её параметры.
type ManageScheduleRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// DeleteRequest payload для delete_* действий
type DeleteRequest struct {
	ID int64 `json:"id"`
}

// StatusResponse ответ действий без собственного тела
type StatusResponse struct {
	Status string `json:"status"`
}

// rulePayload декодирует payload как RuleRequest
func rulePayload(raw json.RawMessage) (*models.RuleRequest, error) {
	var req models.RuleRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// replaceRulesPayload декодирует payload как ReplaceRulesRequest
func replaceRulesPayload(raw json.RawMessage) (*models.ReplaceRulesRequest, error) {
	var req models.ReplaceRulesRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// recurringPayload декодирует payload как RecurringBlockRequest
func recurringPayload(raw json.RawMessage) (*models.RecurringBlockRequest, error) {
	var req models.RecurringBlockRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// timeBlockPayload декодирует payload как TimeBlockRequest
func timeBlockPayload(raw json.RawMessage) (*models.TimeBlockRequest, error) {
	var req models.TimeBlockRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// deletePayload декодирует payload как DeleteRequest
func deletePayload(raw json.RawMessage) (*DeleteRequest, error) {
	var req DeleteRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
