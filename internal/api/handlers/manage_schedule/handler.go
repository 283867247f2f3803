package manage_schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rsmnv/RST-BookingService/internal/api/handlers"
	scheduleService "github.com/rsmnv/RST-BookingService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUnknownAction      = "unknown action"
	msgInvalidPayload     = "invalid payload"
	msgRuleNotFound       = "availability rule not found"
	msgRecurringNotFound  = "recurring block not found"
	msgTimeBlockNotFound  = "time block not found"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/schedule
//
// Мутации расписания диспетчеризуются по полю action, зеркально формату
// админки: одна точка входа, девять действий.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ManageScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if len(req.Payload) == 0 {
		req.Payload = json.RawMessage("{}")
	}

	result, err := h.dispatch(r, &req)
	if err != nil {
		h.respondError(w, req.Action, err)
		return
	}

	h.logger.Info("POST /admin/schedule - Action %s completed", req.Action)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// dispatch выполняет действие и возвращает тело ответа
func (h *Handler) dispatch(r *http.Request, req *ManageScheduleRequest) (interface{}, error) {
	ctx := r.Context()

	switch req.Action {
	case actionCreateRule:
		payload, err := rulePayload(req.Payload)
		if err != nil {
			return nil, errInvalidPayload(err)
		}
		return h.service.CreateRule(ctx, payload)

	case actionUpdateRule:
		payload, err := rulePayload(req.Payload)
		if err != nil {
			return nil, errInvalidPayload(err)
		}
		if err := h.service.UpdateRule(ctx, payload); err != nil {
			return nil, err
		}
		return StatusResponse{Status: "updated"}, nil

	case actionDeleteRule:
		payload, err := deletePayload(req.Payload)
		if err != nil {
			return nil, errInvalidPayload(err)
		}
		if err := h.service.DeleteRule(ctx, payload.ID); err != nil {
			return nil, err
		}
		return StatusResponse{Status: "deleted"}, nil

	case actionReplaceRules:
		payload, err := replaceRulesPayload(req.Payload)
		if err != nil {
			return nil, errInvalidPayload(err)
		}
		if err := h.service.ReplaceRules(ctx, payload); err != nil {
			return nil, err
		}
		return StatusResponse{Status: "replaced"}, nil

	case actionCreateRecurring:
		payload, err := recurringPayload(req.Payload)
		if err != nil {
			return nil, errInvalidPayload(err)
		}
		return h.service.CreateRecurringBlock(ctx, payload)

	case actionUpdateRecurring:
		payload, err := recurringPayload(req.Payload)
		if err != nil {
			return nil, errInvalidPayload(err)
		}
		if err := h.service.UpdateRecurringBlock(ctx, payload); err != nil {
			return nil, err
		}
		return StatusResponse{Status: "updated"}, nil

	case actionDeleteRecurring:
		payload, err := deletePayload(req.Payload)
		if err != nil {
			return nil, errInvalidPayload(err)
		}
		if err := h.service.DeleteRecurringBlock(ctx, payload.ID); err != nil {
			return nil, err
		}
		return StatusResponse{Status: "deleted"}, nil

	case actionCreateBlock:
		payload, err := timeBlockPayload(req.Payload)
		if err != nil {
			return nil, errInvalidPayload(err)
		}
		return h.service.CreateTimeBlock(ctx, payload)

	case actionDeleteBlock:
		payload, err := deletePayload(req.Payload)
		if err != nil {
			return nil, errInvalidPayload(err)
		}
		if err := h.service.DeleteTimeBlock(ctx, payload.ID); err != nil {
			return nil, err
		}
		return StatusResponse{Status: "deleted"}, nil

	default:
		return nil, errUnknownAction
	}
}

var (
	errUnknownAction = errors.New("unknown action")
	errBrokenPayload = errors.New("invalid payload")
)

func errInvalidPayload(err error) error {
	return fmt.Errorf("%w: %v", errBrokenPayload, err)
}

func (h *Handler) respondError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, errUnknownAction):
		h.logger.Warn("POST /admin/schedule - Unknown action %q", action)
		handlers.RespondBadRequest(w, msgUnknownAction)

	case errors.Is(err, errBrokenPayload):
		h.logger.Warn("POST /admin/schedule - Invalid payload for action %s: %v", action, err)
		handlers.RespondBadRequest(w, msgInvalidPayload)

	case errors.Is(err, scheduleService.ErrInvalidInput):
		h.logger.Warn("POST /admin/schedule - Invalid input for action %s: %v", action, err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, scheduleService.ErrRuleNotFound):
		h.logger.Warn("POST /admin/schedule - Rule not found for action %s", action)
		handlers.RespondNotFound(w, msgRuleNotFound)

	case errors.Is(err, scheduleService.ErrRecurringBlockNotFound):
		h.logger.Warn("POST /admin/schedule - Recurring block not found for action %s", action)
		handlers.RespondNotFound(w, msgRecurringNotFound)

	case errors.Is(err, scheduleService.ErrTimeBlockNotFound):
		h.logger.Warn("POST /admin/schedule - Time block not found for action %s", action)
		handlers.RespondNotFound(w, msgTimeBlockNotFound)

	default:
		h.logger.Error("POST /admin/schedule - Action %s failed: %v", action, err)
		handlers.RespondInternalError(w)
	}
}
