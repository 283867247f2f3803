package manage_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	scheduleService "github.com/rsmnv/RST-BookingService/internal/service/schedule"
	"github.com/rsmnv/RST-BookingService/internal/service/schedule/models"
)

type fakeScheduleService struct {
	createdRules   []*models.RuleRequest
	replacedRules  *models.ReplaceRulesRequest
	deletedRuleIDs []int64

	err error
}

func (s *fakeScheduleService) CreateRule(_ context.Context, req *models.RuleRequest) (*models.RuleResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.createdRules = append(s.createdRules, req)
	return &models.RuleResponse{ID: 1, Weekday: req.Weekday, StartMinutes: req.StartMinutes, EndMinutes: req.EndMinutes, IsActive: true}, nil
}

func (s *fakeScheduleService) UpdateRule(_ context.Context, _ *models.RuleRequest) error {
	return s.err
}

func (s *fakeScheduleService) DeleteRule(_ context.Context, id int64) error {
	if s.err != nil {
		return s.err
	}
	s.deletedRuleIDs = append(s.deletedRuleIDs, id)
	return nil
}

func (s *fakeScheduleService) ReplaceRules(_ context.Context, req *models.ReplaceRulesRequest) error {
	if s.err != nil {
		return s.err
	}
	s.replacedRules = req
	return nil
}

func (s *fakeScheduleService) CreateRecurringBlock(_ context.Context, req *models.RecurringBlockRequest) (*models.RecurringBlockResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.RecurringBlockResponse{ID: 1, Weekday: req.Weekday}, nil
}

func (s *fakeScheduleService) UpdateRecurringBlock(_ context.Context, _ *models.RecurringBlockRequest) error {
	return s.err
}

func (s *fakeScheduleService) DeleteRecurringBlock(_ context.Context, _ int64) error {
	return s.err
}

func (s *fakeScheduleService) CreateTimeBlock(_ context.Context, req *models.TimeBlockRequest) (*models.TimeBlockResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.TimeBlockResponse{ID: 1, StartAt: req.StartAt, EndAt: req.EndAt}, nil
}

func (s *fakeScheduleService) DeleteTimeBlock(_ context.Context, _ int64) error {
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(_ string, _ ...interface{})  {}
func (nopLogger) Warn(_ string, _ ...interface{})  {}
func (nopLogger) Error(_ string, _ ...interface{}) {}

func doRequest(t *testing.T, service *fakeScheduleService, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(service, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/schedule", strings.NewReader(body))
	resp := httptest.NewRecorder()
	handler.Handle(resp, req)
	return resp
}

func TestHandle_CreateRule(t *testing.T) {
	service := &fakeScheduleService{}

	body := `{"action":"create_rule","payload":{"weekday":2,"startMinutes":540,"endMinutes":1020}}`
	resp := doRequest(t, service, body)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, service.createdRules, 1)
	assert.Equal(t, 2, service.createdRules[0].Weekday)
}

func TestHandle_ReplaceRules(t *testing.T) {
	service := &fakeScheduleService{}

	body := `{"action":"replace_rules","payload":{"weekdays":[1,2],"rules":[{"weekday":1,"startMinutes":540,"endMinutes":1020}]}}`
	resp := doRequest(t, service, body)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.NotNil(t, service.replacedRules)
	assert.Equal(t, []int{1, 2}, service.replacedRules.Weekdays)
	assert.Contains(t, resp.Body.String(), "replaced")
}

func TestHandle_DeleteRule(t *testing.T) {
	service := &fakeScheduleService{}

	body := `{"action":"delete_rule","payload":{"id":7}}`
	resp := doRequest(t, service, body)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, []int64{7}, service.deletedRuleIDs)
}

func TestHandle_UnknownAction(t *testing.T) {
	resp := doRequest(t, &fakeScheduleService{}, `{"action":"nuke_everything","payload":{}}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandle_InvalidPayload(t *testing.T) {
	resp := doRequest(t, &fakeScheduleService{}, `{"action":"delete_rule","payload":"not-an-object"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandle_ValidationErrorMapsTo400(t *testing.T) {
	service := &fakeScheduleService{err: scheduleService.ErrInvalidInput}

	body := `{"action":"create_rule","payload":{"weekday":9,"startMinutes":540,"endMinutes":1020}}`
	resp := doRequest(t, service, body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHandle_NotFoundMapsTo404(t *testing.T) {
	service := &fakeScheduleService{err: scheduleService.ErrRuleNotFound}

	body := `{"action":"delete_rule","payload":{"id":99}}`
	resp := doRequest(t, service, body)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
