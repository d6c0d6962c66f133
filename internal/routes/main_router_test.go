package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"fieldops-system/internal/repositories"
	"fieldops-system/pkg/config"
	"fieldops-system/pkg/validation"
	"fieldops-system/seeders"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type RouterTestSuite struct {
	suite.Suite
	Echo  *echo.Echo
	Store *repositories.Store
	Token string
}

func (suite *RouterTestSuite) SetupTest() {
	e := echo.New()
	e.Validator = validation.New()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Auth: config.AuthConfig{
			Token:         "test-token",
			AdminUsername: "admin",
			AdminPassword: "admin123",
		},
	}

	store := repositories.NewStore()
	suite.Require().NoError(seeders.Run(context.Background(), store, cfg, zap.NewNop()))

	InitRouter(e, store, cfg, zap.NewNop())

	suite.Echo = e
	suite.Store = store
	suite.Token = cfg.Auth.Token
}

// do выполняет запрос против собранного роутера. Пустой token означает
// запрос без заголовка Authorization.
func (suite *RouterTestSuite) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	suite.Echo.ServeHTTP(rec, req)
	return rec
}

func (suite *RouterTestSuite) decode(rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (suite *RouterTestSuite) TestLoginReturnsStaticToken() {
	rec := suite.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin", "password": "admin123",
	}, "")
	suite.Equal(http.StatusOK, rec.Code)

	body := suite.decode(rec)
	suite.Equal("test-token", body["token"])
	user := body["user"].(map[string]interface{})
	suite.Equal("admin", user["username"])
	suite.Equal("admin", user["role"])
	suite.NotContains(user, "password", "хеш пароля наружу не отдаётся")
}

func (suite *RouterTestSuite) TestLoginRejectsBadPassword() {
	rec := suite.do(http.MethodPost, "/api/auth/login", map[string]string{
		"username": "admin", "password": "wrong",
	}, "")
	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Equal("Invalid credentials", suite.decode(rec)["message"])
}

func (suite *RouterTestSuite) TestProtectedRoutesRequireToken() {
	rec := suite.do(http.MethodPost, "/api/technicians", map[string]string{
		"telegramId": "@x", "firstName": "A",
	}, "")
	suite.Equal(http.StatusUnauthorized, rec.Code)
	suite.Equal("Unauthorized", suite.decode(rec)["message"])

	rec = suite.do(http.MethodGet, "/api/dashboard/stats", nil, "другой-токен")
	suite.Equal(http.StatusUnauthorized, rec.Code)
}

func (suite *RouterTestSuite) TestCreateTechnicianDefaults() {
	rec := suite.do(http.MethodPost, "/api/technicians", map[string]string{
		"telegramId": "@x", "firstName": "A",
	}, suite.Token)
	suite.Equal(http.StatusCreated, rec.Code)

	body := suite.decode(rec)
	suite.Equal(true, body["isActive"])
	suite.Nil(body["lastName"])
	suite.NotZero(body["id"])
}

func (suite *RouterTestSuite) TestCreateTechnicianValidation() {
	rec := suite.do(http.MethodPost, "/api/technicians", map[string]string{
		"firstName": "Без телеграма",
	}, suite.Token)
	suite.Equal(http.StatusBadRequest, rec.Code)

	body := suite.decode(rec)
	suite.Equal("Invalid data", body["message"])
	suite.NotEmpty(body["errors"], "ответ перечисляет непрошедшие поля")
}

func (suite *RouterTestSuite) TestUpdateMissingTaskReturns404() {
	rec := suite.do(http.MethodPut, "/api/tasks/999", map[string]string{
		"status": "sent",
	}, suite.Token)
	suite.Equal(http.StatusNotFound, rec.Code)
	suite.Equal("Task not found", suite.decode(rec)["message"])

	// Нечисловой id неотличим от несуществующего.
	rec = suite.do(http.MethodPut, "/api/tasks/abc", map[string]string{
		"status": "sent",
	}, suite.Token)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *RouterTestSuite) TestCreateInvoiceRejectsBadAmount() {
	for _, amount := range []string{"NaN", "12.345", "-5", "12,00"} {
		rec := suite.do(http.MethodPost, "/api/invoices", map[string]interface{}{
			"taskId": 1, "technicianId": 1, "amount": amount,
		}, suite.Token)
		suite.Equalf(http.StatusBadRequest, rec.Code, "сумма %q должна отклоняться", amount)
	}

	rec := suite.do(http.MethodPost, "/api/invoices", map[string]interface{}{
		"taskId": 1, "technicianId": 1, "amount": "450.00",
	}, suite.Token)
	suite.Equal(http.StatusCreated, rec.Code)
	body := suite.decode(rec)
	suite.Equal("pending", body["status"])
}

func (suite *RouterTestSuite) TestTaskLifecycle() {
	rec := suite.do(http.MethodPost, "/api/tasks", map[string]interface{}{
		"title":             "Ремонт",
		"description":       "Описание",
		"clientName":        "Клиент",
		"clientPhone":       "+992900000000",
		"location":          "Душанбе",
		"scheduledDate":     "2024-06-19",
		"scheduledTimeFrom": "09:00",
		"scheduledTimeTo":   "12:00",
		"status":            "completed",
	}, suite.Token)
	suite.Equal(http.StatusCreated, rec.Code)

	created := suite.decode(rec)
	suite.Equal("pending", created["status"], "статус из тела создания игнорируется")
	taskID := created["id"].(float64)

	rec = suite.do(http.MethodPut, "/api/tasks/2", map[string]string{"status": "bad_status"}, suite.Token)
	suite.Equal(http.StatusBadRequest, rec.Code)

	rec = suite.do(http.MethodPut, "/api/tasks/2", map[string]string{"status": "sent"}, suite.Token)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("sent", suite.decode(rec)["status"])
	suite.EqualValues(2, taskID)

	// Смена статуса через PUT оставляет след в журнале уведомлений.
	rec = suite.do(http.MethodGet, "/api/notifications/unread", nil, suite.Token)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Contains(rec.Body.String(), "task_status_changed")

	rec = suite.do(http.MethodDelete, "/api/tasks/2", nil, suite.Token)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Task deleted successfully", suite.decode(rec)["message"])

	rec = suite.do(http.MethodDelete, "/api/tasks/2", nil, suite.Token)
	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *RouterTestSuite) TestBotSettingsSingleton() {
	rec := suite.do(http.MethodGet, "/api/bot-settings", nil, suite.Token)
	suite.Equal(http.StatusOK, rec.Code)
	body := suite.decode(rec)
	suite.Equal("", body["botToken"])
	suite.Equal(false, body["isActive"])

	rec = suite.do(http.MethodPut, "/api/bot-settings", map[string]interface{}{
		"botToken": "123456:token", "isActive": true,
	}, suite.Token)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal(true, suite.decode(rec)["isActive"])
}

func (suite *RouterTestSuite) TestMarkNotificationRead() {
	suite.do(http.MethodPost, "/api/technicians", map[string]string{
		"telegramId": "@noisy", "firstName": "Шумный",
	}, suite.Token)

	rec := suite.do(http.MethodGet, "/api/notifications/unread", nil, suite.Token)
	var unread []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &unread))
	suite.Require().NotEmpty(unread)
	id := int(unread[0]["id"].(float64))

	rec = suite.do(http.MethodPut, "/api/notifications/"+strconv.Itoa(id)+"/read", nil, suite.Token)
	suite.Equal(http.StatusOK, rec.Code)

	rec = suite.do(http.MethodGet, "/api/notifications/unread", nil, suite.Token)
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &unread))
	for _, n := range unread {
		suite.NotEqual(id, int(n["id"].(float64)))
	}
}

func (suite *RouterTestSuite) TestDashboardStats() {
	rec := suite.do(http.MethodGet, "/api/dashboard/stats", nil, suite.Token)
	suite.Equal(http.StatusOK, rec.Code)

	body := suite.decode(rec)
	for _, key := range []string{"activeTasks", "totalTechnicians", "activeTechnicians", "pendingInvoices", "monthlyRevenue"} {
		suite.Contains(body, key)
	}
}

func (suite *RouterTestSuite) TestReportExport() {
	rec := suite.do(http.MethodGet, "/api/reports/export", nil, suite.Token)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal(
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		rec.Header().Get(echo.HeaderContentType),
	)
	suite.Contains(rec.Header().Get("Content-Disposition"), "attachment")
	suite.NotZero(rec.Body.Len())
}

func (suite *RouterTestSuite) TestBackupRoundTrip() {
	suite.do(http.MethodPost, "/api/technicians", map[string]string{
		"telegramId": "@keeper", "firstName": "Хранимый",
	}, suite.Token)

	rec := suite.do(http.MethodGet, "/api/backup", nil, suite.Token)
	suite.Equal(http.StatusOK, rec.Code)
	snapshot := suite.decode(rec)
	suite.NotEmpty(snapshot["name"])
	suite.NotEmpty(snapshot["technicians"])

	rec = suite.do(http.MethodPost, "/api/backup/restore", snapshot, suite.Token)
	suite.Equal(http.StatusOK, rec.Code)
	suite.Equal("Backup restored successfully", suite.decode(rec)["message"])

	rec = suite.do(http.MethodGet, "/api/technicians", nil, suite.Token)
	var technicians []map[string]interface{}
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &technicians))
	suite.Len(technicians, 1)
	suite.Equal("@keeper", technicians[0]["telegramId"])
}

func TestRouterTestSuite(t *testing.T) {
	suite.Run(t, new(RouterTestSuite))
}
