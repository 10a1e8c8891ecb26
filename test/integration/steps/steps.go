// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Prabhakar0tenn/Expense-Tracker/config"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/infra/dependency"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/email"
	"github.com/Prabhakar0tenn/Expense-Tracker/internal/integration/persistence/model"
	"github.com/Prabhakar0tenn/Expense-Tracker/test/integration/mock"
)

const (
	testJWTSecret       = "test-jwt-secret-key-for-testing-purposes"
	defaultTestPassword = "DefaultPass123!"
	calendarDateLayout  = "02-01-2006"
)

type testContext struct {
	uri          string
	headers      map[string]string
	client       *http.Client
	response     *response
	db           *mock.Db
	timeMock     *mock.Time
	emailMock    *email.MockEmailSender
	serverPort   int
	accessToken  string
	refreshToken string
}

type response struct {
	status int
	body   any
}

var (
	serverInit     sync.Once
	testDB         *mock.Db
	testClock      = mock.NewTime()
	testRedis      = mock.NewRedis()
	testSender     = email.NewMockEmailSender()
	testServerPort int
	portInit       sync.Once
)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		timeMock:   testClock,
		emailMock:  testSender,
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":          &model.UserModel{},
			"refresh_tokens": &model.RefreshTokenModel{},
			"incomes":        &model.IncomeModel{},
			"expenses":       &model.ExpenseModel{},
			"savings":        &model.SavingModel{},
			"goals":          &model.GoalModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Fixture steps
	ctx.Given(`^a user exists with username "([^"]*)"$`, test.aUserExistsWithUsername)
	ctx.Given(`^a user exists with username "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithUsernameAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^the current date is "([^"]*)"$`, test.theCurrentDateIs)
	ctx.Given(`^"([^"]*)" has an income of (\d+) from "([^"]*)" on "([^"]*)"$`, test.hasAnIncome)
	ctx.Given(`^"([^"]*)" has an expense of (\d+) for "([^"]*)" on "([^"]*)"$`, test.hasAnExpense)
	ctx.Given(`^"([^"]*)" has a saving of (\d+) titled "([^"]*)" on "([^"]*)"$`, test.hasASaving)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)
	ctx.Then(`^the response should contain (\d+) items$`, test.theResponseShouldContainItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)

	// Email assertion steps
	ctx.Then(`^(\d+) report emails should have been delivered$`, test.reportEmailsShouldHaveBeenDelivered)
	ctx.Then(`^the last report email should be addressed to "([^"]*)"$`, test.theLastReportEmailShouldBeAddressedTo)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.response = nil
	t.emailMock.Reset()
	t.timeMock.SetCurrentTime(time.Now().UTC())
	_ = mock.ClearRedis(testRedis)

	if t.db != nil {
		_ = t.db.ClearDB()
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			cfg := config.Load()
			cfg.Server.Environment = "test"
			cfg.JWT.Secret = testJWTSecret

			injector, err := dependency.NewInjector(
				cfg,
				testDB.DbConn,
				testRedis,
				testSender,
				testClock,
			)
			if err != nil {
				panic("failed to wire test dependencies: " + err.Error())
			}

			engine := injector.Router.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithUsername(username string) error {
	return t.createUser(username, defaultTestPassword)
}

func (t *testContext) aUserExistsWithUsernameAndPassword(username, password string) error {
	return t.createUser(username, password)
}

func (t *testContext) createUser(username, password string) error {
	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) iAmLoggedInAs(username string) error {
	t.startServer()

	var count int64
	if err := t.db.DbConn.Model(&model.UserModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := t.createUser(username, defaultTestPassword); err != nil {
			return err
		}
	}

	payload := fmt.Sprintf(`{"username": %q, "password": %q}`, username, defaultTestPassword)
	if err := t.executeRequest(http.MethodPost, "/api/v1/auth/login", []byte(payload)); err != nil {
		return err
	}
	if t.response.status != http.StatusOK {
		return fmt.Errorf("login as %s failed with status %d: %v", username, t.response.status, t.response.body)
	}
	if t.accessToken == "" {
		return fmt.Errorf("login as %s returned no access token", username)
	}
	return nil
}

func (t *testContext) theCurrentDateIs(date string) error {
	parsed, err := time.Parse(calendarDateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	// Pin mid-day to keep the date stable across timezones.
	t.timeMock.SetCurrentTime(parsed.Add(12 * time.Hour))
	return nil
}

func (t *testContext) hasAnIncome(username string, amount int, source, date string) error {
	record := &model.IncomeModel{
		ID:        uuid.New(),
		Owner:     username,
		Source:    source,
		Amount:    int64(amount),
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(record).Error
}

func (t *testContext) hasAnExpense(username string, amount int, category, date string) error {
	record := &model.ExpenseModel{
		ID:        uuid.New(),
		Owner:     username,
		Category:  category,
		Amount:    int64(amount),
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(record).Error
}

func (t *testContext) hasASaving(username string, amount int, title, date string) error {
	record := &model.SavingModel{
		ID:        uuid.New(),
		Owner:     username,
		Title:     title,
		Amount:    int64(amount),
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(record).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var parsed any
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = parsed

		// Capture tokens from auth responses so later steps can use them.
		if body, ok := parsed.(map[string]any); ok {
			if token, ok := body["access_token"].(string); ok && token != "" {
				t.accessToken = token
			}
			if token, ok := body["refresh_token"].(string); ok && token != "" {
				t.refreshToken = token
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	switch t.response.body.(type) {
	case map[string]any, []any:
		return nil
	}
	return fmt.Errorf("response is not JSON: %v", t.response.body)
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if value := getFieldValue(t.response.body, field); value != nil {
		return fmt.Errorf("field '%s' unexpectedly present with value '%v'", field, value)
	}
	return nil
}

func (t *testContext) theResponseShouldContainItems(quantity int) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	items, ok := t.response.body.([]any)
	if !ok {
		return fmt.Errorf("response is not a JSON array: %v", t.response.body)
	}
	if len(items) != quantity {
		return fmt.Errorf("expected %d items, got %d: %v", quantity, len(items), items)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
	if result.Error != nil {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func (t *testContext) reportEmailsShouldHaveBeenDelivered(quantity int) error {
	if len(t.emailMock.SentEmails) != quantity {
		return fmt.Errorf("expected %d delivered emails, got %d", quantity, len(t.emailMock.SentEmails))
	}
	return nil
}

func (t *testContext) theLastReportEmailShouldBeAddressedTo(to string) error {
	if len(t.emailMock.SentEmails) == 0 {
		return errors.New("no emails were delivered")
	}
	last := t.emailMock.SentEmails[len(t.emailMock.SentEmails)-1]
	if last.To != to {
		return fmt.Errorf("expected last email addressed to %s, got %s", to, last.To)
	}
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	field := object

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
