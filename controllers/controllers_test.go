package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// perform runs a handler directly with an optional JSON body and an
// authenticated email, the way the middleware would have left the context.
func perform(method, target, body, email string, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	if body != "" {
		c.Request.Header.Set("Content-Type", "application/json")
	}
	if email != "" {
		c.Set("email", email)
	}

	handler(c)
	return w
}

func TestRegisterRequiresPassword(t *testing.T) {
	w := perform(http.MethodPost, "/register",
		`{"email":"user@example.com","name":"User","height":175,"weight":70,"age":25,"gender":"Male"}`,
		"", Register)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Password is required")
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	w := perform(http.MethodPost, "/register", `{"email":`, "", Register)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserDataValidation(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{"non-numeric height", `{"height":"abc"}`, http.StatusBadRequest, "Invalid value for height"},
		{"non-numeric weight", `{"weight":"heavy"}`, http.StatusBadRequest, "Invalid value for weight"},
		{"non-numeric age", `{"age":"old"}`, http.StatusBadRequest, "Invalid value for age"},
		{"non-string name", `{"name":123}`, http.StatusBadRequest, "Invalid value for name"},
		{"empty body", `{}`, http.StatusBadRequest, "Nothing to update"},
		{"only disallowed fields", `{"gender":"Male","email":"other@example.com"}`, http.StatusBadRequest, "Nothing to update"},
		{"null values are ignored", `{"height":null}`, http.StatusBadRequest, "Nothing to update"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(http.MethodPut, "/update-user-data", tt.body, "user@example.com", UpdateUserData)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMessage)
		})
	}
}

func TestUpdateUserDataCalorieGoalOnlyIsNotPersisted(t *testing.T) {
	// calorie_goal passes validation but is stripped before any write, so a
	// request carrying nothing else has nothing left to update.
	w := perform(http.MethodPut, "/update-user-data", `{"calorie_goal":1800}`, "user@example.com", UpdateUserData)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Nothing to update")
}

func TestLogsByDateValidation(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		wantMessage string
	}{
		{"missing date", "/logs-by-date", "Date parameter is required"},
		{"wrong order", "/logs-by-date?date=15-03-2024", "Invalid date format"},
		{"not zero padded", "/logs-by-date?date=2024-3-15", "Invalid date format"},
		{"not a date at all", "/logs-by-date?date=yesterday", "Invalid date format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(http.MethodGet, tt.target, "", "user@example.com", LogsByDate)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantMessage)
		})
	}
}

// The weekly per-day array and the daily/monthly single totals object are
// distinct on purpose: the weekly view drives a day-by-day chart while the
// other modes answer "how much so far". Collapsing them breaks clients.
func TestDailyLogsResponseShapes(t *testing.T) {
	origWeekly, origTotals := fetchWeeklyBreakdown, fetchRangeTotals
	defer func() {
		fetchWeeklyBreakdown, fetchRangeTotals = origWeekly, origTotals
	}()

	var gotMode string
	fetchWeeklyBreakdown = func(userID string, ref time.Time) ([]services.DailyTotals, error) {
		start, end := services.RangeWindow(ref, services.RangeWeekly)
		days := []services.DailyTotals{}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days = append(days, services.DailyTotals{Date: d.Format("2006-01-02")})
		}
		return days, nil
	}
	fetchRangeTotals = func(userID string, ref time.Time, mode string) (services.NutrientTotals, error) {
		gotMode = mode
		return services.NutrientTotals{Calories: 321, Proteins: 12}, nil
	}

	t.Run("weekly answers a dailyData breakdown", func(t *testing.T) {
		w := perform(http.MethodGet, "/daily-logs?date=2024-03-15&range=weekly", "", "user@example.com", DailyLogs)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Contains(t, body, "dailyData")
		assert.NotContains(t, body, "totals")

		var days []services.DailyTotals
		require.NoError(t, json.Unmarshal(body["dailyData"], &days))
		require.Len(t, days, 7)
		assert.Equal(t, "2024-03-09", days[0].Date)
		assert.Equal(t, "2024-03-15", days[6].Date)
	})

	for _, mode := range []string{"daily", "monthly", ""} {
		name := mode
		if name == "" {
			name = "absent range"
		}
		t.Run(name+" answers a single totals object", func(t *testing.T) {
			target := "/daily-logs?date=2024-03-15"
			if mode != "" {
				target += "&range=" + mode
			}
			w := perform(http.MethodGet, target, "", "user@example.com", DailyLogs)
			require.Equal(t, http.StatusOK, w.Code)

			var body map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			require.Contains(t, body, "totals")
			assert.NotContains(t, body, "dailyData")

			var totals services.NutrientTotals
			require.NoError(t, json.Unmarshal(body["totals"], &totals))
			assert.Equal(t, 321.0, totals.Calories)
			assert.Equal(t, 12.0, totals.Proteins)
			assert.Equal(t, mode, gotMode)
		})
	}
}

func TestToFloatCoercion(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  float64
		ok    bool
	}{
		{"json number", 72.5, 72.5, true},
		{"clean numeric string", "72.5", 72.5, true},
		{"integer string", "180", 180, true},
		{"trailing garbage", "72kg", 0, false},
		{"boolean", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toFloat(tt.value)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestToIntTruncates(t *testing.T) {
	got, ok := toInt(25.9)
	assert.True(t, ok)
	assert.Equal(t, 25, got)

	got, ok = toInt("26")
	assert.True(t, ok)
	assert.Equal(t, 26, got)

	_, ok = toInt("twenty")
	assert.False(t, ok)
}
