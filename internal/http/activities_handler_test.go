package http_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "activities-signup/internal/http"
	"activities-signup/internal/model"
	"activities-signup/internal/repository"
	"activities-signup/internal/service"
)

func testCatalog() model.Catalog {
	return model.Catalog{
		{Name: "Chess Club", Activity: model.Activity{
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		}},
		{Name: "Programming Class", Activity: model.Activity{
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		}},
		{Name: "Gym Class", Activity: model.Activity{
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		}},
	}
}

func newTestRouter() http.Handler {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repo := repository.NewMemoryRepo(testCatalog())
	svc := service.NewActivityService(repo)
	return httpapi.NewHandler(svc, logger, httpapi.Options{}).Router()
}

func do(t *testing.T, router http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func listActivities(t *testing.T, router http.Handler) model.Catalog {
	t.Helper()
	w := do(t, router, http.MethodGet, "/activities")
	require.Equal(t, http.StatusOK, w.Code)

	var catalog model.Catalog
	require.NoError(t, json.NewDecoder(w.Body).Decode(&catalog))
	return catalog
}

func TestHandler_RootRedirect(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/")

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/static/index.html", w.Header().Get("Location"))
}

func TestHandler_Health(t *testing.T) {
	w := do(t, newTestRouter(), http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandler_ListActivities(t *testing.T) {
	router := newTestRouter()
	catalog := listActivities(t, router)

	assert.Equal(t, []string{"Chess Club", "Programming Class", "Gym Class"}, catalog.Names())

	chess, ok := catalog.Lookup("Chess Club")
	require.True(t, ok)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Len(t, chess.Participants, 2)
	assert.Contains(t, chess.Participants, "michael@mergington.edu")
}

func TestHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedKey    string
		expectedValue  string
	}{
		{
			name:           "Success",
			target:         "/activities/Chess%20Club/signup?email=newstudent@mergington.edu",
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
			expectedValue:  "Signed up newstudent@mergington.edu for Chess Club",
		},
		{
			name:           "Success: encoded email",
			target:         "/activities/Programming%20Class/signup?email=" + url.QueryEscape("new+coder@mergington.edu"),
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
			expectedValue:  "Signed up new+coder@mergington.edu for Programming Class",
		},
		{
			name:           "Not Found: activity",
			target:         "/activities/Nonexistent%20Club/signup?email=test@mergington.edu",
			expectedStatus: http.StatusNotFound,
			expectedKey:    "detail",
			expectedValue:  "Activity not found",
		},
		{
			name:           "Bad Request: duplicate participant",
			target:         "/activities/Chess%20Club/signup?email=michael@mergington.edu",
			expectedStatus: http.StatusBadRequest,
			expectedKey:    "detail",
			expectedValue:  "Student already signed up for this activity",
		},
		{
			name:           "Unprocessable: missing email",
			target:         "/activities/Chess%20Club/signup",
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKey:    "detail",
			expectedValue:  "email is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestRouter(), http.MethodPost, tt.target)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedValue, decodeBody(t, w)[tt.expectedKey])
		})
	}
}

func TestHandler_SignupAddsParticipant(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, http.MethodPost, "/activities/Chess%20Club/signup?email=newstudent@mergington.edu")
	require.Equal(t, http.StatusOK, w.Code)

	chess, _ := listActivities(t, router).Lookup("Chess Club")
	assert.Equal(t, "newstudent@mergington.edu", chess.Participants[len(chess.Participants)-1])
}

func TestHandler_PageHideAfterOption(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repo := repository.NewMemoryRepo(testCatalog())
	router := httpapi.NewHandler(service.NewActivityService(repo), logger, httpapi.Options{
		HideAfter: 2 * time.Second,
	}).Router()

	form := url.Values{"activity": {"Gym Class"}, "email": {"late@mergington.edu"}}
	req := httptest.NewRequest(http.MethodPost, "/static/signup", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="success" data-hide-after-ms="2000">`)
	assert.Contains(t, body, `animation:hide-message 0s linear 2000ms forwards`)
}

func TestHandler_SignupFullActivity(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	repo := repository.NewMemoryRepo(model.Catalog{
		{Name: "Tiny Club", Activity: model.Activity{MaxParticipants: 1, Participants: []string{"a@mergington.edu"}}},
	})
	router := httpapi.NewHandler(service.NewActivityService(repo), logger, httpapi.Options{}).Router()

	w := do(t, router, http.MethodPost, "/activities/Tiny%20Club/signup?email=b@mergington.edu")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Activity is full", decodeBody(t, w)["detail"])
}

func TestHandler_RemoveParticipant(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		expectedStatus int
		expectedKey    string
		expectedValue  string
	}{
		{
			name:           "Success",
			target:         "/activities/Chess%20Club/participants/michael@mergington.edu",
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
			expectedValue:  "Removed michael@mergington.edu from Chess Club",
		},
		{
			name:           "Success: encoded email",
			target:         "/activities/Programming%20Class/participants/emma%40mergington.edu",
			expectedStatus: http.StatusOK,
			expectedKey:    "message",
			expectedValue:  "Removed emma@mergington.edu from Programming Class",
		},
		{
			name:           "Not Found: activity",
			target:         "/activities/Nonexistent%20Club/participants/test@mergington.edu",
			expectedStatus: http.StatusNotFound,
			expectedKey:    "detail",
			expectedValue:  "Activity not found",
		},
		{
			name:           "Not Found: participant",
			target:         "/activities/Chess%20Club/participants/notregistered@mergington.edu",
			expectedStatus: http.StatusNotFound,
			expectedKey:    "detail",
			expectedValue:  "Participant not found in this activity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, newTestRouter(), http.MethodDelete, tt.target)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedValue, decodeBody(t, w)[tt.expectedKey])
		})
	}
}

func TestHandler_SignupAndRemoveWorkflow(t *testing.T) {
	router := newTestRouter()

	w := do(t, router, http.MethodPost, "/activities/Gym%20Class/signup?email=athlete@mergington.edu")
	require.Equal(t, http.StatusOK, w.Code)

	gym, _ := listActivities(t, router).Lookup("Gym Class")
	assert.Contains(t, gym.Participants, "athlete@mergington.edu")

	w = do(t, router, http.MethodDelete, "/activities/Gym%20Class/participants/athlete@mergington.edu")
	require.Equal(t, http.StatusOK, w.Code)

	gym, _ = listActivities(t, router).Lookup("Gym Class")
	assert.NotContains(t, gym.Participants, "athlete@mergington.edu")
}

func TestHandler_MultipleSignupsDifferentActivities(t *testing.T) {
	router := newTestRouter()
	const email = "multitalented@mergington.edu"

	for _, target := range []string{
		"/activities/Chess%20Club/signup?email=" + email,
		"/activities/Programming%20Class/signup?email=" + email,
	} {
		w := do(t, router, http.MethodPost, target)
		require.Equal(t, http.StatusOK, w.Code)
	}

	catalog := listActivities(t, router)
	chess, _ := catalog.Lookup("Chess Club")
	programming, _ := catalog.Lookup("Programming Class")
	assert.Contains(t, chess.Participants, email)
	assert.Contains(t, programming.Participants, email)
}

func TestHandler_Page(t *testing.T) {
	router := newTestRouter()

	t.Run("Index", func(t *testing.T) {
		w := do(t, router, http.MethodGet, "/static/index.html")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Equal(t, 3, strings.Count(body, `class="activity-card"`))
		assert.Contains(t, body, `<option value="Gym Class">Gym Class</option>`)
		assert.Contains(t, body, "10 spots left")
		assert.Contains(t, body, `<div id="message" class="hidden"></div>`)
	})

	postForm := func(values url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/static/signup", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("Form signup success", func(t *testing.T) {
		w := postForm(url.Values{"activity": {"Gym Class"}, "email": {"jane@mergington.edu"}})

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `class="success" data-hide-after-ms="5000">Signed up jane@mergington.edu for Gym Class</div>`)
		assert.Contains(t, body, "<li>jane@mergington.edu</li>")
		assert.Contains(t, body, `id="email" name="email" required placeholder="your-email@mergington.edu" value=""`)
		assert.Contains(t, body, `#message.success,#message.error{animation:hide-message 0s linear 5000ms forwards}`)
	})

	t.Run("Form signup rejected keeps values", func(t *testing.T) {
		w := postForm(url.Values{"activity": {"Chess Club"}, "email": {"michael@mergington.edu"}})

		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `class="error" data-hide-after-ms="5000">Student already signed up for this activity</div>`)
		assert.Contains(t, body, `value="michael@mergington.edu"`)
		assert.Contains(t, body, `<option value="Chess Club" selected>Chess Club</option>`)
	})
}
