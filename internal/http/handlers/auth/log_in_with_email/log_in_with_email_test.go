package loginwithemail

import (
	c "collegereminders/internal/core/domain/common"
	ratelimiter "collegereminders/internal/core/domain/rate_limiter"
	"collegereminders/internal/core/domain/user"
	service "collegereminders/internal/core/services/log_in_with_email"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	return service.Result{Token: user.SessionToken("token")}, nil
}

func TestLogInWithEmailHandler(t *testing.T) {
	validBody := `{"email": "test@test.com", "password": "password"}`
	validInput := &service.Input{Email: c.NewEmail("test@test.com"), Password: user.RawPassword("password")}
	cases := []struct {
		id             string
		body           string
		err            error
		expectedStatus int
		expectedInput  *service.Input
		expectedBody   string
	}{
		{
			id:             "ok",
			body:           validBody,
			expectedStatus: http.StatusOK,
			expectedInput:  validInput,
			expectedBody:   `{"token": "token"}`,
		},
		{id: "invalid email", body: `{"email": "test", "password": "password"}`, expectedStatus: http.StatusBadRequest},
		{id: "no password", body: `{"email": "test@test.com"}`, expectedStatus: http.StatusBadRequest},
		{
			id:             "invalid credentials",
			body:           validBody,
			err:            user.ErrInvalidCredentials,
			expectedStatus: http.StatusUnauthorized,
			expectedInput:  validInput,
		},
		{
			id:             "rate limited",
			body:           validBody,
			err:            ratelimiter.ErrRateLimitExceeded,
			expectedStatus: http.StatusTooManyRequests,
			expectedInput:  validInput,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := &stubService{err: testcase.err}
			rw := httptest.NewRecorder()

			New(s).ServeHTTP(rw, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(testcase.body)))

			assert.Equal(t, testcase.expectedStatus, rw.Code)
			assert.Equal(t, testcase.expectedInput, s.input)
			if testcase.expectedBody != "" {
				assert.JSONEq(t, testcase.expectedBody, rw.Body.String())
			}
		})
	}
}
