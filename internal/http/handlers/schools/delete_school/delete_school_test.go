package deleteschool

import (
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/user"
	service "collegereminders/internal/core/services/delete_school"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	s.input = &input
	return result, s.err
}

func serve(s *stubService, path string) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(http.MethodDelete, "/schools/{schoolID}", New(s))
	rw := httptest.NewRecorder()
	router.ServeHTTP(rw, httptest.NewRequest(http.MethodDelete, path, nil))
	return rw
}

func TestDeleteSchoolHandler(t *testing.T) {
	cases := []struct {
		id             string
		path           string
		err            error
		expectedStatus int
		expectedInput  *service.Input
	}{
		{
			id:             "ok",
			path:           "/schools/7",
			expectedStatus: http.StatusNoContent,
			expectedInput:  &service.Input{SchoolID: 7},
		},
		{id: "bad id", path: "/schools/abc", expectedStatus: http.StatusBadRequest},
		{
			id:             "not found",
			path:           "/schools/7",
			err:            school.ErrSchoolDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedInput:  &service.Input{SchoolID: 7},
		},
		{
			id:             "unauthorized",
			path:           "/schools/7",
			err:            user.ErrSessionDoesNotExist,
			expectedStatus: http.StatusUnauthorized,
			expectedInput:  &service.Input{SchoolID: 7},
		},
		{
			id:             "internal",
			path:           "/schools/7",
			err:            errors.New("db is down"),
			expectedStatus: http.StatusInternalServerError,
			expectedInput:  &service.Input{SchoolID: 7},
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			s := &stubService{err: testcase.err}

			rw := serve(s, testcase.path)

			assert.Equal(t, testcase.expectedStatus, rw.Code)
			assert.Equal(t, testcase.expectedInput, s.input)
		})
	}
}
