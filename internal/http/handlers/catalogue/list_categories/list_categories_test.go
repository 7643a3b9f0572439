package listcategories

import (
	"collegereminders/internal/core/domain/category"
	service "collegereminders/internal/core/services/list_categories"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err        error
	categories []category.Category
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	return service.Result{Categories: s.categories}, s.err
}

func TestListCategoriesHandler(t *testing.T) {
	cases := []struct {
		id             string
		service        *stubService
		expectedStatus int
		expectedBody   string
	}{
		{
			id:             "empty",
			service:        &stubService{},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"categories": []}`,
		},
		{
			id:             "ok",
			service:        &stubService{categories: []category.Category{{ID: 1, Name: "Essays"}, {ID: 2, Name: "Testing"}}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"categories": [{"id": 1, "name": "Essays"}, {"id": 2, "name": "Testing"}]}`,
		},
		{
			id:             "internal",
			service:        &stubService{err: errors.New("db is down")},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			rw := httptest.NewRecorder()

			New(testcase.service).ServeHTTP(rw, httptest.NewRequest(http.MethodGet, "/categories", nil))

			assert.Equal(t, testcase.expectedStatus, rw.Code)
			if testcase.expectedBody != "" {
				assert.JSONEq(t, testcase.expectedBody, rw.Body.String())
			}
		})
	}
}
