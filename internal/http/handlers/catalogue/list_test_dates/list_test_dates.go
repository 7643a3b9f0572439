package listtestdates

import (
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/list_test_dates"
	"collegereminders/internal/http/handlers/response"
	"net/http"
	"strconv"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(service services.Service[service.Input, service.Result]) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Result struct {
	TestDates []response.TestDate `json:"test_dates"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := service.Input{}
	if raw := r.URL.Query().Get("upcoming"); raw != "" {
		upcoming, err := strconv.ParseBool(raw)
		if err != nil {
			response.RenderError(rw, "invalid upcoming query parameter", http.StatusBadRequest)
			return
		}
		input.UpcomingOnly = upcoming
	}

	result, err := h.service.Run(r.Context(), input)
	if err != nil {
		response.RenderInternalError(rw)
		return
	}
	testDates := make([]response.TestDate, 0, len(result.TestDates))
	for _, td := range result.TestDates {
		testDates = append(testDates, response.NewTestDate(td))
	}
	response.Render(rw, Result{TestDates: testDates}, http.StatusOK)
}
