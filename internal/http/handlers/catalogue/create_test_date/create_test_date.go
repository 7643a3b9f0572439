package createtestdate

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/testdate"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/create_test_date"
	"collegereminders/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
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

type Input struct {
	TestID           int64  `json:"test_id"`
	RegistrationDate string `json:"registration_date"`
	AdminDate        string `json:"admin_date"`
}

type Result struct {
	TestDate response.TestDate `json:"test_date"`
}

func (i *Input) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.TestID, validation.Required, validation.Min(1)),
		validation.Field(&i.RegistrationDate, validation.Required, validation.Date(c.DateLayout)),
		validation.Field(&i.AdminDate, validation.Required, validation.Date(c.DateLayout)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}
	registrationDate, err := c.ParseDate(input.RegistrationDate)
	if err != nil {
		response.RenderError(rw, "invalid registration date", http.StatusBadRequest)
		return
	}
	adminDate, err := c.ParseDate(input.AdminDate)
	if err != nil {
		response.RenderError(rw, "invalid admin date", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{
		TestID:           testdate.TestID(input.TestID),
		RegistrationDate: registrationDate,
		AdminDate:        adminDate,
	})
	if err != nil {
		switch {
		case response.RenderAuthError(rw, err):
		case errors.Is(err, testdate.ErrTestDoesNotExist), errors.Is(err, testdate.ErrAdminBeforeRegistration):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, Result{TestDate: response.NewTestDate(result.TestDate)}, http.StatusCreated)
}
