package createschool

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/create_school"
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
	Name    string `json:"name"`
	DueDate string `json:"due_date"`
}

type Result struct {
	School response.School `json:"school"`
}

func (i *Input) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.DueDate, validation.Required, validation.Date(c.DateLayout)),
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
	dueDate, err := c.ParseDate(input.DueDate)
	if err != nil {
		response.RenderError(rw, "invalid due date", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(r.Context(), service.Input{Name: input.Name, DueDate: dueDate})
	if err != nil {
		switch {
		case response.RenderAuthError(rw, err):
		case errors.Is(err, school.ErrSchoolNameNotSet):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	s := response.School{}
	s.FromDomainSchool(result.School)
	response.Render(rw, Result{School: s}, http.StatusCreated)
}
