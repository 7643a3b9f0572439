package updateschool

import (
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/update_school"
	"collegereminders/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
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
	Name     *string `json:"name"`
	DueDate  *string `json:"due_date"`
	IsActive *bool   `json:"is_active"`
}

type Result struct {
	School response.School `json:"school"`
}

func (i *Input) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Length(0, 256)),
		validation.Field(&i.DueDate, validation.Date(c.DateLayout)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	schoolID, err := strconv.ParseInt(chi.URLParam(r, "schoolID"), 10, 64)
	if err != nil {
		response.RenderError(rw, "invalid school ID", http.StatusBadRequest)
		return
	}

	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	serviceInput := service.Input{SchoolID: school.ID(schoolID)}
	if input.Name != nil {
		serviceInput.DoNameUpdate = true
		serviceInput.Name = *input.Name
	}
	if input.DueDate != nil {
		dueDate, err := c.ParseDate(*input.DueDate)
		if err != nil {
			response.RenderError(rw, "invalid due date", http.StatusBadRequest)
			return
		}
		serviceInput.DoDueDateUpdate = true
		serviceInput.DueDate = dueDate
	}
	if input.IsActive != nil {
		serviceInput.DoIsActiveUpdate = true
		serviceInput.IsActive = *input.IsActive
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case response.RenderAuthError(rw, err):
		case errors.Is(err, school.ErrSchoolDoesNotExist):
			response.RenderError(rw, err.Error(), http.StatusNotFound)
		case errors.Is(err, school.ErrSchoolNameNotSet):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	s := response.School{}
	s.FromDomainSchool(result.School)
	response.Render(rw, Result{School: s}, http.StatusOK)
}
