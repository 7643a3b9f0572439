package createbasereminder

import (
	"collegereminders/internal/core/domain/category"
	c "collegereminders/internal/core/domain/common"
	e "collegereminders/internal/core/domain/errors"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/timeframe"
	"collegereminders/internal/core/services"
	service "collegereminders/internal/core/services/create_base_reminder"
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
	Name         string  `json:"name"`
	Message      string  `json:"message"`
	Detail       string  `json:"detail"`
	LateMessage  string  `json:"late_message"`
	LateDetail   *string `json:"late_detail"`
	CategoryID   int64   `json:"category_id"`
	TimeframeIDs []int64 `json:"timeframe_ids"`
}

type Result struct {
	BaseReminder response.BaseReminder `json:"base_reminder"`
}

func (i *Input) FromJSON(r io.Reader) error {
	return json.NewDecoder(r).Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, validation.Length(0, 256)),
		validation.Field(&i.Message, validation.Length(0, 2048)),
		validation.Field(&i.Detail, validation.Length(0, 8192)),
		validation.Field(&i.LateMessage, validation.Length(0, 2048)),
		validation.Field(&i.LateDetail, validation.Length(0, 8192)),
		validation.Field(&i.CategoryID, validation.Required, validation.Min(1)),
		validation.Field(&i.TimeframeIDs, validation.Required, validation.Length(1, 64)),
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

	serviceInput := service.Input{
		Name:         input.Name,
		Message:      input.Message,
		Detail:       input.Detail,
		LateMessage:  input.LateMessage,
		CategoryID:   category.ID(input.CategoryID),
		TimeframeIDs: make([]timeframe.ID, 0, len(input.TimeframeIDs)),
	}
	if input.LateDetail != nil {
		serviceInput.LateDetail = c.NewOptional(*input.LateDetail, true)
	}
	for _, id := range input.TimeframeIDs {
		serviceInput.TimeframeIDs = append(serviceInput.TimeframeIDs, timeframe.ID(id))
	}

	result, err := h.service.Run(r.Context(), serviceInput)
	if err != nil {
		switch {
		case response.RenderAuthError(rw, err):
		case errors.Is(err, category.ErrCategoryDoesNotExist),
			errors.Is(err, reminder.ErrTimeframesNotValid),
			errors.Is(err, reminder.ErrTimeframesNotSet),
			errors.Is(err, service.ErrBaseReminderNameNotSet):
			response.RenderError(rw, err.Error(), http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}
	response.Render(rw, Result{BaseReminder: response.NewBaseReminder(result.BaseReminder)}, http.StatusCreated)
}
