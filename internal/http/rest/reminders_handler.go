package rest

import (
	"log"
	"net/http"

	"github.com/bwise1/georemind/internal/model"
	"github.com/bwise1/georemind/internal/reminders"
	"github.com/bwise1/georemind/util"
	"github.com/bwise1/georemind/util/tracing"
	"github.com/bwise1/georemind/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

func (api *API) ReminderRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Route("/", func(r chi.Router) {
		r.Use(api.RequireUser)
		r.Method(http.MethodPost, "/", Handler(api.CreateReminder))
		r.Method(http.MethodGet, "/", Handler(api.ListReminders))
		r.Method(http.MethodDelete, "/", Handler(api.DeleteAllReminders))
		r.Method(http.MethodGet, "/{id}", Handler(api.GetReminder))
		r.Method(http.MethodPut, "/{id}", Handler(api.UpdateReminder))
		r.Method(http.MethodDelete, "/{id}", Handler(api.DeleteReminder))
	})

	return mux
}

func (api *API) CreateReminder(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.ReminderRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Println("unable to get user ID from context", err)
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	reminder, status, message, err := api.SaveReminderHelper(r.Context(), userID, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       reminder,
	}
}

func (api *API) ListReminders(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Println("unable to get user ID from context", err)
		return respondWithError(err, "Not authorized", values.NotAuthorised, &tc)
	}

	result, status, message := api.ListRemindersHelper(r.Context(), userID)

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       result,
	}
}

func (api *API) GetReminder(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id := chi.URLParam(r, "id")

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Println("unable to get user ID from context", err)
		return respondWithError(err, "Not authorized", values.NotAuthorised, &tc)
	}

	reminder, err := api.Repo.GetReminder(r.Context(), id)
	if err != nil {
		if errors.Is(err, reminders.ErrNotFound) {
			return respondWithError(err, "Reminder not found", values.NotFound, &tc)
		}
		return respondWithError(err, "failed to get reminder", values.Error, &tc)
	}
	if reminder.UserID != userID {
		return respondWithError(errors.New("reminder owner mismatch"), "Reminder belongs to another user", values.NotAllowed, &tc)
	}

	return &ServerResponse{
		Message:    "Reminder retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       reminder,
	}
}

func (api *API) UpdateReminder(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id := chi.URLParam(r, "id")

	var req model.ReminderRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Println("unable to get user ID from context", err)
		return respondWithError(err, "unable to get user ID from context", values.NotAuthorised, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	reminder, status, message, err := api.UpdateReminderHelper(r.Context(), userID, id, req)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
		Data:       reminder,
	}
}

func (api *API) DeleteReminder(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id := chi.URLParam(r, "id")

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Println("unable to get user ID from context", err)
		return respondWithError(err, "Not authorized", values.NotAuthorised, &tc)
	}

	status, message, err := api.DeleteReminderHelper(r.Context(), userID, id)
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func (api *API) DeleteAllReminders(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	userID, err := util.GetUserIDFromContext(r.Context())
	if err != nil {
		log.Println("unable to get user ID from context", err)
		return respondWithError(err, "Not authorized", values.NotAuthorised, &tc)
	}

	if err := api.Repo.DeleteAllReminders(r.Context(), userID); err != nil {
		return respondWithError(err, "failed to delete reminders", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Reminders deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}
