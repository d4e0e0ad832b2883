// Package http provides HTTP handlers for the public inquiry form and the
// operator's portfolio back-office.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/olehsv/videolanding/internal/models"
	"github.com/olehsv/videolanding/internal/service"
	"github.com/olehsv/videolanding/internal/telegram"
)

// User-facing status messages, shipped in Ukrainian like the rest of the
// site.
const (
	msgSent          = "Заявку успішно відправлено!"
	msgBadRequest    = "Невірний формат запиту"
	msgMissingFields = "Будь ласка, заповніть всі обов'язкові поля"
	msgMisconfigured = "Помилка конфігурації сервера. Спробуйте пізніше."
	msgUpstream      = "Помилка відправки повідомлення. Спробуйте пізніше."
	msgInternal      = "Виникла помилка. Спробуйте пізніше."
)

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorResponse is the JSON body of every failed request. Field is set
// only for validation failures so the form can highlight the input.
type errorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// InquiryService defines the submission operations required by the
// InquiryHandler.
type InquiryService interface {
	// Submit validates, formats and delivers the inquiry once.
	Submit(ctx context.Context, inq models.Inquiry) (telegram.Receipt, error)
}

// InquiryHandler handles public inquiry form submissions.
type InquiryHandler struct {
	// InquiryService performs the underlying submission flow.
	InquiryService InquiryService
}

// submitResponse is returned on a successful submission. HandoffURL is set
// only for the client-handoff strategy; the browser opens it to complete
// delivery. On success the form resets; on failure the client keeps the
// entered values for resubmission.
type submitResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	HandoffURL string `json:"handoffUrl,omitempty"`
}

// Submit handles POST /api/inquiry.
func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var inq models.Inquiry
	if err := json.NewDecoder(r.Body).Decode(&inq); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgBadRequest})
		return
	}

	receipt, err := h.InquiryService.Submit(r.Context(), inq)

	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgMissingFields, Field: vErr.Field})
	case errors.Is(err, telegram.ErrMisconfigured):
		// Generic message only: the missing secret is never named.
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgMisconfigured})
	case errors.Is(err, telegram.ErrUpstream):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: msgUpstream})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternal})
	default:
		writeJSON(w, http.StatusOK, submitResponse{
			Success:    true,
			Message:    msgSent,
			HandoffURL: receipt.HandoffURL,
		})
	}
}
