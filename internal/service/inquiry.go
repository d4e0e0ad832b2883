package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/olehsv/videolanding/internal/models"
	"github.com/olehsv/videolanding/internal/telegram"
)

// ValidationError reports a missing required field. It is recovered
// locally and surfaced as inline field feedback; no delivery is attempted.
type ValidationError struct {
	// Field names the missing required field.
	Field string
}

func (e *ValidationError) Error() string {
	return "required field is missing: " + e.Field
}

// InquiryService runs the submission flow: validate, format, deliver once.
// It is agnostic to which delivery strategy is configured.
type InquiryService struct {
	deliverer telegram.Deliverer
	now       func() time.Time
	log       *zap.Logger
}

// NewInquiryService constructs an InquiryService using the provided
// deliverer.
func NewInquiryService(d telegram.Deliverer, log *zap.Logger) *InquiryService {
	return &InquiryService{deliverer: d, now: time.Now, log: log}
}

// ValidateInquiry checks required-field presence. Validation is presence
// only: malformed-but-present values are the operator's problem, not a
// rejection.
func ValidateInquiry(inq models.Inquiry) error {
	switch {
	case strings.TrimSpace(inq.Name) == "":
		return &ValidationError{Field: "name"}
	case strings.TrimSpace(inq.Phone) == "":
		return &ValidationError{Field: "phone"}
	case strings.TrimSpace(inq.Occasion) == "":
		return &ValidationError{Field: "occasion"}
	}
	return nil
}

// Submit validates the inquiry, formats it and hands it to the configured
// delivery strategy exactly once. There is no automatic retry: a failed
// delivery is surfaced and recovery is a user-initiated resubmission.
func (s *InquiryService) Submit(ctx context.Context, inq models.Inquiry) (telegram.Receipt, error) {
	if inq.VideoCount == "" {
		inq.VideoCount = "1"
	}

	if err := ValidateInquiry(inq); err != nil {
		return telegram.Receipt{}, err
	}

	text := telegram.FormatInquiry(inq, s.now())

	receipt, err := s.deliverer.Deliver(ctx, text)
	if err != nil {
		s.log.Error("inquiry delivery failed", zap.Error(err))
		return telegram.Receipt{}, err
	}

	s.log.Info("inquiry delivered",
		zap.String("occasion", inq.Occasion),
		zap.Bool("server_push", receipt.Delivered),
	)
	return receipt, nil
}
