package bookings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-BookingCalendar/internal/service/bookings/models"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validateDateRange, models.BookingRequest{})
	return v
}

// validateDateRange обе даты обязательны, конец не раньше начала
func validateDateRange(sl validator.StructLevel) {
	req := sl.Current().Interface().(models.BookingRequest)

	if req.StartDate.IsZero() {
		sl.ReportError(req.StartDate, "StartDate", "startDate", "required", "")
	}
	if req.EndDate.IsZero() {
		sl.ReportError(req.EndDate, "EndDate", "endDate", "required", "")
	}
	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		sl.ReportError(req.EndDate, "EndDate", "endDate", "gtefield", "StartDate")
	}
}

// validateRequest проверяет запрос и возвращает ErrInvalidInput с перечнем полей
func (s *Service) validateRequest(req *models.BookingRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty request", ErrInvalidInput)
	}

	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fmt.Sprintf("%s(%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty booking id", ErrInvalidInput)
	}
	return nil
}
