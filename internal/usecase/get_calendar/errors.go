package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной дате или направлении
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrLoadFailed возвращается, когда бронирования не удалось загрузить и показать нечего
	ErrLoadFailed = errors.New("get_calendar: bookings could not be loaded")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
