package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrLoadFailed возвращается, когда коллекцию бронирований не удалось загрузить
	// и показать пока нечего
	ErrLoadFailed = errors.New("bookings could not be loaded")

	// ErrMutationFailed возвращается, когда источник не выполнил создание, изменение или удаление
	ErrMutationFailed = errors.New("booking mutation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
