package bookingapi

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бэкенд не знает бронирование с таким ID
	ErrBookingNotFound = errors.New("bookingapi client: booking not found")

	// ErrRejected возвращается, когда бэкенд отклонил данные запроса (400 или success=false)
	ErrRejected = errors.New("bookingapi client: request rejected")

	// ErrUnauthorized возвращается, когда бэкенд не принял токен
	ErrUnauthorized = errors.New("bookingapi client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, сборка запроса)
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от бэкенда
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
