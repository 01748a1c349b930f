package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/pkg/psqlbuilder"
	"github.com/m04kA/SMC-BookingCalendar/pkg/types"
)

const table = "bookings"

var columns = []string{
	"id",
	"booking_ref",
	"name",
	"title",
	"room_id",
	"room_name",
	"room_location",
	"price_per_hour",
	"space_type",
	"guest_name",
	"guest_email",
	"start_date",
	"end_date",
	"time_ranges",
	"guests",
	"status",
	"service_fee_and_tax",
	"total_amount",
}

// Repository источник бронирований в PostgreSQL (self-hosted вариант вместо REST бэкенда)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FetchBookings возвращает все бронирования в порядке добавления
func (r *Repository) FetchBookings(ctx context.Context) ([]domain.RawBooking, error) {
	query, args, err := selectAllQuery().ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FetchBookings - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FetchBookings - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// CreateBooking создает бронирование
func (r *Repository) CreateBooking(ctx context.Context, in domain.BookingInput) error {
	query, args, err := insertQuery(uuid.NewString(), in).ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBooking - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBooking - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// UpdateBooking изменяет редактируемые поля бронирования
func (r *Repository) UpdateBooking(ctx context.Context, id string, in domain.BookingInput) error {
	query, args, err := updateQuery(id, in).ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateBooking - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateBooking - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateBooking")
}

// DeleteBooking удаляет бронирование
func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteBooking - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBooking - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "DeleteBooking")
}

func selectAllQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(columns...).
		From(table).
		OrderBy("created_at ASC", "id ASC")
}

func insertQuery(id string, in domain.BookingInput) squirrel.InsertBuilder {
	return psqlbuilder.Insert(table).
		Columns(
			"id",
			"name",
			"title",
			"room_id",
			"start_date",
			"end_date",
			"time_ranges",
			"guests",
			"status",
		).
		Values(
			id,
			in.Name,
			in.Title,
			in.RoomID,
			in.StartDate,
			in.EndDate,
			pq.Array(timeRanges(in.TimeRanges)),
			in.Guests,
			in.Status,
		)
}

func updateQuery(id string, in domain.BookingInput) squirrel.UpdateBuilder {
	return psqlbuilder.Update(table).
		Set("name", in.Name).
		Set("title", in.Title).
		Set("room_id", in.RoomID).
		Set("start_date", in.StartDate).
		Set("end_date", in.EndDate).
		Set("time_ranges", pq.Array(timeRanges(in.TimeRanges))).
		Set("guests", in.Guests).
		Set("status", in.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
}

func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func timeRanges(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

// scanBookings сканирует результаты запроса в слайс бронирований.
// Даты отдаются строками YYYY-MM-DD, как их отдаёт REST бэкенд
func (r *Repository) scanBookings(rows *sql.Rows) ([]domain.RawBooking, error) {
	bookings := make([]domain.RawBooking, 0)

	for rows.Next() {
		var (
			b                        domain.RawBooking
			bookingRef, title        sql.NullString
			roomLocation, spaceType  sql.NullString
			guestName, guestEmail    sql.NullString
			pricePerHour, fee, total sql.NullFloat64
			guests                   sql.NullInt64
			startDate, endDate       types.Date
		)

		err := rows.Scan(
			&b.ID,
			&bookingRef,
			&b.Name,
			&title,
			&b.Room.ID,
			&b.Room.Name,
			&roomLocation,
			&pricePerHour,
			&spaceType,
			&guestName,
			&guestEmail,
			&startDate,
			&endDate,
			pq.Array(&b.TimeRanges),
			&guests,
			&b.Status,
			&fee,
			&total,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.BookingRef = bookingRef.String
		b.Title = title.String
		b.Room.Location = roomLocation.String
		b.Room.PricePerHour = pricePerHour.Float64
		b.SpaceType.Name = spaceType.String
		b.User.Name = guestName.String
		b.User.Email = guestEmail.String
		b.Guests = int(guests.Int64)
		b.ServiceFeeAndTax = fee.Float64
		b.TotalAmount = total.Float64
		b.StartDate = startDate.String()
		b.EndDate = endDate.String()

		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
