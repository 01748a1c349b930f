package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout формат даты YYYY-MM-DD
const DateLayout = "2006-01-02"

// ErrInvalidDate возвращается, когда строку нельзя разобрать как дату
var ErrInvalidDate = errors.New("invalid date string format")

// Допустимые форматы входной даты. Время суток отбрасывается,
// берётся календарная дата в том смещении, в котором она записана.
var parseLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Date календарная дата без времени суток.
// Значение неизменяемое: все операции возвращают новую дату.
type Date struct {
	t time.Time // всегда полночь UTC
}

// NewDate создает дату из года, месяца и дня.
// Значения вне диапазона нормализуются так же, как в time.Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf возвращает календарную дату момента t в его собственной локации
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today возвращает текущую дату в указанной локации
func Today(loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

// ParseDate разбирает дату из строки YYYY-MM-DD или RFC 3339
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}

	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}

	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// MustParseDate как ParseDate, но паникует при ошибке. Только для тестов и констант.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Day() int {
	return d.t.Day()
}

// Weekday день недели, воскресенье = 0
func (d Date) Weekday() time.Weekday {
	return d.t.Weekday()
}

// AddDays сдвигает дату на n дней
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// AddMonths сдвигает дату на n месяцев.
// Если в целевом месяце нет такого дня, берётся последний день месяца (31.01 + 1 = 28/29.02).
func (d Date) AddMonths(n int) Date {
	y, m, day := d.t.Date()

	total := int(m) - 1 + n
	y += floorDiv(total, 12)
	month := time.Month(floorMod(total, 12) + 1)

	if last := daysIn(y, month); day > last {
		day = last
	}

	return NewDate(y, month, day)
}

// AddYears сдвигает дату на n лет (29.02 переходит в 28.02 невисокосного года)
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// FirstOfMonth первое число месяца даты
func (d Date) FirstOfMonth() Date {
	return NewDate(d.Year(), d.Month(), 1)
}

// DaysInMonth количество дней в месяце даты
func (d Date) DaysInMonth() int {
	return daysIn(d.Year(), d.Month())
}

// Compare возвращает -1, 0 или +1
func (d Date) Compare(other Date) int {
	return d.t.Compare(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

func (d Date) After(other Date) bool {
	return d.t.After(other.t)
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// SameMonth проверяет, что обе даты в одном месяце одного года
func (d Date) SameMonth(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month()
}

// Time возвращает полночь даты в UTC
func (d Date) Time() time.Time {
	return d.t
}

// In возвращает полночь даты в указанной локации
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
}

func (d Date) Format(layout string) string {
	return d.t.Format(layout)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

// MarshalJSON сериализует дату как "YYYY-MM-DD"
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON разбирает "YYYY-MM-DD" или RFC 3339
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan реализует sql.Scanner (колонки DATE приходят как time.Time)
func (d *Date) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = Date{}
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		parsed, err := ParseDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into Date", ErrInvalidDate, value)
	}
}

// Value реализует driver.Valuer
func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
