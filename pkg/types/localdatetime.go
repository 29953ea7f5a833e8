package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// LocalDateTimeFormat локальный литеральный формат без зоны
const LocalDateTimeFormat = "2006-01-02T15:04:05"

var (
	// ErrInvalidLocalDateTime возвращается при некорректном формате метки времени
	ErrInvalidLocalDateTime = errors.New("types: invalid local datetime format")
)

// LocalDateTime локальная литеральная метка времени без часового пояса.
// Хранимое значение интерпретируется как настенные часы бизнеса независимо
// от зоны процесса. Вся сериализация и разбор сосредоточены здесь:
// никакой нормализации в UTC, компоненты (год, месяц, день, час, минута,
// секунда) сравниваются буквально.
type LocalDateTime struct {
	t time.Time
}

// NewLocalDateTime создает метку из компонентов настенных часов
func NewLocalDateTime(year int, month time.Month, day, hour, minute, second int) LocalDateTime {
	return LocalDateTime{t: time.Date(year, month, day, hour, minute, second, 0, time.UTC)}
}

// NewLocalDateTimeFromWallClock создает метку из компонентов произвольного time.Time,
// отбрасывая его часовой пояс
func NewLocalDateTimeFromWallClock(t time.Time) LocalDateTime {
	return NewLocalDateTime(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second())
}

// ParseLocalDateTime парсит строку "YYYY-MM-DDTHH:MM:SS".
// Хвост с зоной или миллисекундами ("...Z", "...+02:00", "....123") отбрасывается:
// значение из БД всегда читается как локальный литерал.
func ParseLocalDateTime(s string) (LocalDateTime, error) {
	if len(s) > len(LocalDateTimeFormat) {
		s = s[:len(LocalDateTimeFormat)]
	}
	// Допускаем вариант с пробелом-разделителем (формат Postgres)
	if len(s) > 10 && s[10] == ' ' {
		s = s[:10] + "T" + s[11:]
	}
	parsed, err := time.Parse(LocalDateTimeFormat, s)
	if err != nil {
		return LocalDateTime{}, fmt.Errorf("%w: %q", ErrInvalidLocalDateTime, s)
	}
	return LocalDateTime{t: parsed}, nil
}

// IsZero возвращает true, если значение не задано
func (d LocalDateTime) IsZero() bool {
	return d.t.IsZero()
}

// String возвращает локальный литерал "YYYY-MM-DDTHH:MM:SS"
func (d LocalDateTime) String() string {
	return d.t.Format(LocalDateTimeFormat)
}

// Date возвращает компоненты даты
func (d LocalDateTime) Date() (int, time.Month, int) {
	return d.t.Date()
}

// Weekday возвращает день недели локального календарного дня
func (d LocalDateTime) Weekday() time.Weekday {
	return d.t.Weekday()
}

// Hour возвращает час настенных часов
func (d LocalDateTime) Hour() int {
	return d.t.Hour()
}

// Minute возвращает минуту настенных часов
func (d LocalDateTime) Minute() int {
	return d.t.Minute()
}

// TimeString возвращает время дня "HH:MM"
func (d LocalDateTime) TimeString() TimeString {
	return NewTimeString(d.t)
}

// AddMinutes возвращает метку, сдвинутую на minutes минут вперед
func (d LocalDateTime) AddMinutes(minutes int) LocalDateTime {
	return LocalDateTime{t: d.t.Add(time.Duration(minutes) * time.Minute)}
}

// AddDays возвращает метку, сдвинутую на days дней вперед
func (d LocalDateTime) AddDays(days int) LocalDateTime {
	return LocalDateTime{t: d.t.AddDate(0, 0, days)}
}

// Before возвращает true, если d строго раньше other
func (d LocalDateTime) Before(other LocalDateTime) bool {
	return d.t.Before(other.t)
}

// After возвращает true, если d строго позже other
func (d LocalDateTime) After(other LocalDateTime) bool {
	return d.t.After(other.t)
}

// Equal возвращает true при покомпонентном равенстве
func (d LocalDateTime) Equal(other LocalDateTime) bool {
	return d.t.Equal(other.t)
}

// Value реализует driver.Valuer для записи в БД
func (d LocalDateTime) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.String(), nil
}

// Scan реализует sql.Scanner для чтения из БД
// lib/pq возвращает TIMESTAMP (без зоны) как time.Time в UTC - компоненты
// при этом совпадают с записанным литералом
func (d *LocalDateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = LocalDateTime{}
		return nil
	case time.Time:
		*d = NewLocalDateTimeFromWallClock(v)
		return nil
	case string:
		parsed, err := ParseLocalDateTime(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		parsed, err := ParseLocalDateTime(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidLocalDateTime, src)
	}
}
