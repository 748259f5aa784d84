package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате строки времени
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString тип для хранения времени в формате "HH:MM" (wall-clock, без даты)
// Используется для времени начала и конца занятий
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString создает TimeString из строки с валидацией
// Принимает форматы "HH:MM" и "HH:MM:SS" (секунды отбрасываются) —
// PostgreSQL возвращает колонки типа TIME с секундами
func NewTimeStringFromString(s string) (TimeString, error) {
	normalized, err := normalize(s)
	if err != nil {
		return "", err
	}
	return TimeString(normalized), nil
}

// normalize приводит строку времени к каноничному виду "HH:MM"
func normalize(s string) (string, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: invalid hour in %q", ErrInvalidTimeString, s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: invalid minute in %q", ErrInvalidTimeString, s)
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет корректность формата
func (t TimeString) Validate() error {
	_, err := normalize(string(t))
	return err
}

// Hour возвращает часовую компоненту времени
func (t TimeString) Hour() (int, error) {
	normalized, err := normalize(string(t))
	if err != nil {
		return 0, err
	}
	hour, _ := strconv.Atoi(normalized[:2])
	return hour, nil
}

// minutes возвращает количество минут с начала суток
func (t TimeString) minutes() (int, error) {
	normalized, err := normalize(string(t))
	if err != nil {
		return 0, err
	}
	hour, _ := strconv.Atoi(normalized[:2])
	minute, _ := strconv.Atoi(normalized[3:])
	return hour*60 + minute, nil
}

// AddMinutes возвращает новый TimeString со сдвигом на указанное число минут
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.minutes()
	if err != nil {
		return "", err
	}

	total += m
	// Не выходим за пределы суток
	total %= 24 * 60
	if total < 0 {
		total += 24 * 60
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// Equal возвращает true, если времена совпадают с точностью до минуты
func (t TimeString) Equal(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return string(t) == string(other)
	}
	return a == b
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Колонка TIME приходит как string, []byte или time.Time в зависимости от драйвера
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}

	switch v := src.(type) {
	case string:
		normalized, err := normalize(v)
		if err != nil {
			return err
		}
		*t = TimeString(normalized)
		return nil
	case []byte:
		normalized, err := normalize(string(v))
		if err != nil {
			return err
		}
		*t = TimeString(normalized)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}
