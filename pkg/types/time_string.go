package types

import (
	"fmt"
	"time"
)

const timeLayout = "15:04"

const minutesPerDay = 24 * 60

// TimeString время суток в формате "HH:MM"
// Используется вместо time.Time там, где дата не имеет значения
type TimeString string

// NewTimeString создает TimeString из time.Time (дата отбрасывается)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeLayout, s); err != nil {
		return "", fmt.Errorf("invalid time string format: %q", s)
	}
	return TimeString(s), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// minutes возвращает количество минут с начала суток
// Для некорректного значения возвращает -1
func (t TimeString) minutes() int {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return -1
	}
	return parsed.Hour()*60 + parsed.Minute()
}

// IsBefore проверяет, что время строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.minutes() < other.minutes()
}

// IsAfter проверяет, что время строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.minutes() > other.minutes()
}

// Equal проверяет совпадение времени (с учетом нормализации формата)
func (t TimeString) Equal(other TimeString) bool {
	return t.minutes() == other.minutes()
}

// AddMinutes возвращает время через m минут
// Возвращает ошибку при выходе за границы суток
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total := t.minutes()
	if total < 0 {
		return "", fmt.Errorf("invalid time string format: %q", string(t))
	}

	total += m
	if total < 0 || total >= minutesPerDay {
		return "", fmt.Errorf("time %q + %d minutes is out of day range", string(t), m)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}
