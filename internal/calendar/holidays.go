package calendar

import "time"

// fixedHolidays государственные праздники Кореи с фиксированной датой (MM-DD)
// Лунные праздники (설날, 추석) сюда не входят: их даты определяет
// availability payload, флаг праздника для них не выставляется
var fixedHolidays = map[string]string{
	"01-01": "신정",
	"03-01": "삼일절",
	"05-05": "어린이날",
	"06-06": "현충일",
	"08-15": "광복절",
	"10-03": "개천절",
	"10-09": "한글날",
	"12-25": "성탄절",
}

// IsHoliday возвращает true для фиксированного государственного праздника
// Флаг влияет только на отображение ячейки: доступность даты
// определяется исключительно payload
func IsHoliday(d time.Time) bool {
	_, ok := fixedHolidays[d.Format("01-02")]
	return ok
}
