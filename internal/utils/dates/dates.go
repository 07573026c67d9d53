package dates

import "time"

// DayFormat — формат календарного дня (YYYY-MM-DD)
const DayFormat = "2006-01-02"

// DayKey возвращает календарный день времени t
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay разбирает день в формате YYYY-MM-DD
func ParseDay(value string) (time.Time, error) {
	return time.Parse(DayFormat, value)
}

// SameDay проверяет, приходятся ли a и b на один календарный день
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}

// DaysBetween возвращает число календарных дней от from до to.
// Сравнение идет по границам суток, а не по прошедшим часам, чтобы время
// суток не ломало и не продлевало серию.
func DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	start := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	end := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}
