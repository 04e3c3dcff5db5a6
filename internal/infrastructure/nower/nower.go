package nower

import "time"

// precision точность timestamptz в PostgreSQL.
const precision = time.Microsecond

type systemNower struct{}

// New возвращает системные часы в UTC с точностью до микросекунды,
// чтобы сохранённое в БД время совпадало с возвращённым клиенту.
func New() Nower {
	return systemNower{}
}

func (systemNower) Now() time.Time {
	return time.Now().UTC().Truncate(precision)
}

// Fixed всегда возвращает одно и то же время.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
