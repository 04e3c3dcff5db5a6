package nower

import "time"

// Nower источник текущего времени для репозитория; в тестах подменяется Fixed.
type Nower interface {
	Now() time.Time
}
