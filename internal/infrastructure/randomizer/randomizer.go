package randomizer

import (
	"math/rand"
	"sync"
	"time"
)

type randomizerImpl struct {
	mu  sync.Mutex // Защищает доступ к генератору случайных чисел
	rnd *rand.Rand
}

// New создаёт потокобезопасный randomizer на основе math/rand.
// Использует псевдослучайный генератор, что подходит для бизнес-логики (жеребьёвка партнёров).
func New() Randomizer {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed создаёт randomizer с фиксированным зерном.
// Одинаковое зерно даёт одинаковую последовательность, что используется в тестах и при воспроизведении жеребьёвки.
func NewWithSeed(seed int64) Randomizer {
	return &randomizerImpl{
		rnd: rand.New(rand.NewSource(seed)), // #nosec G404
	}
}

// Intn возвращает равномерно распределённое число из [0, n).
// Для n <= 1 всегда возвращает 0, не расходуя генератор.
func (r *randomizerImpl) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}
