package randomizer

// Randomizer источник случайности для жеребьёвки.
type Randomizer interface {
	Intn(n int) int
}
