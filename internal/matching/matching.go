package matching

import (
	"fmt"

	"secret-santa-service/internal/domain"
)

// DefaultMaxAttempts количество полных перезапусков жадного построения до отказа.
const DefaultMaxAttempts = 100

// Source источник случайности, внедряемый снаружи для воспроизводимости.
type Source interface {
	Intn(n int) int
}

// Assignment отображение даритель -> получатель.
type Assignment map[string]string

// Pairs возвращает пары в порядке переданного состава.
func (a Assignment) Pairs(order []string) []domain.Pair {
	pairs := make([]domain.Pair, 0, len(a))
	for _, donor := range order {
		recipient, ok := a[donor]
		if !ok {
			continue
		}
		pairs = append(pairs, domain.Pair{DonorID: donor, RecipientID: recipient})
	}
	return pairs
}

type options struct {
	maxAttempts int
	observer    func(attempt int, err error)
}

// Option настраивает построение распределения.
type Option func(*options)

// WithMaxAttempts задаёт число попыток; значения <= 0 заменяются на DefaultMaxAttempts.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxAttempts = n
		}
	}
}

// WithAttemptObserver вызывается после каждой попытки: err == nil означает успех.
func WithAttemptObserver(fn func(attempt int, err error)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// Assign строит распределение подарков для состава roster.
// Никто не дарит самому себе и ни одна пара не дарит друг другу.
// При тупике построение перезапускается целиком со свежими случайными выборами.
func Assign(roster []string, src Source, opts ...Option) (Assignment, error) {
	o := options{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&o)
	}

	if len(roster) < domain.MinParticipants {
		return nil, fmt.Errorf("%w: got %d, need at least %d", domain.ErrNotEnoughParticipants, len(roster), domain.MinParticipants)
	}
	if err := validateRoster(roster); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= o.maxAttempts; attempt++ {
		assignment, err := construct(roster, src)
		if err == nil {
			err = Verify(roster, assignment)
		}
		if o.observer != nil {
			o.observer(attempt, err)
		}
		if err == nil {
			return assignment, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", domain.ErrConstructionExhausted, o.maxAttempts, lastErr)
}

// errDeadEnd сигнализирует о пустом множестве кандидатов для очередного дарителя.
type errDeadEnd struct {
	donor string
}

func (e errDeadEnd) Error() string {
	return fmt.Sprintf("no candidates left for donor %s", e.donor)
}

// construct один жадный проход по составу.
func construct(roster []string, src Source) (Assignment, error) {
	assignment := make(Assignment, len(roster))
	givesTo := make(map[string]string, len(roster)) // получатель -> даритель
	taken := make(map[string]struct{}, len(roster))

	candidates := make([]string, 0, len(roster))
	for _, donor := range roster {
		candidates = candidates[:0]
		giver, hasGiver := givesTo[donor]
		for _, id := range roster {
			if id == donor {
				continue
			}
			if hasGiver && id == giver {
				continue
			}
			if _, ok := taken[id]; ok {
				continue
			}
			candidates = append(candidates, id)
		}
		if len(candidates) == 0 {
			return nil, errDeadEnd{donor: donor}
		}

		recipient := candidates[src.Intn(len(candidates))]
		assignment[donor] = recipient
		givesTo[recipient] = donor
		taken[recipient] = struct{}{}
	}
	return assignment, nil
}

func validateRoster(roster []string) error {
	seen := make(map[string]struct{}, len(roster))
	for i, id := range roster {
		if id == "" {
			return fmt.Errorf("%w: empty identifier at position %d", domain.ErrInvalidRoster, i)
		}
		if _, ok := seen[id]; ok {
			return fmt.Errorf("%w: duplicate identifier %s", domain.ErrInvalidRoster, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
