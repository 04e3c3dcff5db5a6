package matching

import (
	"fmt"

	"secret-santa-service/internal/domain"
)

// Verify проверяет, что assignment является перестановкой состава
// без неподвижных точек и без циклов длины 2.
func Verify(roster []string, assignment Assignment) error {
	if len(assignment) != len(roster) {
		return fmt.Errorf("%w: %d donors for %d participants", domain.ErrInvalidAssignment, len(assignment), len(roster))
	}

	members := make(map[string]struct{}, len(roster))
	for _, id := range roster {
		members[id] = struct{}{}
	}

	received := make(map[string]struct{}, len(roster))
	for _, donor := range roster {
		recipient, ok := assignment[donor]
		if !ok {
			return fmt.Errorf("%w: donor %s has no recipient", domain.ErrInvalidAssignment, donor)
		}
		if _, ok := members[recipient]; !ok {
			return fmt.Errorf("%w: recipient %s is not in roster", domain.ErrInvalidAssignment, recipient)
		}
		if recipient == donor {
			return fmt.Errorf("%w: %s gives to self", domain.ErrInvalidAssignment, donor)
		}
		if assignment[recipient] == donor {
			return fmt.Errorf("%w: %s and %s give to each other", domain.ErrInvalidAssignment, donor, recipient)
		}
		if _, dup := received[recipient]; dup {
			return fmt.Errorf("%w: %s receives twice", domain.ErrInvalidAssignment, recipient)
		}
		received[recipient] = struct{}{}
	}
	return nil
}
