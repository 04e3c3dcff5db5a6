package matching

import (
	"testing"

	"github.com/stretchr/testify/require"

	"secret-santa-service/internal/domain"
)

func TestVerify(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}
	cases := []struct {
		name       string
		assignment Assignment
		wantErr    bool
	}{
		{name: "four cycle", assignment: Assignment{"A": "B", "B": "C", "C": "D", "D": "A"}},
		{name: "fixed point", assignment: Assignment{"A": "A", "B": "C", "C": "D", "D": "B"}, wantErr: true},
		{name: "two cycle", assignment: Assignment{"A": "B", "B": "A", "C": "D", "D": "C"}, wantErr: true},
		{name: "missing donor", assignment: Assignment{"A": "B", "B": "C", "C": "A"}, wantErr: true},
		{name: "foreign recipient", assignment: Assignment{"A": "B", "B": "C", "C": "D", "D": "X"}, wantErr: true},
		{name: "duplicate recipient", assignment: Assignment{"A": "C", "B": "C", "C": "D", "D": "A"}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Verify(ids, tc.assignment)
			if tc.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidAssignment)
				return
			}
			require.NoError(t, err)
		})
	}
}
