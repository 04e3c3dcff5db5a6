package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestBusinessCounters(t *testing.T) {
	beforeGames := testutil.ToFloat64(gamesCreated)
	IncGamesCreated()
	require.Equal(t, beforeGames+1, testutil.ToFloat64(gamesCreated))

	beforeRegistered := testutil.ToFloat64(participantsRegistered)
	IncParticipantsRegistered()
	require.Equal(t, beforeRegistered+1, testutil.ToFloat64(participantsRegistered))

	beforeTriggered := testutil.ToFloat64(gamesTriggered)
	IncGamesTriggered()
	require.Equal(t, beforeTriggered+1, testutil.ToFloat64(gamesTriggered))

	beforeDeadEnds := testutil.ToFloat64(assignmentDeadEnds)
	IncAssignmentDeadEnds()
	require.Equal(t, beforeDeadEnds+1, testutil.ToFloat64(assignmentDeadEnds))
}

func TestNotificationsCountedByStatus(t *testing.T) {
	before := testutil.ToFloat64(notifications.WithLabelValues("SENT"))
	IncNotifications("SENT")
	require.Equal(t, before+1, testutil.ToFloat64(notifications.WithLabelValues("SENT")))
}

func TestObserveAssignmentAttemptsIgnoresNonPositive(t *testing.T) {
	before := testutil.CollectAndCount(assignmentAttempts)
	ObserveAssignmentAttempts(0)
	ObserveAssignmentAttempts(2)
	require.Equal(t, before, testutil.CollectAndCount(assignmentAttempts))
}
