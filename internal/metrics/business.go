package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gamesCreated = promauto.NewCounter(
		prometheusCounterOpts("games_created_total", "Total number of created games"),
	)
	participantsRegistered = promauto.NewCounter(
		prometheusCounterOpts("participants_registered_total", "Total number of registered participants"),
	)
	gamesTriggered = promauto.NewCounter(
		prometheusCounterOpts("games_triggered_total", "Total number of games with a committed assignment"),
	)
	assignmentDeadEnds = promauto.NewCounter(
		prometheusCounterOpts("assignment_dead_ends_total", "Total number of assignment attempts that hit a dead end"),
	)
	assignmentAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assignment_attempts",
			Help:      "Number of construction attempts needed per assignment",
			Buckets:   []float64{1, 2, 3, 5, 10, 25, 50, 100},
		},
	)
	notifications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Partner notifications by delivery status",
		},
		[]string{"status"},
	)
)

// IncGamesCreated увеличивает счётчик созданных игр.
func IncGamesCreated() {
	gamesCreated.Inc()
}

// IncParticipantsRegistered увеличивает счётчик регистраций.
func IncParticipantsRegistered() {
	participantsRegistered.Inc()
}

// IncGamesTriggered увеличивает счётчик проведённых жеребьёвок.
func IncGamesTriggered() {
	gamesTriggered.Inc()
}

// IncAssignmentDeadEnds увеличивает счётчик неудачных попыток построения.
func IncAssignmentDeadEnds() {
	assignmentDeadEnds.Inc()
}

// ObserveAssignmentAttempts записывает число попыток, потребовавшихся для жеребьёвки.
func ObserveAssignmentAttempts(attempts int) {
	if attempts <= 0 {
		return
	}
	assignmentAttempts.Observe(float64(attempts))
}

// IncNotifications увеличивает счётчик уведомлений с указанным статусом.
func IncNotifications(status string) {
	notifications.WithLabelValues(status).Inc()
}

func prometheusCounterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      help,
	}
}
