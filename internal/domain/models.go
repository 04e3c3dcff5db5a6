package domain

import "time"

// MinParticipants минимальный размер состава, при котором возможна жеребьёвка
// без подарков самому себе и без взаимных пар.
const MinParticipants = 3

// Game описывает игру «Тайный Санта».
type Game struct {
	ID          string     `json:"game_id"`
	Name        string     `json:"name"`
	ImageURL    string     `json:"image_url"`
	Text        string     `json:"text"`
	Triggered   bool       `json:"triggered"`
	TriggeredAt *time.Time `json:"triggered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Participant представляет зарегистрированного участника игры.
type Participant struct {
	ID        string    `json:"participant_id"`
	GameID    string    `json:"game_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Wishes    string    `json:"wishes"`
	CreatedAt time.Time `json:"created_at"`
}

// GameDetails игра вместе с текущим составом.
type GameDetails struct {
	Game         Game          `json:"game"`
	Participants []Participant `json:"participants"`
}

// Pair ребро распределения: даритель -> получатель.
type Pair struct {
	DonorID     string `json:"donor_id"`
	RecipientID string `json:"recipient_id"`
}

// Pairing развёрнутая пара с данными обоих участников.
type Pairing struct {
	GameID    string      `json:"game_id"`
	Donor     Participant `json:"donor"`
	Recipient Participant `json:"recipient"`
}

// ParticipantView данные для личной страницы участника.
type ParticipantView struct {
	Participant Participant  `json:"participant"`
	Recipient   *Participant `json:"recipient,omitempty"`
}

// TriggerOutcome результат вызова жеребьёвки.
type TriggerOutcome string

const (
	TriggerOutcomeAssigned       TriggerOutcome = "ASSIGNED"
	TriggerOutcomeNotified       TriggerOutcome = "NOTIFIED"
	TriggerOutcomeNotEnoughUsers TriggerOutcome = "NOT_ENOUGH_PARTICIPANTS"
)

// TriggerResult сводка по выполненной жеребьёвке или рассылке.
type TriggerResult struct {
	GameID   string         `json:"game_id"`
	Outcome  TriggerOutcome `json:"outcome"`
	Pairs    int            `json:"pairs"`
	Notified int            `json:"notified"`
	Failed   int            `json:"failed"`
}

// NotificationStatus статус отправки письма участнику.
type NotificationStatus string

const (
	NotificationStatusSent   NotificationStatus = "SENT"
	NotificationStatusFailed NotificationStatus = "FAILED"
)
