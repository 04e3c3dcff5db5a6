package notifier

import (
	"context"
	"fmt"
	"strings"

	"secret-santa-service/internal/domain"
)

const subject = "Secret Santa: Auslosung"

// Message готовое к отправке письмо.
type Message struct {
	To      string
	ToName  string
	Subject string
	Body    string
}

// Sender доставляет письмо получателю.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Notification сообщает дарителю результат жеребьёвки.
type Notification struct {
	GameName  string
	Donor     domain.Participant
	Recipient domain.Participant
	// LookupURL страница, на которой даритель может снова посмотреть своего получателя.
	LookupURL string
}

// Notifier формирует письма о результатах жеребьёвки.
type Notifier struct {
	sender Sender
}

func New(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

// Notify отправляет одно письмо дарителю.
func (n *Notifier) Notify(ctx context.Context, notification Notification) error {
	if strings.TrimSpace(notification.Donor.Email) == "" {
		return fmt.Errorf("participant %s has no email", notification.Donor.ID)
	}
	return n.sender.Send(ctx, render(notification))
}

func render(notification Notification) Message {
	var body strings.Builder
	fmt.Fprintf(&body, "Hallo %s,\n\n", notification.Donor.Name)
	fmt.Fprintf(&body, "dein ausgeloster Partner ist %s.", notification.Recipient.Name)
	if wishes := strings.TrimSpace(notification.Recipient.Wishes); wishes != "" {
		fmt.Fprintf(&body, " Wunschliste: %s.", wishes)
	}
	fmt.Fprintf(&body, " Damit niemand seinen Partner vergisst, kannst du in Zukunft unter %s nachschauen, wer es ist.\n", notification.LookupURL)

	subj := subject
	if notification.GameName != "" {
		subj = subject + " (" + notification.GameName + ")"
	}
	return Message{
		To:      notification.Donor.Email,
		ToName:  notification.Donor.Name,
		Subject: subj,
		Body:    body.String(),
	}
}
