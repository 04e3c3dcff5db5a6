package domain

import "errors"

// Доменные ошибки, используемые для обработки бизнес-логики.
// Эти ошибки преобразуются в HTTP-ответы в слое обработчиков.
var (
	ErrGameExists            = errors.New("game already exists")                     // Возникает при попытке создать игру с уже занятым именем.
	ErrGameNotFound          = errors.New("game not found")                          // Возникает при обращении к несуществующей игре.
	ErrGameTriggered         = errors.New("game already triggered")                  // Возникает при изменении состава уже разыгранной игры.
	ErrParticipantExists     = errors.New("participant already registered")          // Возникает при повторной регистрации того же e-mail в игре.
	ErrParticipantNotFound   = errors.New("participant not found")                   // Возникает при обращении к несуществующему участнику.
	ErrPartnerNotFound       = errors.New("partner not assigned")                    // Возникает при запросе партнёра до жеребьёвки.
	ErrAlreadyTriggered      = errors.New("assignment already committed")            // Возникает, когда конкурирующий запрос уже зафиксировал жеребьёвку.
	ErrNotEnoughParticipants = errors.New("not enough participants")                 // Возникает, если в игре меньше трёх участников.
	ErrConstructionExhausted = errors.New("assignment construction exhausted")       // Возникает, когда все попытки построения распределения зашли в тупик.
	ErrInvalidRoster         = errors.New("invalid roster")                          // Возникает при пустых или повторяющихся идентификаторах участников.
	ErrInvalidAssignment     = errors.New("assignment violates pairing constraints") // Возникает, если распределение не прошло проверку ограничений.
	ErrInvalidInput          = errors.New("invalid input")                           // Возникает при некорректных входных данных.
)
