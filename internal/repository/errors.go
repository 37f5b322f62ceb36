package repository

import "errors"

var (
	// ErrActivityNotFound возвращается, если кружка с таким именем нет.
	ErrActivityNotFound = errors.New("activity not found")

	// ErrAlreadySignedUp возвращается при повторной записи того же email.
	ErrAlreadySignedUp = errors.New("participant already signed up")

	// ErrActivityFull возвращается, если свободных мест не осталось.
	ErrActivityFull = errors.New("activity is full")

	// ErrParticipantNotFound возвращается, если email не записан на кружок.
	ErrParticipantNotFound = errors.New("participant not found")
)
