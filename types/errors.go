package types

import (
	"errors"

	"github.com/nicolasparada/go-errs"
)

var (
	ErrRoomNotFound        = errs.NotFoundError("room not found")
	ErrParticipantNotFound = errs.NotFoundError("room or participant not found")
	ErrUserAlreadyInRoom   = errs.ConflictError("user already in room")
	ErrRoomCodeTaken       = errs.ConflictError("room code taken")

	// ErrStoreUnavailable wraps connectivity failures of any room store.
	ErrStoreUnavailable = errors.New("store unavailable")
)
