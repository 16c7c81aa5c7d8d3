package domain

import "errors"

// Domain errors
var (
	// Player errors
	ErrInvalidPlayer   = errors.New("invalid player")
	ErrInvalidPosition = errors.New("invalid position")
	ErrPlayerExists    = errors.New("player already exists")

	// Roster errors
	ErrNotEnoughPlayers  = errors.New("not enough players to make a team")
	ErrJerseyNumberTaken = errors.New("jersey number already assigned")

	// Team errors
	ErrTeamNotFound       = errors.New("team not found")
	ErrTeamExists         = errors.New("team already exists")
	ErrTeamAlreadyCreated = errors.New("team has been created, players can't be added")
	ErrTeamNotCreated     = errors.New("team has not been created yet")

	// General errors
	ErrInvalidInput  = errors.New("invalid input")
	ErrInternalError = errors.New("internal server error")
)

// ErrorCode represents API error codes
type ErrorCode string

const (
	CodeInvalidPlayer    ErrorCode = "INVALID_PLAYER"
	CodePlayerExists     ErrorCode = "PLAYER_EXISTS"
	CodeNotEnoughPlayers ErrorCode = "NOT_ENOUGH_PLAYERS"
	CodeTeamExists       ErrorCode = "TEAM_EXISTS"
	CodeTeamCreated      ErrorCode = "TEAM_CREATED"
	CodeTeamNotCreated   ErrorCode = "TEAM_NOT_CREATED"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeBadRequest       ErrorCode = "BAD_REQUEST"
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a structured error response
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Error implements error interface
func (e *APIError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// NewAPIError creates a new API error
func NewAPIError(code ErrorCode, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// ToAPIError converts domain errors to API errors
func ToAPIError(err error) *APIError {
	switch {
	case errors.Is(err, ErrInvalidPlayer):
		return NewAPIError(CodeInvalidPlayer, err.Error())
	case errors.Is(err, ErrPlayerExists):
		return NewAPIError(CodePlayerExists, err.Error())
	case errors.Is(err, ErrNotEnoughPlayers):
		return NewAPIError(CodeNotEnoughPlayers, err.Error())
	case errors.Is(err, ErrTeamExists):
		return NewAPIError(CodeTeamExists, err.Error())
	case errors.Is(err, ErrTeamAlreadyCreated):
		return NewAPIError(CodeTeamCreated, err.Error())
	case errors.Is(err, ErrTeamNotCreated):
		return NewAPIError(CodeTeamNotCreated, err.Error())
	case errors.Is(err, ErrTeamNotFound):
		return NewAPIError(CodeNotFound, err.Error())
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidPosition):
		return NewAPIError(CodeBadRequest, err.Error())
	default:
		return NewAPIError(CodeInternalError, "internal server error")
	}
}
