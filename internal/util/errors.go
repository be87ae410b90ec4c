package util

import "errors"

var (
	ErrEmailRegistered   = errors.New("email already registered")
	ErrInvalidCredential = errors.New("invalid credentials")
	ErrChildLimitReached = errors.New("child limit reached for current plan")
	ErrPlanRequired      = errors.New("feature requires the Plus plan")
	ErrInvalidPlan       = errors.New("invalid plan")
)
