package model

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrAccountDisabled     = errors.New("account is disabled, contact admin")
	ErrRoleMismatch        = errors.New("role not permitted for this portal")
	ErrDuplicateSubmission = errors.New("update already submitted for this date")
	ErrNoDataForPeriod     = errors.New("no updates for this user in the selected month")
	ErrNotFound            = errors.New("record not found")
	ErrForbidden           = errors.New("not allowed")
	ErrEmailTaken          = errors.New("account already exists with this email")
)
