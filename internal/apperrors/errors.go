package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingParty indicates that a third party, sender or receiver name was
// required for the requested posting but was blank.
var ErrMissingParty = errors.New("required party name is missing")

// ErrInvalidInstalment indicates a down payment outside the [0, amount] range.
var ErrInvalidInstalment = errors.New("down payment must be between zero and the total amount")

// ErrThirdPartyUpdateFailed indicates the journal entries were committed but
// the follow-up third-party balance upsert did not succeed. The ledger and the
// third-party balance are out of sync until the balance is corrected.
var ErrThirdPartyUpdateFailed = errors.New("third party balance update failed after ledger write")
