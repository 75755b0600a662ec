package service

import "errors"

// Errors returned to API clients verbatim.
var (
	ErrMissingFields       = errors.New("Missing required fields")
	ErrInvalidAmount       = errors.New("Invalid amount")
	ErrUserNotFound        = errors.New("User not found")
	ErrKYCRequired         = errors.New("KYC verification required before withdrawal. Please complete KYC verification first.")
	ErrWithdrawalNotFound  = errors.New("Withdrawal record not found")
	ErrWithdrawalFinalized = errors.New("Withdrawal has already been finalized")
	ErrFeeNotDue           = errors.New("Withdrawal is not awaiting a fee payment")
	ErrFeeMismatch         = errors.New("Fee amount does not match the withdrawal fee")
	ErrInsufficientBalance = errors.New("Insufficient balance")
	ErrInvalidDecision     = errors.New("Decision must be approved or rejected")
	ErrKYCNotPending       = errors.New("No pending KYC submission")
	ErrInvalidSettings     = errors.New("Invalid settings: kycFee must be >= 0 and withdrawalFeeRate between 0 and 1")
	ErrAddressesMissing    = errors.New("Deposit addresses are not configured")
)
