package models

import "time"

type WithdrawalStatus string

const (
	WithdrawalPendingFee WithdrawalStatus = "pending_fee"
	WithdrawalPending    WithdrawalStatus = "pending"
	WithdrawalSuccess    WithdrawalStatus = "success"
	WithdrawalFailed     WithdrawalStatus = "failed"
	WithdrawalFailure    WithdrawalStatus = "failure"
)

// Terminal reports whether no further transition may be applied.
func (s WithdrawalStatus) Terminal() bool {
	switch s {
	case WithdrawalSuccess, WithdrawalFailed, WithdrawalFailure:
		return true
	}
	return false
}

// IsFailure covers both spellings admins have used for a rejected withdrawal.
func (s WithdrawalStatus) IsFailure() bool {
	return s == WithdrawalFailed || s == WithdrawalFailure
}

// TerminalWithdrawalStatuses lists the statuses a transition filter excludes.
var TerminalWithdrawalStatuses = []WithdrawalStatus{WithdrawalSuccess, WithdrawalFailed, WithdrawalFailure}

// Withdrawal account sources and the balance field each one debits.
const (
	AccountMain     = "mainAccount"
	AccountProfit   = "profit"
	AccountTotalWon = "totalWon"
)

// BalanceFieldFor maps a withdrawal account to the user balance it draws on.
// Unknown accounts debit nothing.
func BalanceFieldFor(account string) (string, bool) {
	switch account {
	case AccountMain:
		return "tradingBalance", true
	case AccountProfit:
		return "planBonus", true
	case AccountTotalWon:
		return "totalWon", true
	}
	return "", false
}

type WithdrawalEntry struct {
	ID                string           `json:"id" bson:"id"`
	DateAdded         string           `json:"dateAdded" bson:"dateAdded"`
	WithdrawMethod    string           `json:"withdrawMethod" bson:"withdrawMethod"`
	WithdrawalAccount string           `json:"withdrawalAccount" bson:"withdrawalAccount"`
	Amount            float64          `json:"amount" bson:"amount"`
	TransactionStatus WithdrawalStatus `json:"transactionStatus" bson:"transactionStatus"`
	WithdrawalFee     float64          `json:"withdrawalFee" bson:"withdrawalFee"`
	FeePaid           bool             `json:"feePaid" bson:"feePaid"`
	FeePaymentMethod  string           `json:"feePaymentMethod,omitempty" bson:"feePaymentMethod,omitempty"`
	FeeSubmittedAt    *time.Time       `json:"feeSubmittedAt,omitempty" bson:"feeSubmittedAt,omitempty"`
}
