package models

// ProfileUpdate is the field set an admin may overwrite on a user. Numeric
// fields are always written; text and flag fields only when supplied.
type ProfileUpdate struct {
	Name          *string `bson:"name,omitempty"`
	Phone         *string `bson:"phone,omitempty"`
	Password      *string `bson:"password,omitempty"`
	WithdrawalPin *string `bson:"withdrawalPin,omitempty"`
	TaxCodePin    *string `bson:"taxCodePin,omitempty"`
	AutoTrades    *bool   `bson:"autoTrades,omitempty"`
	IsVerified    *bool   `bson:"isVerified,omitempty"`
	CustomMessage *string `bson:"customMessage,omitempty"`
	Upgraded      *bool   `bson:"upgraded,omitempty"`

	TradingBalance    float64 `bson:"tradingBalance"`
	InvestmentBalance float64 `bson:"investmentBalance"`
	TotalDeposited    float64 `bson:"totalDeposited"`
	TotalWithdrawn    float64 `bson:"totalWithdrawn"`
	TotalAssets       float64 `bson:"totalAssets"`
	TotalWon          float64 `bson:"totalWon"`
	TotalLoss         float64 `bson:"totalLoss"`
	LastProfit        float64 `bson:"lastProfit"`
	PlanBonus         float64 `bson:"planBonus"`
	TradingProgress   float64 `bson:"tradingProgress"`
	Trade             float64 `bson:"trade"`
}

// WithdrawalTransition describes one admin decision on a withdrawal entry.
// BalanceField is empty when nothing is debited.
type WithdrawalTransition struct {
	TransactionID string
	NewStatus     WithdrawalStatus
	Amount        float64
	BalanceField  string
	Notification  *Notification
}
