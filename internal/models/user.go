package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type KYCStatus string

const (
	KYCStatusNone     KYCStatus = ""
	KYCStatusPending  KYCStatus = "pending"
	KYCStatusApproved KYCStatus = "approved"
	KYCStatusRejected KYCStatus = "rejected"
)

// User mirrors the documents in the users collection. Field names follow the
// stored documents, which predate this service.
type User struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email         string             `json:"email" bson:"email"`
	Name          string             `json:"name" bson:"name"`
	Phone         string             `json:"phone" bson:"phone"`
	Password      string             `json:"password,omitempty" bson:"password"`
	WithdrawalPin string             `json:"withdrawalPin,omitempty" bson:"withdrawalPin,omitempty"`
	TaxCodePin    string             `json:"taxCodePin,omitempty" bson:"taxCodePin,omitempty"`

	TradingBalance    float64 `json:"tradingBalance" bson:"tradingBalance"`
	InvestmentBalance float64 `json:"investmentBalance" bson:"investmentBalance"`
	TotalDeposited    float64 `json:"totalDeposited" bson:"totalDeposited"`
	TotalWithdrawn    float64 `json:"totalWithdrawn" bson:"totalWithdrawn"`
	TotalAssets       float64 `json:"totalAssets" bson:"totalAssets"`
	TotalWon          float64 `json:"totalWon" bson:"totalWon"`
	TotalLoss         float64 `json:"totalLoss" bson:"totalLoss"`
	PlanBonus         float64 `json:"planBonus" bson:"planBonus"`
	LastProfit        float64 `json:"lastProfit" bson:"lastProfit"`
	TradingProgress   float64 `json:"tradingProgress" bson:"tradingProgress"`
	Trade             float64 `json:"trade" bson:"trade"`

	AutoTrades    bool   `json:"autoTrades" bson:"autoTrades"`
	IsVerified    bool   `json:"isVerified" bson:"isVerified"`
	Upgraded      bool   `json:"upgraded" bson:"upgraded"`
	CustomMessage string `json:"customMessage" bson:"customMessage"`

	KYCStatus  KYCStatus `json:"kycStatus" bson:"kycStatus"`
	KYCFee     float64   `json:"kycFee" bson:"kycFee"`
	KYCFeePaid bool      `json:"kycFeePaid" bson:"kycFeePaid"`
	KYCData    *KYCData  `json:"kycData,omitempty" bson:"kycData,omitempty"`

	WithdrawalHistory     []WithdrawalEntry `json:"withdrawalHistory" bson:"withdrawalHistory"`
	InvestmentPackage     string            `json:"investmentPackage" bson:"investmentPackage"`
	MainInvestmentPackage []InvestmentEntry `json:"mainInvestmentPackage" bson:"mainInvestmentPackage"`
	Notifications         []Notification    `json:"notifications" bson:"notifications"`
	IsReadNotifications   bool              `json:"isReadNotifications" bson:"isReadNotifications"`
}

// KYCEligible reports whether the user may request withdrawals.
func (u *User) KYCEligible() bool {
	return u.KYCStatus == KYCStatusApproved || u.IsVerified
}

// Withdrawal returns the history entry with the given id, or nil.
func (u *User) Withdrawal(id string) *WithdrawalEntry {
	for i := range u.WithdrawalHistory {
		if u.WithdrawalHistory[i].ID == id {
			return &u.WithdrawalHistory[i]
		}
	}
	return nil
}

// ActivePackages counts investment entries currently Activated.
func (u *User) ActivePackages() int {
	n := 0
	for _, p := range u.MainInvestmentPackage {
		if p.Status == PackageActivated {
			n++
		}
	}
	return n
}

type KYCData struct {
	PersonalDetails PersonalDetails `json:"personalDetails" bson:"personalDetails"`
	IDType          string          `json:"idType" bson:"idType"`
	FrontIDURL      string          `json:"frontIDUrl" bson:"frontIDUrl"`
	BackIDURL       string          `json:"backIDUrl" bson:"backIDUrl"`
	SubmittedAt     time.Time       `json:"submittedAt" bson:"submittedAt"`
}

type PersonalDetails struct {
	FirstName     string `json:"firstName" bson:"firstName"`
	LastName      string `json:"lastName" bson:"lastName"`
	AddressLine1  string `json:"addressLine1" bson:"addressLine1"`
	AddressLine2  string `json:"addressLine2" bson:"addressLine2"`
	City          string `json:"city" bson:"city"`
	StateProvince string `json:"stateProvince" bson:"stateProvince"`
	Country       string `json:"country" bson:"country"`
	ZipCode       string `json:"zipCode" bson:"zipCode"`
	Phone         string `json:"phone" bson:"phone"`
	SecondPhone   string `json:"secondPhone" bson:"secondPhone"`
}

type PackageStatus string

const (
	PackageActivated   PackageStatus = "Activated"
	PackageDeactivated PackageStatus = "Deactivated"
)

type InvestmentEntry struct {
	ID            string        `json:"id" bson:"id"`
	Plan          string        `json:"plan" bson:"plan"`
	InitializedAt time.Time     `json:"initializedAt" bson:"initializedAt"`
	Status        PackageStatus `json:"status" bson:"status"`
	Amount        float64       `json:"amount" bson:"amount"`
}

type Notification struct {
	ID      string `json:"id" bson:"id"`
	Method  string `json:"method" bson:"method"`
	Type    string `json:"type" bson:"type"`
	Message string `json:"message" bson:"message"`
	Date    int64  `json:"date" bson:"date"`
}
