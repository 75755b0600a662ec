package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdminAccount struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Username         string             `json:"username" bson:"username"`
	Password         string             `json:"-" bson:"password"`
	AccountType      string             `json:"account_type" bson:"account_type"`
	RegistrationDate string             `json:"registration_date" bson:"registration_date"`
}

const SettingsID = "global"

// Settings are admin-managed values read in-process by the KYC and
// withdrawal flows.
type Settings struct {
	ID                string    `json:"-" bson:"_id"`
	KYCFee            float64   `json:"kycFee" bson:"kycFee"`
	WithdrawalFeeRate float64   `json:"withdrawalFeeRate" bson:"withdrawalFeeRate"`
	UpdatedAt         time.Time `json:"updatedAt" bson:"updatedAt"`
}

func DefaultSettings() *Settings {
	return &Settings{
		ID:                SettingsID,
		KYCFee:            25,
		WithdrawalFeeRate: 0.10,
	}
}

// DepositAddresses holds the wallet address shown for each supported coin.
type DepositAddresses struct {
	ID       primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	Bitcoin  string             `json:"Bitcoin" bson:"Bitcoin"`
	Ethereum string             `json:"Ethereum" bson:"Ethereum"`
	Tether   string             `json:"Tether" bson:"Tether"`
	Tron     string             `json:"Tron" bson:"Tron"`
	Dogecoin string             `json:"Dogecoin" bson:"Dogecoin"`
	Binance  string             `json:"Binance" bson:"Binance"`
}

// For returns the address for a payment method name as sent by the dashboard.
func (a *DepositAddresses) For(method string) string {
	switch method {
	case "Bitcoin":
		return a.Bitcoin
	case "Ethereum":
		return a.Ethereum
	case "Tether":
		return a.Tether
	case "Tron":
		return a.Tron
	case "Dogecoin":
		return a.Dogecoin
	case "Binance", "binance":
		return a.Binance
	}
	return ""
}
