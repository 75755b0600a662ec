package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotMatched is returned by conditional updates whose filter matched no
// document: the owner is gone or the sub-entity is no longer in the
// required state.
var ErrNotMatched = errors.New("no document matched the update condition")

type UserRepository interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	AppendWithdrawal(ctx context.Context, email string, entry models.WithdrawalEntry) (*models.User, error)
	ApplyWithdrawalTransition(ctx context.Context, email string, t models.WithdrawalTransition) error
	SubmitWithdrawalFee(ctx context.Context, email, withdrawalID, method string, at time.Time) error
	ConfirmWithdrawalFee(ctx context.Context, email, withdrawalID string) error
	PurchasePlan(ctx context.Context, email string, entry models.InvestmentEntry) error
	UpdateProfile(ctx context.Context, email string, update *models.ProfileUpdate) (*models.User, error)
	SubmitKYC(ctx context.Context, email string, data *models.KYCData, fee float64) error
	ReviewKYC(ctx context.Context, email string, status models.KYCStatus, n models.Notification) error
}

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(client *mongo.Client, dbName, collectionName string) UserRepository {
	collection := client.Database(dbName).Collection(collectionName)
	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) AppendWithdrawal(ctx context.Context, email string, entry models.WithdrawalEntry) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"email": email}, bson.M{
		"$push": bson.M{"withdrawalHistory": entry},
	}, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotMatched
	}
	if err != nil {
		return nil, fmt.Errorf("failed to append withdrawal: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) ApplyWithdrawalTransition(ctx context.Context, email string, t models.WithdrawalTransition) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, withdrawalTransitionFilter(email, t.TransactionID), withdrawalTransitionUpdate(t))
	if err != nil {
		return fmt.Errorf("failed to update withdrawal status: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotMatched
	}
	return nil
}

func (r *MongoUserRepository) SubmitWithdrawalFee(ctx context.Context, email, withdrawalID, method string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"withdrawalHistory.$.feePaymentMethod": method,
			"withdrawalHistory.$.feeSubmittedAt":   at,
		},
	}
	result, err := r.collection.UpdateOne(ctx, withdrawalInStatusFilter(email, withdrawalID, models.WithdrawalPendingFee), update)
	if err != nil {
		return fmt.Errorf("failed to record fee payment: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotMatched
	}
	return nil
}

func (r *MongoUserRepository) ConfirmWithdrawalFee(ctx context.Context, email, withdrawalID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"withdrawalHistory.$.feePaid":           true,
			"withdrawalHistory.$.transactionStatus": models.WithdrawalPending,
		},
	}
	result, err := r.collection.UpdateOne(ctx, withdrawalInStatusFilter(email, withdrawalID, models.WithdrawalPendingFee), update)
	if err != nil {
		return fmt.Errorf("failed to confirm fee payment: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotMatched
	}
	return nil
}

func (r *MongoUserRepository) PurchasePlan(ctx context.Context, email string, entry models.InvestmentEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"email": email, "tradingBalance": bson.M{"$gte": entry.Amount}}
	result, err := r.collection.UpdateOne(ctx, filter, purchasePlanPipeline(entry))
	if err != nil {
		return fmt.Errorf("failed to purchase plan: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotMatched
	}
	return nil
}

func (r *MongoUserRepository) UpdateProfile(ctx context.Context, email string, update *models.ProfileUpdate) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var user models.User
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"email": email}, bson.M{"$set": update}, opts).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

func (r *MongoUserRepository) SubmitKYC(ctx context.Context, email string, data *models.KYCData, fee float64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"kycData":    data,
			"kycFee":     fee,
			"kycStatus":  models.KYCStatusPending,
			"kycFeePaid": false,
			"isVerified": false,
		},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return fmt.Errorf("failed to save kyc data: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotMatched
	}
	return nil
}

func (r *MongoUserRepository) ReviewKYC(ctx context.Context, email string, status models.KYCStatus, n models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"kycStatus":           status,
			"isVerified":          status == models.KYCStatusApproved,
			"isReadNotifications": false,
		},
		"$push": bson.M{"notifications": n},
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"email": email, "kycStatus": models.KYCStatusPending}, update)
	if err != nil {
		return fmt.Errorf("failed to review kyc: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotMatched
	}
	return nil
}

func withdrawalTransitionFilter(email, transactionID string) bson.M {
	return bson.M{
		"email": email,
		"withdrawalHistory": bson.M{
			"$elemMatch": bson.M{
				"id":                transactionID,
				"transactionStatus": bson.M{"$nin": models.TerminalWithdrawalStatuses},
			},
		},
	}
}

func withdrawalInStatusFilter(email, withdrawalID string, status models.WithdrawalStatus) bson.M {
	return bson.M{
		"email": email,
		"withdrawalHistory": bson.M{
			"$elemMatch": bson.M{"id": withdrawalID, "transactionStatus": status},
		},
	}
}

// withdrawalTransitionUpdate builds the single update document applied by
// ApplyWithdrawalTransition. The positional operator targets the entry
// matched by withdrawalTransitionFilter.
func withdrawalTransitionUpdate(t models.WithdrawalTransition) bson.M {
	set := bson.M{"withdrawalHistory.$.transactionStatus": t.NewStatus}
	update := bson.M{"$set": set}

	if t.NewStatus == models.WithdrawalSuccess {
		inc := bson.M{"totalWithdrawn": t.Amount}
		if t.BalanceField != "" {
			inc[t.BalanceField] = -t.Amount
		}
		update["$inc"] = inc
	}

	if t.Notification != nil {
		set["isReadNotifications"] = false
		update["$push"] = bson.M{"notifications": *t.Notification}
	}
	return update
}

// purchasePlanPipeline deactivates every Activated package, appends entry and
// moves entry.Amount from tradingBalance to investmentBalance in one write.
func purchasePlanPipeline(entry models.InvestmentEntry) mongo.Pipeline {
	deactivated := bson.D{{Key: "$map", Value: bson.D{
		{Key: "input", Value: bson.D{{Key: "$ifNull", Value: bson.A{"$mainInvestmentPackage", bson.A{}}}}},
		{Key: "as", Value: "pkg"},
		{Key: "in", Value: bson.D{{Key: "$mergeObjects", Value: bson.A{
			"$$pkg",
			bson.D{{Key: "status", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$eq", Value: bson.A{"$$pkg.status", string(models.PackageActivated)}}},
				string(models.PackageDeactivated),
				"$$pkg.status",
			}}}}},
		}}}},
	}}}

	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "tradingBalance", Value: bson.D{{Key: "$subtract", Value: bson.A{"$tradingBalance", entry.Amount}}}},
			{Key: "investmentBalance", Value: bson.D{{Key: "$add", Value: bson.A{
				bson.D{{Key: "$ifNull", Value: bson.A{"$investmentBalance", 0}}},
				entry.Amount,
			}}}},
			{Key: "investmentPackage", Value: bson.D{{Key: "$literal", Value: entry.Plan}}},
			{Key: "mainInvestmentPackage", Value: bson.D{{Key: "$concatArrays", Value: bson.A{
				deactivated,
				bson.A{bson.D{{Key: "$literal", Value: entry}}},
			}}}},
		}}},
	}
}
