// Command migrate seeds the deposit wallet addresses and creates the
// collection indexes.
//
//	go run ./cmd/migrate -bitcoin bc1... -tether T...
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/mehrbod2002/capitalmarket/internal/config"
	"github.com/mehrbod2002/capitalmarket/internal/logger"
	"github.com/mehrbod2002/capitalmarket/internal/models"
	"github.com/mehrbod2002/capitalmarket/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func main() {
	var addresses models.DepositAddresses
	flag.StringVar(&addresses.Bitcoin, "bitcoin", "", "Bitcoin deposit address")
	flag.StringVar(&addresses.Ethereum, "ethereum", "", "Ethereum deposit address")
	flag.StringVar(&addresses.Tether, "tether", "", "Tether (TRC20) deposit address")
	flag.StringVar(&addresses.Tron, "tron", "", "Tron deposit address")
	flag.StringVar(&addresses.Dogecoin, "dogecoin", "", "Dogecoin deposit address")
	flag.StringVar(&addresses.Binance, "binance", "", "Binance deposit address")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	zlog, err := logger.NewLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		zlog.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	if err := repository.EnsureIndexes(ctx, client.Database(cfg.MongoDB)); err != nil {
		zlog.Fatal("Failed to create indexes", zap.Error(err))
	}
	zlog.Info("Indexes ensured", zap.String("db", cfg.MongoDB))

	if addresses == (models.DepositAddresses{}) {
		zlog.Info("No addresses given, skipping address seed")
		return
	}

	addressRepo := repository.NewAddressRepository(client, cfg.MongoDB, "addresses")
	if err := addressRepo.SaveAddresses(ctx, &addresses); err != nil {
		zlog.Fatal("Failed to save addresses", zap.Error(err))
	}
	zlog.Info("Deposit addresses saved")
}
