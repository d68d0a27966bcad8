package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pdcgo/rogueswap/database"
	"github.com/pdcgo/rogueswap/market_transaction"
	"github.com/pdcgo/rogueswap/token_ledger"
)

func main() {
	var migrate bool
	var activate bool
	var seller string
	var itemMint string
	var paymentMint string

	flag.BoolVar(&migrate, "migrate", false, "run schema migration")
	flag.BoolVar(&activate, "activate", false, "activate the market for the given triple")
	flag.StringVar(&seller, "seller", "", "seller principal")
	flag.StringVar(&itemMint, "item", "", "item mint id")
	flag.StringVar(&paymentMint, "payment", "", "payment mint id")
	flag.Parse()

	db, err := database.ConnectToProduction(4, "swapmarket")
	if err != nil {
		slog.Error(err.Error(), slog.String("process", "connecting database"))
		os.Exit(1)
	}

	if migrate {
		err = token_ledger.GormAutoMigrate(db)
		if err != nil {
			slog.Error(err.Error(), slog.String("process", "migrating token ledger"))
			os.Exit(1)
		}

		err = market_transaction.GormAutoMigrate(db)
		if err != nil {
			slog.Error(err.Error(), slog.String("process", "migrating market"))
			os.Exit(1)
		}

		slog.Info("migration complete")
	}

	if activate {
		if seller == "" || itemMint == "" || paymentMint == "" {
			slog.Error("activate needs -seller, -item and -payment")
			os.Exit(1)
		}

		address, bump := market_transaction.FindMarketAddress(seller, itemMint, paymentMint)

		active := true
		marketOps := market_transaction.NewMarketTransaction(db)
		err = marketOps.Edit(&market_transaction.EditMarketPayload{
			Seller:      seller,
			ItemMint:    itemMint,
			PaymentMint: paymentMint,
			Bump:        bump,
			Active:      &active,
		})

		if err != nil {
			slog.Error(err.Error(), slog.String("market", address))
			os.Exit(1)
		}

		slog.Info("market activated", slog.String("market", address))
	}
}
