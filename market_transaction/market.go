package market_transaction

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrMarketAlreadyExists = errors.New("market already exists for this seller and mint pair")
	ErrMarketNotFound      = errors.New("market not found")
	ErrMarketNotActive     = errors.New("market isn't active")
	ErrMarketDepleted      = errors.New("market is empty")
	ErrFractionalMint      = errors.New("market mints must have zero decimals")
	ErrPriceOverflow       = errors.New("total price overflows uint64")
)

// Market is the persistent record of one seller/mint-pair escrow market.
// Its address doubles as the vault authority; the vault's item balance is
// the only record of remaining inventory.
type Market struct {
	Address string `json:"address" gorm:"primarykey"`
	Active  bool   `json:"active"`
	Price   uint64 `json:"price"`

	Created time.Time `json:"created"`
}

func GormAutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Market{},
	)
}
