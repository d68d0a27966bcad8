package token_ledger

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// EnsureHolding returns the holding of mint for owner, creating an empty
// one when the owner has none yet.
func EnsureHolding(tx *gorm.DB, owner string, mint string) (*Holding, error) {
	var holding Holding
	var err error

	err = tx.
		Model(&Holding{}).
		Where("owner = ?", owner).
		Where("mint_id = ?", mint).
		First(&holding).
		Error

	if err == nil {
		return &holding, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	holding = Holding{
		Owner:   owner,
		MintID:  mint,
		Balance: 0,
		Created: time.Now(),
	}

	err = tx.Save(&holding).Error
	if err != nil {
		return nil, err
	}

	return &holding, nil
}

func getHolding(tx *gorm.DB, owner string, mint string) (*Holding, error) {
	var holding Holding

	err := tx.
		Model(&Holding{}).
		Where("owner = ?", owner).
		Where("mint_id = ?", mint).
		First(&holding).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHoldingNotFound
		}
		return nil, err
	}

	return &holding, nil
}

// Balance reports how many units of mint the owner holds. A missing
// holding reads as zero.
func Balance(tx *gorm.DB, owner string, mint string) (uint64, error) {
	holding, err := getHolding(tx, owner, mint)
	if err != nil {
		if errors.Is(err, ErrHoldingNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return holding.Balance, nil
}
