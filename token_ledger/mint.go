package token_ledger

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type CreateMint interface {
	Create(id string, name string, decimals uint8) error
}

type createMintImpl struct {
	tx *gorm.DB
}

// Create implements CreateMint.
func (c *createMintImpl) Create(id string, name string, decimals uint8) error {
	mint := Mint{
		ID:       id,
		Name:     name,
		Decimals: decimals,
		Created:  time.Now(),
	}

	err := c.tx.Create(&mint).Error
	return err
}

func NewCreateMint(tx *gorm.DB) CreateMint {
	return &createMintImpl{
		tx: tx,
	}
}

// GetMint fetches a mint by its identity.
func GetMint(tx *gorm.DB, id string) (*Mint, error) {
	var mint Mint
	err := tx.Model(&Mint{}).Where("id = ?", id).First(&mint).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMintNotFound
		}
		return nil, err
	}

	return &mint, nil
}
