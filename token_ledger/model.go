package token_ledger

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	ErrHoldingNotFound = errors.New("holding not found")
	ErrMintNotFound    = errors.New("mint not found")
	ErrUnauthorized    = errors.New("authority does not own source holding")
	ErrZeroAmount      = errors.New("transfer amount is zero")
)

type ErrInsufficientBalance struct {
	HoldingID uint   `json:"holding_id"`
	Have      uint64 `json:"have"`
	Need      uint64 `json:"need"`
}

// Error implements error.
func (e *ErrInsufficientBalance) Error() string {
	raw, _ := json.Marshal(e)
	return "insufficient balance" + string(raw)
}

// Mint is the identity of one fungible asset. Quantities of a mint with
// Decimals == 0 are whole units only.
type Mint struct {
	ID       string `json:"id" gorm:"primarykey"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`

	Created time.Time `json:"created"`
}

// Holding tracks one principal's balance of one mint. A principal has at
// most one holding per mint.
type Holding struct {
	ID      uint   `json:"id" gorm:"primarykey"`
	Owner   string `json:"owner" gorm:"index:owner_mint,unique"`
	MintID  string `json:"mint_id" gorm:"index:owner_mint,unique"`
	Balance uint64 `json:"balance"`

	Created time.Time `json:"created"`

	Mint *Mint `json:"mint"`
}

// Transfer is the journal row written for every applied movement.
type Transfer struct {
	ID     uint   `json:"id" gorm:"primarykey"`
	RefID  string `json:"ref_id"`
	FromID uint   `json:"from_id"`
	ToID   uint   `json:"to_id"`
	MintID string `json:"mint_id"`
	Amount uint64 `json:"amount"`

	Created time.Time `json:"created"`
}
