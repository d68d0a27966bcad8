package token_ledger

import "gorm.io/gorm"

// LedgerService is the value-transfer surface consumed by the market layer.
type LedgerService interface {
	CreateMint() CreateMint
	Transfer() TransferOp
}

type ledgerServiceImpl struct {
	tx *gorm.DB
}

// CreateMint implements LedgerService.
func (l *ledgerServiceImpl) CreateMint() CreateMint {
	return NewCreateMint(l.tx)
}

// Transfer implements LedgerService.
func (l *ledgerServiceImpl) Transfer() TransferOp {
	return NewTransfer(l.tx)
}

func NewLedgerService(tx *gorm.DB) LedgerService {
	return &ledgerServiceImpl{
		tx: tx,
	}
}
