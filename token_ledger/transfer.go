package token_ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrTransferIncomplete = errors.New("transfer is missing source, destination or authority")
var ErrMintMismatch = errors.New("source and destination holdings have different mints")

// TransferOp moves units of one mint between two holdings. The move is
// applied on Commit and only when the supplied authority equals the source
// holding's owner.
type TransferOp interface {
	From(owner string, mint string) TransferOp
	To(owner string, mint string) TransferOp
	Authority(principal string) TransferOp
	Amount(amount uint64) TransferOp
	Commit() TransferOp
	Err() error
}

type holdingRef struct {
	owner string
	mint  string
}

type transferOpImpl struct {
	tx        *gorm.DB
	err       error
	from      *holdingRef
	to        *holdingRef
	authority string
	amount    uint64
}

// From implements TransferOp.
func (t *transferOpImpl) From(owner string, mint string) TransferOp {
	t.from = &holdingRef{owner: owner, mint: mint}
	return t
}

// To implements TransferOp.
func (t *transferOpImpl) To(owner string, mint string) TransferOp {
	t.to = &holdingRef{owner: owner, mint: mint}
	return t
}

// Authority implements TransferOp.
func (t *transferOpImpl) Authority(principal string) TransferOp {
	t.authority = principal
	return t
}

// Amount implements TransferOp.
func (t *transferOpImpl) Amount(amount uint64) TransferOp {
	t.amount = amount
	return t
}

// Commit implements TransferOp.
func (t *transferOpImpl) Commit() TransferOp {
	if t.err != nil {
		return t
	}

	if t.from == nil || t.to == nil || t.authority == "" {
		return t.setErr(ErrTransferIncomplete)
	}

	if t.amount == 0 {
		return t.setErr(ErrZeroAmount)
	}

	if t.from.mint != t.to.mint {
		return t.setErr(ErrMintMismatch)
	}

	source, err := getHolding(t.tx, t.from.owner, t.from.mint)
	if err != nil {
		return t.setErr(err)
	}

	if t.authority != source.Owner {
		return t.setErr(ErrUnauthorized)
	}

	if source.Balance < t.amount {
		return t.setErr(&ErrInsufficientBalance{
			HoldingID: source.ID,
			Have:      source.Balance,
			Need:      t.amount,
		})
	}

	dest, err := getHolding(t.tx, t.to.owner, t.to.mint)
	if err != nil {
		return t.setErr(err)
	}

	// relative updates keep a self-transfer at net zero and make the
	// debit guard atomic under concurrent commits
	debit := t.tx.
		Model(&Holding{}).
		Where("id = ?", source.ID).
		Where("balance >= ?", t.amount).
		Update("balance", gorm.Expr("balance - ?", t.amount))

	if debit.Error != nil {
		return t.setErr(debit.Error)
	}

	if debit.RowsAffected == 0 {
		return t.setErr(&ErrInsufficientBalance{
			HoldingID: source.ID,
			Have:      source.Balance,
			Need:      t.amount,
		})
	}

	err = t.tx.
		Model(&Holding{}).
		Where("id = ?", dest.ID).
		Update("balance", gorm.Expr("balance + ?", t.amount)).
		Error

	if err != nil {
		return t.setErr(err)
	}

	record := Transfer{
		RefID:   uuid.NewString(),
		FromID:  source.ID,
		ToID:    dest.ID,
		MintID:  source.MintID,
		Amount:  t.amount,
		Created: time.Now(),
	}

	err = t.tx.Save(&record).Error
	if err != nil {
		return t.setErr(err)
	}

	return t
}

// Err implements TransferOp.
func (t *transferOpImpl) Err() error {
	return t.err
}

func (t *transferOpImpl) setErr(err error) *transferOpImpl {
	if t.err != nil {
		return t
	}

	if err != nil {
		t.err = err
	}

	return t
}

func NewTransfer(tx *gorm.DB) TransferOp {
	return &transferOpImpl{
		tx: tx,
	}
}
