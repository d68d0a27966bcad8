package token_ledger_test

import (
	"errors"
	"testing"

	"github.com/pdcgo/rogueswap/token_ledger"
	"github.com/pdcgo/shared/pkg/moretest"
	"github.com/pdcgo/shared/pkg/moretest/moretest_mock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTransfer(t *testing.T) {
	var db gorm.DB

	var migrate moretest.SetupFunc = func(t *testing.T) func() error {
		err := token_ledger.GormAutoMigrate(&db)
		assert.Nil(t, err)
		return nil
	}

	var seed moretest.SetupFunc = func(t *testing.T) func() error {
		err := token_ledger.NewCreateMint(&db).Create("gold", "Gold", 0)
		assert.Nil(t, err)

		holdings := []*token_ledger.Holding{
			{
				Owner:   "alice",
				MintID:  "gold",
				Balance: 100,
			},
			{
				Owner:   "bob",
				MintID:  "gold",
				Balance: 5,
			},
		}

		err = db.Save(&holdings).Error
		assert.Nil(t, err)
		return nil
	}

	moretest.Suite(t, "testing ledger transfer",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			migrate,
			seed,
		},
		func(t *testing.T) {
			t.Run("testing successful transfer", func(t *testing.T) {
				err := db.Transaction(func(tx *gorm.DB) error {
					return token_ledger.
						NewLedgerService(tx).
						Transfer().
						From("alice", "gold").
						To("bob", "gold").
						Authority("alice").
						Amount(30).
						Commit().
						Err()
				})

				assert.Nil(t, err)

				aliceBalance, err := token_ledger.Balance(&db, "alice", "gold")
				assert.Nil(t, err)
				assert.Equal(t, uint64(70), aliceBalance)

				bobBalance, err := token_ledger.Balance(&db, "bob", "gold")
				assert.Nil(t, err)
				assert.Equal(t, uint64(35), bobBalance)

				t.Run("testing transfer journal", func(t *testing.T) {
					var records []*token_ledger.Transfer

					err := db.
						Model(&token_ledger.Transfer{}).
						Find(&records).
						Error
					assert.Nil(t, err)

					assert.Len(t, records, 1)
					assert.NotEmpty(t, records[0].RefID)
					assert.Equal(t, uint64(30), records[0].Amount)
					assert.Equal(t, "gold", records[0].MintID)
				})
			})

			t.Run("testing insufficient balance", func(t *testing.T) {
				err := db.Transaction(func(tx *gorm.DB) error {
					return token_ledger.
						NewTransfer(tx).
						From("bob", "gold").
						To("alice", "gold").
						Authority("bob").
						Amount(9000).
						Commit().
						Err()
				})

				var insufficient *token_ledger.ErrInsufficientBalance
				assert.ErrorAs(t, err, &insufficient)
				assert.Equal(t, uint64(35), insufficient.Have)
				assert.Equal(t, uint64(9000), insufficient.Need)

				bobBalance, err := token_ledger.Balance(&db, "bob", "gold")
				assert.Nil(t, err)
				assert.Equal(t, uint64(35), bobBalance)
			})

			t.Run("testing wrong authority", func(t *testing.T) {
				err := db.Transaction(func(tx *gorm.DB) error {
					return token_ledger.
						NewTransfer(tx).
						From("alice", "gold").
						To("bob", "gold").
						Authority("bob").
						Amount(1).
						Commit().
						Err()
				})

				assert.ErrorIs(t, err, token_ledger.ErrUnauthorized)

				aliceBalance, err := token_ledger.Balance(&db, "alice", "gold")
				assert.Nil(t, err)
				assert.Equal(t, uint64(70), aliceBalance)
			})

			t.Run("testing missing source holding", func(t *testing.T) {
				err := db.Transaction(func(tx *gorm.DB) error {
					return token_ledger.
						NewTransfer(tx).
						From("carol", "gold").
						To("bob", "gold").
						Authority("carol").
						Amount(1).
						Commit().
						Err()
				})

				assert.ErrorIs(t, err, token_ledger.ErrHoldingNotFound)
			})

			t.Run("testing zero amount", func(t *testing.T) {
				err := db.Transaction(func(tx *gorm.DB) error {
					return token_ledger.
						NewTransfer(tx).
						From("alice", "gold").
						To("bob", "gold").
						Authority("alice").
						Amount(0).
						Commit().
						Err()
				})

				assert.ErrorIs(t, err, token_ledger.ErrZeroAmount)
			})

			t.Run("testing self transfer keeps balance", func(t *testing.T) {
				err := db.Transaction(func(tx *gorm.DB) error {
					return token_ledger.
						NewTransfer(tx).
						From("alice", "gold").
						To("alice", "gold").
						Authority("alice").
						Amount(30).
						Commit().
						Err()
				})

				assert.Nil(t, err)

				aliceBalance, err := token_ledger.Balance(&db, "alice", "gold")
				assert.Nil(t, err)
				assert.Equal(t, uint64(70), aliceBalance)
			})

			t.Run("testing self transfer over balance", func(t *testing.T) {
				err := db.Transaction(func(tx *gorm.DB) error {
					return token_ledger.
						NewTransfer(tx).
						From("alice", "gold").
						To("alice", "gold").
						Authority("alice").
						Amount(9000).
						Commit().
						Err()
				})

				var insufficient *token_ledger.ErrInsufficientBalance
				assert.ErrorAs(t, err, &insufficient)

				aliceBalance, err := token_ledger.Balance(&db, "alice", "gold")
				assert.Nil(t, err)
				assert.Equal(t, uint64(70), aliceBalance)
			})

			t.Run("testing incomplete transfer", func(t *testing.T) {
				err := db.Transaction(func(tx *gorm.DB) error {
					return token_ledger.
						NewTransfer(tx).
						From("alice", "gold").
						Amount(1).
						Commit().
						Err()
				})

				assert.ErrorIs(t, err, token_ledger.ErrTransferIncomplete)
			})
		},
	)
}

func TestBalanceMissingHolding(t *testing.T) {
	var db gorm.DB

	moretest.Suite(t, "testing balance of unknown owner",
		moretest.SetupListFunc{
			moretest_mock.MockSqliteDatabase(&db),
			func(t *testing.T) func() error {
				err := token_ledger.GormAutoMigrate(&db)
				assert.Nil(t, err)
				return nil
			},
		},
		func(t *testing.T) {
			balance, err := token_ledger.Balance(&db, "nobody", "gold")
			assert.Nil(t, err)
			assert.Equal(t, uint64(0), balance)

			_, err = token_ledger.GetMint(&db, "gold")
			assert.True(t, errors.Is(err, token_ledger.ErrMintNotFound))
		},
	)
}
