package market_transaction

import (
	"errors"
	"math"
	"time"

	"github.com/pdcgo/rogueswap/token_ledger"
	"gorm.io/gorm"
)

type CreateMarketPayload struct {
	Seller       string `json:"seller"`
	ItemMint     string `json:"item_mint"`
	PaymentMint  string `json:"payment_mint"`
	Bump         uint8  `json:"bump"`
	ItemQuantity uint64 `json:"item_quantity"`
	PerItemPrice uint64 `json:"per_item_price"`
}

// EditMarketPayload patches a market. Nil fields are left untouched.
type EditMarketPayload struct {
	Seller      string  `json:"seller"`
	ItemMint    string  `json:"item_mint"`
	PaymentMint string  `json:"payment_mint"`
	Bump        uint8   `json:"bump"`
	Active      *bool   `json:"active"`
	Price       *uint64 `json:"price"`
}

type BuyItemPayload struct {
	Buyer        string `json:"buyer"`
	Seller       string `json:"seller"`
	ItemMint     string `json:"item_mint"`
	PaymentMint  string `json:"payment_mint"`
	Bump         uint8  `json:"bump"`
	ItemQuantity uint64 `json:"item_quantity"`
}

type MarketTransaction interface {
	Create(payload *CreateMarketPayload) error
	Edit(payload *EditMarketPayload) error
	Buy(payload *BuyItemPayload) error
}

type marketTransactionImpl struct {
	db *gorm.DB
}

// Create implements MarketTransaction.
func (m *marketTransactionImpl) Create(payload *CreateMarketPayload) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		var err error

		err = checkWholeUnitMint(tx, payload.ItemMint)
		if err != nil {
			return err
		}

		err = checkWholeUnitMint(tx, payload.PaymentMint)
		if err != nil {
			return err
		}

		address := DeriveMarketAddress(
			payload.Seller,
			payload.ItemMint,
			payload.PaymentMint,
			payload.Bump,
		)

		var count int64
		err = tx.
			Model(&Market{}).
			Where("address IN ?", marketAddressCandidates(
				payload.Seller,
				payload.ItemMint,
				payload.PaymentMint,
			)).
			Count(&count).
			Error

		if err != nil {
			return err
		}

		if count != 0 {
			return ErrMarketAlreadyExists
		}

		// vault custodies the items, the market address is its owner
		_, err = token_ledger.EnsureHolding(tx, address, payload.ItemMint)
		if err != nil {
			return err
		}

		// payment holding for the seller so purchases can settle later
		_, err = token_ledger.EnsureHolding(tx, payload.Seller, payload.PaymentMint)
		if err != nil {
			return err
		}

		err = token_ledger.
			NewTransfer(tx).
			From(payload.Seller, payload.ItemMint).
			To(address, payload.ItemMint).
			Authority(payload.Seller).
			Amount(payload.ItemQuantity).
			Commit().
			Err()

		if err != nil {
			return err
		}

		market := Market{
			Address: address,
			Active:  false,
			Price:   payload.PerItemPrice,
			Created: time.Now(),
		}

		return tx.Create(&market).Error
	})
}

// Edit implements MarketTransaction.
func (m *marketTransactionImpl) Edit(payload *EditMarketPayload) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		address := DeriveMarketAddress(
			payload.Seller,
			payload.ItemMint,
			payload.PaymentMint,
			payload.Bump,
		)

		market, err := getMarket(tx, address)
		if err != nil {
			return err
		}

		if payload.Active != nil {
			market.Active = *payload.Active
		}

		if payload.Price != nil {
			market.Price = *payload.Price
		}

		return tx.Save(market).Error
	})
}

// Buy implements MarketTransaction.
func (m *marketTransactionImpl) Buy(payload *BuyItemPayload) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		address := DeriveMarketAddress(
			payload.Seller,
			payload.ItemMint,
			payload.PaymentMint,
			payload.Bump,
		)

		market, err := getMarket(tx, address)
		if err != nil {
			return err
		}

		if !market.Active {
			return ErrMarketNotActive
		}

		if payload.ItemQuantity == 0 {
			return token_ledger.ErrZeroAmount
		}

		if market.Price > math.MaxUint64/payload.ItemQuantity {
			return ErrPriceOverflow
		}
		totalPrice := market.Price * payload.ItemQuantity

		_, err = token_ledger.EnsureHolding(tx, payload.Buyer, payload.ItemMint)
		if err != nil {
			return err
		}

		_, err = token_ledger.EnsureHolding(tx, payload.Buyer, payload.PaymentMint)
		if err != nil {
			return err
		}

		err = token_ledger.
			NewTransfer(tx).
			From(address, payload.ItemMint).
			To(payload.Buyer, payload.ItemMint).
			Authority(address).
			Amount(payload.ItemQuantity).
			Commit().
			Err()

		if err != nil {
			var insufficient *token_ledger.ErrInsufficientBalance
			if errors.As(err, &insufficient) {
				return ErrMarketDepleted
			}
			return err
		}

		// a zero-price market settles without a payment leg
		if totalPrice == 0 {
			return nil
		}

		err = token_ledger.
			NewTransfer(tx).
			From(payload.Buyer, payload.PaymentMint).
			To(payload.Seller, payload.PaymentMint).
			Authority(payload.Buyer).
			Amount(totalPrice).
			Commit().
			Err()

		if err != nil {
			return err
		}

		return nil
	})
}

func getMarket(tx *gorm.DB, address string) (*Market, error) {
	var market Market

	err := tx.
		Model(&Market{}).
		Where("address = ?", address).
		First(&market).
		Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMarketNotFound
		}
		return nil, err
	}

	return &market, nil
}

func checkWholeUnitMint(tx *gorm.DB, mintID string) error {
	mint, err := token_ledger.GetMint(tx, mintID)
	if err != nil {
		return err
	}

	if mint.Decimals != 0 {
		return ErrFractionalMint
	}

	return nil
}

func NewMarketTransaction(db *gorm.DB) MarketTransaction {
	return &marketTransactionImpl{
		db: db,
	}
}
