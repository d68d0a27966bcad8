package token_ledger

import "gorm.io/gorm"

func GormAutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Mint{},
		&Holding{},
		&Transfer{},
	)
}
