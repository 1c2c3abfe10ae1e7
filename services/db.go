package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forUpdate takes a row lock on engines that support it. SQLite, which the
// tests run on, has no SELECT ... FOR UPDATE and serializes writes anyway.
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
