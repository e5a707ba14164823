package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewMySQL returns a connected GORM DB instance for the user credential store.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// gormConfig enables driver error translation so a unique-index violation
// surfaces as gorm.ErrDuplicatedKey instead of the raw MySQL 1062 error.
// Signup relies on that to map the loser of a concurrent-signup race to a
// duplicate-email response.
func gormConfig() *gorm.Config {
	return &gorm.Config{TranslateError: true}
}
