// Package dbtx lets gorm repositories join a transaction that a service
// opened on the underlying *sql.DB.
package dbtx

import (
	"database/sql"

	"gorm.io/gorm"
)

// Bind returns a session of db whose statements run on tx. A nil tx returns
// db unchanged.
func Bind(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	session := db.Session(&gorm.Session{SkipDefaultTransaction: true})
	session.Statement.ConnPool = tx
	return session
}
