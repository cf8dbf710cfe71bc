package db

import (
	"gorm.io/gorm"
)

// NotReferencedBy restricts a query on table to rows that no row of
// childTable points at through fkColumn.
//
// Example usage:
//
//	tx.Scopes(db.NotReferencedBy("advertisers", "ads", "advertiser_id")).Delete(&AdvertiserModel{}, id)
func NotReferencedBy(table, childTable, fkColumn string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Table(childTable).
			Select("1").
			Where(childTable + "." + fkColumn + " = " + table + ".id")
		return db.Where("NOT EXISTS (?)", sub)
	}
}

// OrderByNewest sorts table rows by a date column descending with the id as
// tie-breaker. Columns are table-qualified so the scope is safe on joins.
func OrderByNewest(table, column string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(table + "." + column + " DESC").Order(table + ".id DESC")
	}
}
