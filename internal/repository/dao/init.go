package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Student{},
		&Staff{},
		&QRCode{},
		&MealLog{},
		&Payment{},
	)
}
