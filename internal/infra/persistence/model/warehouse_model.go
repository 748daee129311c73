package model

import "time"

// WarehouseModel is the GORM-specific struct for the 'warehouses' table.
type WarehouseModel struct {
	ID        int64   `gorm:"primary_key;autoIncrement"`
	Name      string  `gorm:"type:varchar(255);not null;uniqueIndex:idx_warehouses_on_name"`
	Address   string  `gorm:"type:text;not null"`
	IsActive  bool    `gorm:"not null;default:true"`
	Lat       float64 `gorm:"type:decimal(10,8)"`
	Lng       float64 `gorm:"type:decimal(11,8)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WarehouseModel) TableName() string {
	return "warehouses"
}
