package model

import "time"

// StoreModel mirrors the 'tiendas' table. One store per user.
type StoreModel struct {
	ID          int64  `gorm:"column:tienda_id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:nombre;type:varchar(150);not null"`
	Description string `gorm:"column:descripcion;type:text;not null"`
	OwnerName   string `gorm:"column:propietario;type:varchar(150);not null"`
	UserID      int64  `gorm:"column:user_id;not null;uniqueIndex:idx_tiendas_user_id"`
	PlanID      int64  `gorm:"column:plan_id;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "tiendas"
}

// LocationModel mirrors the 'ubicacion' table, keyed by store.
type LocationModel struct {
	StoreID   int64   `gorm:"column:tienda_id;primaryKey;autoIncrement:false"`
	Latitude  float64 `gorm:"column:latitud;not null"`
	Longitude float64 `gorm:"column:longitud;not null"`
	Address   string  `gorm:"column:direccion;type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "ubicacion"
}

// PlanModel mirrors the 'planes' table.
type PlanModel struct {
	ID     int64   `gorm:"column:plan_id;primaryKey;autoIncrement"`
	Period string  `gorm:"column:periodo;type:varchar(50);not null"`
	Cost   float64 `gorm:"column:costo;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PlanModel) TableName() string {
	return "planes"
}
