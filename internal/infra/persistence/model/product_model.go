package model

import "time"

// ProductModel mirrors the 'productos' table.
type ProductModel struct {
	ID          int64   `gorm:"column:producto_id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:nombre_producto;type:varchar(200);not null"`
	Price       float64 `gorm:"column:precio;not null;check:chk_productos_precio,precio >= 0"`
	Description string  `gorm:"column:descripcion;type:text;not null"`
	CategoryID  int64   `gorm:"column:categoria_id;not null;index"`
	StoreID     int64   `gorm:"column:tienda_id;not null;index"`
	Status      string  `gorm:"column:estado;type:varchar(20);not null;default:activo"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "productos"
}

// CategoryModel mirrors the 'categorias' table.
type CategoryModel struct {
	ID          int64  `gorm:"column:categoria_id;primaryKey;autoIncrement"`
	Name        string `gorm:"column:nombre_categoria;type:varchar(100);not null"`
	Description string `gorm:"column:descripcion;type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categorias"
}
