// Package model holds the GORM persistence models. Tables keep the column
// names of the original collections.
package model

import "time"

// UserModel mirrors the 'usuarios' table.
type UserModel struct {
	ID        int64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:nombre_usuario;type:varchar(100);not null"`
	Secret    string `gorm:"column:clave;type:varchar(255);not null"`
	Email     string `gorm:"column:email;type:varchar(255);not null"`
	Phone     string `gorm:"column:telefono;type:varchar(32);not null"`
	RoleID    int    `gorm:"column:rol_id;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "usuarios"
}
