package model

import "time"

// ReviewModel mirrors the 'opiniones' table.
type ReviewModel struct {
	ID        int64     `gorm:"column:opinion_id;primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;index"`
	ProductID int64     `gorm:"column:producto_id;not null;index"`
	Rating    int       `gorm:"column:calificacion;not null;check:chk_opiniones_calificacion,calificacion BETWEEN 1 AND 5"`
	Comment   string    `gorm:"column:comentario;type:text;not null"`
	CreatedAt time.Time `gorm:"column:fecha_opinion;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewModel) TableName() string {
	return "opiniones"
}
