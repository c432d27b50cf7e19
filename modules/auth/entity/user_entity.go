package entity

import (
	"surfplan-api/core/entity"
)

type User struct {
	Email    string  `db:"email" json:"email"`
	Password string  `db:"password" json:"-"`
	Name     string  `db:"name" json:"name"`
	GoogleID *string `db:"google_id" json:"-"`
	entity.BaseEntity
}
