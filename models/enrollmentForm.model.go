package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnrollmentForm stores one submitted student enrollment application.
// Identity columns are duplicated out of the payload so admin lists can
// search without unpacking JSON; FormData carries the full flattened
// wire record as submitted.
type EnrollmentForm struct {
	gorm.Model
	UserID    uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	Surname   string         `json:"surname"`
	GivenName string         `json:"given_name"`
	Email     string         `json:"email"`
	Completed bool           `json:"completed" gorm:"default:false"`
	FormData  datatypes.JSON `json:"form_data"`
	IsDeleted bool           `gorm:"default:false"`
	User      User           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
