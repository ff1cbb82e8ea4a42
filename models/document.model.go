package models

import "gorm.io/gorm"

// EnrollmentDocument records one uploaded supporting file (identity
// document, USI identity document, qualification evidence).
type EnrollmentDocument struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Kind      string `json:"kind"` // idDoc1, idDoc2, usiFile, qualFile
	FileName  string `json:"file_name"`
	FilePath  string `json:"file_path"`
	FileURL   string `json:"file_url"`
	IsDeleted bool   `gorm:"default:false"`
	User      User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
