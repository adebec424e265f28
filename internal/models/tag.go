package models

import "gorm.io/gorm"

// Tag is a translated category or mechanic label (e.g. "Fantasy", "Zarządzanie ręką").
type Tag struct {
	gorm.Model
	Name string `gorm:"size:100;unique;not null"`
}
