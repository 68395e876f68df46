package model

import "time"

// Satu baris per slot program; key-nya tetap (constants.ProgramKeys).
type ProgramImageModel struct {
	ProgramImageKey       string    `gorm:"column:program_image_key;type:varchar(50);primaryKey" json:"program_image_key"`
	ProgramImageURL       *string   `gorm:"column:program_image_url;type:text" json:"program_image_url,omitempty"`
	ProgramImageUpdatedAt time.Time `gorm:"column:program_image_updated_at;autoUpdateTime" json:"program_image_updated_at"`
}

func (ProgramImageModel) TableName() string {
	return "program_images"
}
