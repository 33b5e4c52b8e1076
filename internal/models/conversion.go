package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversion records a source file that has been successfully converted.
// It is the durable projection of the converter's in-memory cache: one row
// per source path, overwritten when the same source is converted again.
type Conversion struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SourcePath string `gorm:"uniqueIndex;not null" json:"source_path"`
	OutputPath string `gorm:"not null" json:"output_path"`

	// Metadata probed from the produced WAV
	OutputSize      int64   `json:"output_size"`
	DurationSeconds float64 `json:"duration_seconds"`
	SampleRate      int     `json:"sample_rate"`
	Channels        int     `json:"channels"`
	Codec           string  `json:"codec"`

	ConvertedAt time.Time `json:"converted_at"`
}

// TableName returns the table name for the Conversion model
func (Conversion) TableName() string {
	return "conversions"
}

// BeforeCreate hook to set timestamps
func (c *Conversion) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.ConvertedAt.IsZero() {
		c.ConvertedAt = now
	}
	return nil
}

// BeforeUpdate hook to update timestamp
func (c *Conversion) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return nil
}
