package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Tuning is a user-saved tuning, strings ordered treble to bass.
type Tuning struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	Strings   string         `gorm:"type:text;not null" json:"-"` // JSON-encoded []string
}

// SetStrings encodes the string list into the Strings column
func (t *Tuning) SetStrings(strings []string) error {
	data, err := json.Marshal(strings)
	if err != nil {
		return err
	}
	t.Strings = string(data)
	return nil
}

// GetStrings decodes the string list from the Strings column
func (t *Tuning) GetStrings() ([]string, error) {
	var strings []string
	if err := json.Unmarshal([]byte(t.Strings), &strings); err != nil {
		return nil, err
	}
	return strings, nil
}

// SavedVoicing is a user-saved chord fingering.
type SavedVoicing struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	ChordName string         `gorm:"not null" json:"chord_name"`
	Tuning    string         `gorm:"type:text;not null" json:"-"` // JSON-encoded []string
	Frets     string         `gorm:"type:text;not null" json:"-"` // JSON-encoded []int
	Ergonomy  int            `json:"ergonomy"`
}

// SetTuning encodes the tuning into the Tuning column
func (v *SavedVoicing) SetTuning(tuning []string) error {
	data, err := json.Marshal(tuning)
	if err != nil {
		return err
	}
	v.Tuning = string(data)
	return nil
}

// GetTuning decodes the tuning from the Tuning column
func (v *SavedVoicing) GetTuning() ([]string, error) {
	var tuning []string
	if err := json.Unmarshal([]byte(v.Tuning), &tuning); err != nil {
		return nil, err
	}
	return tuning, nil
}

// SetFrets encodes the fret assignment into the Frets column
func (v *SavedVoicing) SetFrets(frets []int) error {
	data, err := json.Marshal(frets)
	if err != nil {
		return err
	}
	v.Frets = string(data)
	return nil
}

// GetFrets decodes the fret assignment from the Frets column
func (v *SavedVoicing) GetFrets() ([]int, error) {
	var frets []int
	if err := json.Unmarshal([]byte(v.Frets), &frets); err != nil {
		return nil, err
	}
	return frets, nil
}

// SavedProgression is a user-saved progression, stored as the full
// generated payload.
type SavedProgression struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uint           `gorm:"not null;index" json:"user_id"`
	User      User           `gorm:"foreignKey:UserID" json:"-"`
	Name      string         `gorm:"not null" json:"name"`
	Payload   string         `gorm:"type:text;not null" json:"-"` // JSON-encoded composer.Progression
}

// SetPayload encodes an arbitrary progression payload
func (p *SavedProgression) SetPayload(payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	p.Payload = string(data)
	return nil
}
