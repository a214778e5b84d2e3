package models

import "time"

// Monitor is a staff user. The same record identifies who is logged in and
// who recorded an attendance entry. Accounts are provisioned out-of-band,
// there is no self-registration endpoint.
type Monitor struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Nombre       string    `gorm:"size:120;not null" json:"nombre"`
	Apellidos    string    `gorm:"size:160;not null" json:"apellidos"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName keeps the legacy table name used by the hosted schema.
func (Monitor) TableName() string { return "monitores" }
