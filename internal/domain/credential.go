package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CalendarReadonlyScope is the only scope this service ever requests
const CalendarReadonlyScope = "https://www.googleapis.com/auth/calendar.readonly"

// CredentialSet is the token pair granted by the calendar provider for one session.
// It is replaced wholesale on re-authorization, never merged.
type CredentialSet struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	TokenType    string    `json:"token_type,omitempty"`
	Expiry       time.Time `json:"expiry,omitempty"`
	Scopes       []string  `json:"scopes,omitempty"`
	IssuedAt     time.Time `json:"issued_at"`
}

// Valid reports whether the set carries an access token at all.
// Expiry is deliberately not checked: expired tokens surface as upstream failures.
func (c *CredentialSet) Valid() bool {
	return c != nil && c.AccessToken != ""
}

// CredentialRecord struct - persisted row for SQL-backed credential stores
type CredentialRecord struct {
	ID           *uuid.UUID `gorm:"type:uuid;primary_key;"`
	SessionID    string     `gorm:"type:varchar(128);uniqueIndex;not null;"`
	AccessToken  string     `gorm:"type:text;not null;"`
	RefreshToken string     `gorm:"type:text"`
	TokenType    string     `gorm:"type:varchar(32)"`
	Expiry       *time.Time `gorm:"type:timestamp"`
	Scopes       string     `gorm:"type:text"`
	IssuedAt     time.Time  `gorm:"type:timestamp;not null;"`
	CreatedAt    *time.Time `gorm:"type:timestamp"`
	UpdatedAt    *time.Time `gorm:"type:timestamp;index"`
}

// TableName func
func (r *CredentialRecord) TableName() string {
	return "session_credentials"
}

// BeforeCreate hook - generates UUID before creating
func (r *CredentialRecord) BeforeCreate(tx *gorm.DB) (err error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	r.ID = &id
	return nil
}

// MigrateDatabase func - Auto-migrate database schema
func MigrateDatabase(db *gorm.DB) error {
	if db == nil {
		return errors.New("an error when connect database")
	}
	return db.AutoMigrate(&CredentialRecord{})
}
