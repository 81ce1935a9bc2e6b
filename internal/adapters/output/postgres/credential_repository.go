package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"weather-insight/internal/domain"
	"weather-insight/internal/ports/output"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ output.CredentialStore = (*CredentialRepository)(nil)

// CredentialRepository struct - Secondary/Driven adapter for PostgreSQL
type CredentialRepository struct {
	dbGorm *gorm.DB
}

// NewCredentialRepository func - Creates new PostgreSQL repository
func NewCredentialRepository(dbGorm *gorm.DB) (*CredentialRepository, error) {
	logrus.Info("Migrate database ...")
	if err := domain.MigrateDatabase(dbGorm); err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return &CredentialRepository{
		dbGorm: dbGorm,
	}, nil
}

// GetCredentials func - Reads the credential row of a session
func (p *CredentialRepository) GetCredentials(ctx context.Context, sessionID string) (*domain.CredentialSet, error) {
	var record domain.CredentialRecord
	err := p.dbGorm.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return fromRecord(record), nil
}

// PutCredentials func - Inserts or replaces the credential row of a session
func (p *CredentialRepository) PutCredentials(ctx context.Context, sessionID string, creds *domain.CredentialSet) error {
	record := toRecord(sessionID, creds)
	err := p.dbGorm.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "session_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"access_token", "refresh_token", "token_type", "expiry", "scopes", "issued_at", "updated_at",
			}),
		}).
		Create(&record).Error
	if err != nil {
		logrus.Errorln(err)
		return err
	}
	return nil
}

// DeleteCredentials func - Removes the credential row of a session
func (p *CredentialRepository) DeleteCredentials(ctx context.Context, sessionID string) error {
	var record domain.CredentialRecord
	tx := p.dbGorm.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Delete(&record)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return tx.Error
	}
	return nil
}

// PurgeExpired func - Removes rows not written since cutoff
func (p *CredentialRepository) PurgeExpired(ctx context.Context, cutoff time.Time) (int, error) {
	var record domain.CredentialRecord
	tx := p.dbGorm.WithContext(ctx).
		Where("updated_at < ?", cutoff).
		Delete(&record)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return 0, tx.Error
	}
	return int(tx.RowsAffected), nil
}

// Ping func - Checks the database connection
func (p *CredentialRepository) Ping(ctx context.Context) error {
	sqlDB, err := p.dbGorm.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func toRecord(sessionID string, creds *domain.CredentialSet) domain.CredentialRecord {
	now := time.Now()
	record := domain.CredentialRecord{
		SessionID:    sessionID,
		AccessToken:  creds.AccessToken,
		RefreshToken: creds.RefreshToken,
		TokenType:    creds.TokenType,
		Scopes:       strings.Join(creds.Scopes, " "),
		IssuedAt:     creds.IssuedAt,
		UpdatedAt:    &now,
	}
	if record.IssuedAt.IsZero() {
		record.IssuedAt = now
	}
	if !creds.Expiry.IsZero() {
		expiry := creds.Expiry
		record.Expiry = &expiry
	}
	return record
}

func fromRecord(record domain.CredentialRecord) *domain.CredentialSet {
	creds := &domain.CredentialSet{
		AccessToken:  record.AccessToken,
		RefreshToken: record.RefreshToken,
		TokenType:    record.TokenType,
		IssuedAt:     record.IssuedAt,
	}
	if record.Expiry != nil {
		creds.Expiry = *record.Expiry
	}
	if record.Scopes != "" {
		creds.Scopes = strings.Fields(record.Scopes)
	}
	return creds
}
