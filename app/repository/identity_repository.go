package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/FelixBrandt/SocialFox/app/models"
)

// identityRepository implements the IdentityRepository interface
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository creates a new identity repository instance
func NewIdentityRepository(db *gorm.DB) IdentityRepository {
	return &identityRepository{db: db}
}

// Upsert inserts the identity or, when a row for the same
// (provider, provider_user_id) already exists, overwrites its mutable
// fields. This is a single conditional write riding on the unique index,
// not a read-then-branch, so concurrent logins for the same subject cannot
// race into duplicate rows.
func (r *identityRepository) Upsert(identity *models.Identity) error {
	if err := identity.Validate(); err != nil {
		return err
	}

	return r.db.Clauses(upsertConflictClause()).Create(identity).Error
}

// GetByProviderUserID retrieves an identity by its natural key
func (r *identityRepository) GetByProviderUserID(provider, providerUserID string) (*models.Identity, error) {
	var identity models.Identity
	err := r.db.Where("provider = ? AND provider_user_id = ?", provider, providerUserID).First(&identity).Error
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

// Count returns the total number of stored identities
func (r *identityRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Identity{}).Count(&count).Error
	return count, err
}

// upsertConflictClause builds the ON CONFLICT / ON DUPLICATE KEY UPDATE
// clause for the natural key. updated_at is assigned explicitly so a
// repeated login always advances the timestamp.
func upsertConflictClause() clause.OnConflict {
	return clause.OnConflict{
		Columns: []clause.Column{
			{Name: "provider"},
			{Name: "provider_user_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"name",
			"email",
			"profile_picture",
			"raw_data",
			"updated_at",
		}),
	}
}
