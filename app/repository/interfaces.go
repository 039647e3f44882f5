package repository

import (
	"github.com/FelixBrandt/SocialFox/app/models"
)

// IdentityRepository defines the interface for identity-related database operations
type IdentityRepository interface {
	Upsert(identity *models.Identity) error
	GetByProviderUserID(provider, providerUserID string) (*models.Identity, error)
	Count() (int64, error)
}
