package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"

	"github.com/FelixBrandt/SocialFox/internal/pkg/oauth"
)

// Identity is one external sign-in persisted in the auth_users table.
// The composite unique index on (provider, provider_user_id) is what makes
// the upsert atomic: two concurrent first logins for the same subject can
// never produce two rows, only one insert and one update.
type Identity struct {
	ID             uint              `gorm:"primaryKey" json:"id"`
	Provider       string            `gorm:"index:idx_provider_subject,unique;type:varchar(50)" json:"provider" validate:"required,oneof=google facebook microsoft"`
	ProviderUserID string            `gorm:"index:idx_provider_subject,unique;type:varchar(191)" json:"provider_user_id" validate:"required,max=191"`
	Name           string            `gorm:"type:varchar(150);default:null" json:"name"`
	Email          string            `gorm:"type:varchar(200);default:null" json:"email"`
	ProfilePicture string            `gorm:"type:varchar(512);default:null" json:"profile_picture"`
	RawData        datatypes.JSONMap `gorm:"type:json" json:"raw_data"`
	CreatedAt      time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName keeps the table name the deployment scripts and migrations use.
func (Identity) TableName() string {
	return "auth_users"
}

func (i *Identity) Validate() error {
	v := validator.New()

	return v.Struct(i)
}

// IdentityFromProfile maps a normalized provider profile onto the durable
// record shape.
func IdentityFromProfile(p oauth.Profile) *Identity {
	return &Identity{
		Provider:       p.Provider,
		ProviderUserID: p.UserID,
		Name:           p.Name,
		Email:          p.Email,
		ProfilePicture: p.Picture,
		RawData:        datatypes.JSONMap(p.RawData),
	}
}
