package repository

import (
	"sync"

	"gorm.io/gorm"
)

// Repositories bundles all repository instances handed to the controllers
type Repositories struct {
	Identities IdentityRepository
}

// NewRepositories creates all repositories backed by the given database handle
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Identities: NewIdentityRepository(db),
	}
}

// Factory manages repository instances and ensures they are singletons
type Factory struct {
	db    *gorm.DB
	repos *Repositories
	once  sync.Once
}

// NewFactory creates a new repository factory
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{
		db: db,
	}
}

// GetRepositories returns a singleton instance of all repositories
func (f *Factory) GetRepositories() *Repositories {
	f.once.Do(func() {
		f.repos = NewRepositories(f.db)
	})
	return f.repos
}

// GetIdentityRepository returns the identity repository instance
func (f *Factory) GetIdentityRepository() IdentityRepository {
	return f.GetRepositories().Identities
}
