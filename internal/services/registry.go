package services

import (
	"time"

	"ecomatch_backend/internal/auth"
	"ecomatch_backend/internal/config"
	"ecomatch_backend/internal/email"
	"ecomatch_backend/internal/repositories"
	"ecomatch_backend/internal/storage"

	"gorm.io/gorm"
)

// Repositories groups the data access layer for injection.
type Repositories struct {
	Users       repositories.UserRepository
	Leads       repositories.LeadRepository
	Requests    repositories.RequestRepository
	Offers      repositories.OfferRepository
	Profiles    repositories.ProviderProfileRepository
	Services    repositories.ServiceTypeRepository
	Geo         repositories.GeoRepository
	AccessLogs  repositories.AccessLogRepository
	Subscribers repositories.SubscriptionRepository
}

// NewRepositories wires all repositories onto one database handle.
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:       repositories.NewUserRepository(db),
		Leads:       repositories.NewLeadRepository(db),
		Requests:    repositories.NewRequestRepository(db),
		Offers:      repositories.NewOfferRepository(db),
		Profiles:    repositories.NewProviderProfileRepository(db),
		Services:    repositories.NewServiceTypeRepository(db),
		Geo:         repositories.NewGeoRepository(db),
		AccessLogs:  repositories.NewAccessLogRepository(db),
		Subscribers: repositories.NewSubscriptionRepository(db),
	}
}

// Container holds every service plus the token managers shared with the
// middleware layer.
type Container struct {
	JWT *auth.JWTManager

	Auth     *AuthService
	Users    *UserService
	Leads    *LeadService
	Requests *RequestService
	Offers   *OfferService
	Matching *MatchingService
	Profiles *ProviderProfileService
	Geo      *GeoService
	Catalog  *ServiceTypeService
}

// NewContainer builds the service graph from configuration and shared
// infrastructure.
func NewContainer(cfg *config.Config, db *gorm.DB, repos *Repositories, mailer email.Provider, files storage.Storage) *Container {
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)

	activationSecret := cfg.Activation.Secret
	if activationSecret == "" {
		activationSecret = cfg.JWT.Secret
	}
	activation := auth.NewActivationTokenizer(activationSecret, time.Duration(cfg.Activation.TTLHours)*time.Hour)
	refreshTTL := time.Duration(cfg.JWT.RefreshTTLDay) * 24 * time.Hour

	return &Container{
		JWT: jwtManager,

		Auth:     NewAuthService(repos.Users, jwtManager, activation, mailer, refreshTTL),
		Users:    NewUserService(repos.Users),
		Leads:    NewLeadService(db, repos.Leads, repos.Users, repos.Requests, repos.Services, repos.Geo, mailer, files, cfg.Upload.MaxSize, cfg.Upload.AllowedTypes),
		Requests: NewRequestService(repos.Requests, repos.Services, repos.Geo, repos.Users),
		Offers:   NewOfferService(repos.Offers, repos.Requests, repos.Users, mailer),
		Matching: NewMatchingService(repos.Profiles, repos.Requests),
		Profiles: NewProviderProfileService(db, repos.Profiles, repos.Users, repos.Services, repos.Geo, repos.AccessLogs, repos.Subscribers),
		Geo:      NewGeoService(repos.Geo),
		Catalog:  NewServiceTypeService(repos.Services),
	}
}
