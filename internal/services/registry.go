package services

import "tenderlink_backend/internal/email"

// ServiceContainer bundles the constructed services for wiring.
type ServiceContainer struct {
	AuthService         AuthService
	ProjectService      ProjectService
	NotificationService NotificationService
	MatcherService      MatcherService
	EmailProvider       email.Provider
}
