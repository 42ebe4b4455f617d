package handlers

// AppHandlers bundles the constructed handlers for route registration.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProjectHandler      *ProjectHandler
	NotificationHandler *NotificationHandler
	HealthHandler       *HealthHandler
}
