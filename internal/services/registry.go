package services

import "logistik_backend/internal/email"

// ServiceContainer bundles the wired services for handler construction.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	PackageService PackageService
	EmailProvider  email.Provider
}
