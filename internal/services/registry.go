package services

import "cms_backend/internal/email"

// ServiceContainer bundles the services handed to the handlers.
type ServiceContainer struct {
	AuthService   AuthService
	UserService   UserService
	PersonService PersonService
	CostService   CostService
	EmailProvider email.Provider
}
