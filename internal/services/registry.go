package services

// ServiceContainer bundles all services for handler wiring.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	ProductService ProductService
	OrderService   OrderService
}
