package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	User    *UserHandler
	Product *ProductHandler
	Order   *OrderHandler
}
