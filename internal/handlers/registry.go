package handlers

// AppHandlers bundles the handlers handed to the routes package.
type AppHandlers struct {
	AuthHandler   *AuthHandler
	UserHandler   *UserHandler
	PersonHandler *PersonHandler
	CostHandler   *CostHandler
}
