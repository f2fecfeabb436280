package api

import "github.com/gin-gonic/gin"

// NewRouter wires all handlers onto one engine.
func NewRouter(users *UserHandler, sessions *SessionHandler, registrations *RegistrationHandler, gate *OperatorGate) *gin.Engine {
	router := gin.Default()

	users.Register(router.Group("/users"))
	sessions.Register(router.Group("/sessions"), gate)
	sessions.RegisterTypes(router.Group("/session-types"))
	registrations.Register(router.Group("/registrations"))

	return router
}
