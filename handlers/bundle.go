// handlers/bundle.go
package handlers

import (
	"myadvisor/database/repository"
)

// HandlerBundle groups all endpoint handlers plus the repositories the route
// middleware needs.
type HandlerBundle struct {
	UserRepo repository.UserRepository

	User    *UserHandler
	Advisor *AdvisorHandler
	Booking *BookingHandler
	Review  *ReviewHandler
	Message *MessageHandler
	Admin   *AdminHandler
}
