package fx

import (
	"time"

	"Feira/internal/domain/auth"
	"Feira/internal/domain/list"
	"Feira/internal/domain/user"
	"Feira/internal/middleware"
	"Feira/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece handlers e rate limiters
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newAuthRateLimiter,
	),
)

func newHandler(
	userSvc *user.Service,
	jwtSvc *middleware.JwtService,
	authSvc *auth.Service,
	listSvc *list.Service,
) *routes.Handler {
	return &routes.Handler{
		UserService: *userSvc,
		AuthService: *authSvc,
		ListService: *listSvc,
		JwtService:  jwtSvc,
	}
}

func newAuthRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
