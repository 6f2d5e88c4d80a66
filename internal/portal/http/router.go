package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kcdforg/parentsclub-sub003/internal/portal/service"
	"github.com/kcdforg/parentsclub-sub003/internal/portal/store"
	"github.com/kcdforg/parentsclub-sub003/pkg/httpx"
	"github.com/kcdforg/parentsclub-sub003/pkg/slogx"

	_ "github.com/kcdforg/parentsclub-sub003/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	AuthService         *service.AuthService
	InvitationService   *service.InvitationService
	RegistrationService *service.RegistrationService
	UserService         *service.UserService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerInvitations()
	r.registerRegistration()
	r.registerUsers()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Registration Portal API
//	@version		0.1.0
//	@description	Invitation-gated registration portal. Admins and approved members mint single-use
//	@description	invitation codes; invitees redeem them into accounts that await admin approval.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host		localhost:8080
//	@BasePath	/
//
//	@schemes	http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /auth/login - strict rate limit (authentication attempts)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /auth/logout - moderate rate limit
	logoutHandler := &LogoutHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("/v1/auth/login", methodNotAllowed())
	r.Mux.Handle("/v1/auth/logout", methodNotAllowed())
}

func (r *Router) registerInvitations() {
	getHandler := &InvitationsGetHandler{
		InvitationService: r.InvitationService,
		Sessions:          r.AuthService,
	}
	postHandler := &InvitationsPostHandler{
		InvitationService: r.InvitationService,
		Sessions:          r.AuthService,
	}
	deleteHandler := &InvitationsDeleteHandler{
		InvitationService: r.InvitationService,
		Sessions:          r.AuthService,
	}

	// GET /invitations - doubles as the public code validation endpoint, so
	// the limit has to tolerate registration-page polling.
	r.Mux.Handle("GET /v1/invitations",
		httpx.Chain(getHandler,
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// POST /invitations - authenticated mutations (create + admin actions).
	// PUT is the legacy spelling for actions only.
	r.Mux.Handle("POST /v1/invitations",
		httpx.Chain(postHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("PUT /v1/invitations",
		httpx.Chain(postHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// DELETE /invitations/{id} - authenticated mutation; the path-less form
	// takes invitation_id in the body.
	r.Mux.Handle("DELETE /v1/invitations/{id}",
		httpx.Chain(deleteHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("DELETE /v1/invitations",
		httpx.Chain(deleteHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("/v1/invitations", methodNotAllowed())
	r.Mux.Handle("/v1/invitations/{id}", methodNotAllowed())
}

func (r *Router) registerRegistration() {
	// POST /register - strict rate limit by IP (public signup endpoint)
	registerHandler := &RegisterHandler{RegistrationService: r.RegistrationService}
	r.Mux.Handle("POST /v1/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("/v1/register", methodNotAllowed())
}

func (r *Router) registerUsers() {
	// POST /users/review - moderate rate limit (admin operation)
	reviewHandler := &UsersReviewHandler{
		UserService: r.UserService,
		Sessions:    r.AuthService,
	}
	r.Mux.Handle("POST /v1/users/review",
		httpx.Chain(reviewHandler,
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	r.Mux.Handle("/v1/users/review", methodNotAllowed())
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
