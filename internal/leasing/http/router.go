package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/havenlet/leasing/internal/leasing/service"
	"github.com/havenlet/leasing/internal/leasing/store"
	"github.com/havenlet/leasing/pkg/httpx"
	"github.com/havenlet/leasing/pkg/slogx"

	_ "github.com/havenlet/leasing/api/leasing" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

const roleLandlord = "landlord"

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	jwtSecret    []byte
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store              store.Store
	UserService        *service.UserService
	ListingService     *service.ListingService
	ApplicationService *service.ApplicationService
	LeaseService       *service.LeaseService
	InviteService      *service.InviteService
	SigningService     *service.SigningService
	MaintenanceService *service.MaintenanceService
	InvoiceService     *service.InvoiceService
	DocumentService    *service.DocumentService
}

func NewRouter(jwtSecret []byte, buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		jwtSecret:    jwtSecret,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerListings()
	r.registerApplications()
	r.registerLeases()
	r.registerInvites()
	r.registerMaintenance()
	r.registerInvoices()
	r.registerDocuments()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Havenlet Leasing Service API
//	@version		0.1.0
//	@description	Rental-property leasing workflow: applications, approvals, lease drafting, signing invites, and maintenance invoicing with linked payments.
//	@description
//	@description				Authenticated endpoints expect a bearer JWT whose claims carry the caller's id (sub) and role (landlord or tenant).
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// landlord wraps a handler with authn, the landlord role check and a
// per-user rate limit.
func (r *Router) landlord(h http.Handler) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.jwtSecret),
		httpx.RequireAnyRole(roleLandlord),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

// authenticated wraps a handler with authn and a per-user rate limit; any
// role may call it.
func (r *Router) authenticated(h http.Handler) http.Handler {
	return httpx.Chain(h,
		httpx.AuthnMiddleware(r.jwtSecret),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)
}

func (r *Router) registerUsers() {
	h := &MeHandler{UserService: r.UserService}

	r.Mux.Handle("PUT /v1/me", r.authenticated(http.HandlerFunc(h.HandlePut)))
	r.Mux.Handle("GET /v1/me", r.authenticated(http.HandlerFunc(h.HandleGet)))
}

func (r *Router) registerListings() {
	h := &ListingsHandler{ListingService: r.ListingService}

	r.Mux.Handle("POST /v1/listings", r.landlord(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /v1/listings", r.authenticated(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /v1/listings/{id}", r.authenticated(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PATCH /v1/listings/{id}", r.landlord(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/listings/{id}", r.landlord(http.HandlerFunc(h.HandleDelete)))
}

func (r *Router) registerApplications() {
	h := &ApplicationsHandler{ApplicationService: r.ApplicationService}

	r.Mux.Handle("POST /v1/applications", r.landlord(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /v1/applications", r.landlord(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("PATCH /v1/applications/{id}/status", r.landlord(http.HandlerFunc(h.HandleUpdateStatus)))
	r.Mux.Handle("DELETE /v1/applications/{id}", r.landlord(http.HandlerFunc(h.HandleDelete)))
	r.Mux.Handle("POST /v1/applications/delete", r.landlord(http.HandlerFunc(h.HandleDeleteBatch)))

	// Public application form - no authn, rate limited by IP. The unguessable
	// public id is the capability.
	r.Mux.Handle("GET /v1/applications/public/{publicID}",
		httpx.Chain(http.HandlerFunc(h.HandleGetPublic),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("PUT /v1/applications/public/{publicID}",
		httpx.Chain(http.HandlerFunc(h.HandleSubmitPublic),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerLeases() {
	h := &LeasesHandler{LeaseService: r.LeaseService}

	r.Mux.Handle("POST /v1/leases", r.landlord(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /v1/leases", r.authenticated(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("GET /v1/leases/{id}", r.authenticated(http.HandlerFunc(h.HandleGet)))
	r.Mux.Handle("PATCH /v1/leases/{id}", r.landlord(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("DELETE /v1/leases/{id}", r.landlord(http.HandlerFunc(h.HandleDelete)))
	r.Mux.Handle("POST /v1/leases/{id}/terminate", r.landlord(http.HandlerFunc(h.HandleTerminate)))
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{
		InviteService:  r.InviteService,
		SigningService: r.SigningService,
	}

	r.Mux.Handle("POST /v1/leases/{id}/invite", r.landlord(http.HandlerFunc(h.HandleGenerate)))

	// Public signing endpoints - the invite token is the capability.
	r.Mux.Handle("GET /v1/invites/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleResolve),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// POST /sign - strict rate limit by IP (single-use token redemption)
	r.Mux.Handle("POST /v1/invites/{token}/sign",
		httpx.Chain(http.HandlerFunc(h.HandleSign),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerMaintenance() {
	h := &MaintenanceHandler{MaintenanceService: r.MaintenanceService}

	r.Mux.Handle("POST /v1/maintenance", r.landlord(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /v1/maintenance", r.landlord(http.HandlerFunc(h.HandleList)))
}

func (r *Router) registerInvoices() {
	h := &InvoicesHandler{InvoiceService: r.InvoiceService}

	r.Mux.Handle("POST /v1/invoices", r.landlord(http.HandlerFunc(h.HandleCreate)))
	r.Mux.Handle("GET /v1/invoices", r.landlord(http.HandlerFunc(h.HandleList)))
	r.Mux.Handle("PATCH /v1/invoices/{id}", r.landlord(http.HandlerFunc(h.HandleUpdate)))
	r.Mux.Handle("PATCH /v1/invoices/{id}/status", r.landlord(http.HandlerFunc(h.HandleUpdateStatus)))
	r.Mux.Handle("DELETE /v1/invoices/{id}", r.landlord(http.HandlerFunc(h.HandleDelete)))
	r.Mux.Handle("GET /v1/payments", r.authenticated(http.HandlerFunc(h.HandleListPayments)))
}

func (r *Router) registerDocuments() {
	h := &DocumentsHandler{DocumentService: r.DocumentService}

	r.Mux.Handle("POST /v1/documents/upload-url", r.landlord(http.HandlerFunc(h.HandleUploadURL)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
}
