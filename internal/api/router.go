package api

import (
	"database/sql"
	"net/http"

	"github.com/gearbase/gearbase/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	assetsHandler := &AssetsHandler{DB: db}
	setsHandler := &SetsHandler{DB: db}
	jobsHandler := &JobsHandler{DB: db}
	availabilityHandler := &AvailabilityHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)
	requireAdmin := RequireRole(model.RoleAdmin)
	requireManager := RequireRole(model.RoleManager)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("GET /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Get))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("PUT /api/users/{id}/password", authMW(requireAdmin(http.HandlerFunc(usersHandler.ResetPassword))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	// Assets: read (all roles), write (manager+).
	mux.Handle("GET /api/assets", authMW(http.HandlerFunc(assetsHandler.List)))
	mux.Handle("POST /api/assets", authMW(requireManager(http.HandlerFunc(assetsHandler.Create))))
	mux.Handle("GET /api/assets/{id}", authMW(http.HandlerFunc(assetsHandler.Get)))
	mux.Handle("PUT /api/assets/{id}", authMW(requireManager(http.HandlerFunc(assetsHandler.Update))))
	mux.Handle("DELETE /api/assets/{id}", authMW(requireManager(http.HandlerFunc(assetsHandler.Delete))))
	mux.Handle("PUT /api/assets/{id}/image", authMW(requireManager(http.HandlerFunc(assetsHandler.UploadImage))))
	mux.Handle("GET /api/assets/{id}/image", authMW(http.HandlerFunc(assetsHandler.GetImage)))
	mux.Handle("GET /api/assets/{id}/availability", authMW(http.HandlerFunc(availabilityHandler.AssetAvailability)))

	// Sets: read (all roles), write (manager+).
	mux.Handle("GET /api/sets", authMW(http.HandlerFunc(setsHandler.List)))
	mux.Handle("POST /api/sets", authMW(requireManager(http.HandlerFunc(setsHandler.Create))))
	mux.Handle("GET /api/sets/{id}", authMW(http.HandlerFunc(setsHandler.Get)))
	mux.Handle("PUT /api/sets/{id}", authMW(requireManager(http.HandlerFunc(setsHandler.Update))))
	mux.Handle("DELETE /api/sets/{id}", authMW(requireManager(http.HandlerFunc(setsHandler.Delete))))
	mux.Handle("GET /api/sets/{id}/availability", authMW(http.HandlerFunc(availabilityHandler.SetAvailability)))

	// Jobs (all roles).
	mux.Handle("GET /api/jobs", authMW(http.HandlerFunc(jobsHandler.List)))
	mux.Handle("POST /api/jobs", authMW(http.HandlerFunc(jobsHandler.Create)))
	mux.Handle("GET /api/jobs/{id}", authMW(http.HandlerFunc(jobsHandler.Get)))
	mux.Handle("PUT /api/jobs/{id}", authMW(http.HandlerFunc(jobsHandler.Update)))
	mux.Handle("DELETE /api/jobs/{id}", authMW(http.HandlerFunc(jobsHandler.Delete)))
	mux.Handle("GET /api/jobs/{id}/conflicts", authMW(http.HandlerFunc(availabilityHandler.JobConflicts)))
	mux.Handle("GET /api/jobs/{id}/lines", authMW(http.HandlerFunc(availabilityHandler.JobLines)))

	return mux
}
