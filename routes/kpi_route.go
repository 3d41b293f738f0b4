package routes

import (
	"net/http"

	"contributorkpi/handlers"
	"contributorkpi/middlewares"
	"contributorkpi/utils"
)

func SetupKPIRoutes(kpiHandler *handlers.KPIHandler, jwtSecret string) *http.ServeMux {
	mux := http.NewServeMux()

	jwtMiddleware := middlewares.JWTMiddleware(jwtSecret)

	mux.Handle("GET /api/kpi/users/{userId}", jwtMiddleware(http.HandlerFunc(kpiHandler.GetUserKPI)))
	mux.Handle("POST /api/kpi/calculate", jwtMiddleware(http.HandlerFunc(kpiHandler.CalculateKPI)))
	mux.Handle("GET /api/kpi/weights", jwtMiddleware(http.HandlerFunc(kpiHandler.GetRoleWeights)))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		utils.HandleMessageResponse(w, "ok", http.StatusOK)
	})

	return mux
}
