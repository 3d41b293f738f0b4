package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"contributorkpi/handlers"
	"contributorkpi/kpi"
	"contributorkpi/middlewares"
	"contributorkpi/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct{}

func (stubService) CalculateUserKPI(ctx context.Context, userID string, window kpi.TimeWindow) (*kpi.Result, error) {
	return &kpi.Result{UserID: userID, Window: window}, nil
}

func (stubService) CalculateFromBundle(ctx context.Context, user models.User, bundle models.ActivityBundle, window kpi.TimeWindow) (*kpi.Result, error) {
	return &kpi.Result{UserID: user.ID, Window: window}, nil
}

func (stubService) RoleWeights() map[models.Role]kpi.Weights {
	return kpi.RoleWeights()
}

func TestSetupKPIRoutes(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	mux := SetupKPIRoutes(handlers.NewKPIHandler(stubService{}, log, kpi.Window30Days), "secret")

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, middlewares.Claims{Username: "dana"}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		auth   bool
		want   int
	}{
		{http.MethodGet, "/health", false, http.StatusOK},
		{http.MethodGet, "/api/kpi/weights", false, http.StatusUnauthorized},
		{http.MethodGet, "/api/kpi/weights", true, http.StatusOK},
		{http.MethodGet, "/api/kpi/users/u1?window=ytd", true, http.StatusOK},
		{http.MethodDelete, "/api/kpi/users/u1", true, http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/kpi/unknown", true, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth {
				r.Header.Set("Authorization", "Bearer "+token)
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, r)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
