package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mirunaCalugar/Home-Assistant-Frontend/internal/logger"
	"github.com/mirunaCalugar/Home-Assistant-Frontend/models"
	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	tests := []struct {
		name string
		info models.AppBuildInfo
		want string
	}{
		{
			name: "all fields set",
			info: models.NewAppBuildInfo("v1.2.0", "2026-02-01", "deadbeef"),
			want: "Build version: v1.2.0\nBuild date: 2026-02-01\nBuild commit: deadbeef\n",
		},
		{
			name: "missing fields",
			info: models.NewAppBuildInfo("", "", ""),
			want: "Build version: N/A\nBuild date: N/A\nBuild commit: N/A\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(newTestDevice(), tt.info, logger.Nop())
			rec := httptest.NewRecorder()

			h.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}
