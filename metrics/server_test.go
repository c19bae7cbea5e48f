package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/sheabunge/terrainpath/metrics"
)

func TestHandler_Metrics(t *testing.T) {
	metrics.ObserveMission("handler-test", metrics.OutcomeOK, 0.5, 99)

	srv := httptest.NewServer(metrics.NewHandler(zaptest.NewLogger(t)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `terrainpath_path_energy{strategy="handler-test"} 99`)
	assert.Contains(t, string(body), "terrainpath_missions_total")
}

func TestHandler_Healthz(t *testing.T) {
	h := metrics.NewHandler(zaptest.NewLogger(t))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandler_RateLimited(t *testing.T) {
	h := metrics.NewHandler(zaptest.NewLogger(t))

	limited := false
	for i := 0; i < 200 && !limited; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		limited = rec.Code == http.StatusTooManyRequests
	}
	assert.True(t, limited)
}
