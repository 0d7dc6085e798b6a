package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/specialistvlad/tailgrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_ReportsLastBuild(t *testing.T) {
	t.Parallel()

	path := SetupProject(t, "tailgrid.hcl", testutil.ReferenceHCL)
	a, _, _ := SetupAppTest(t, Config{ConfigPath: path})

	probe := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		a.healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		return rec
	}

	rec := probe()
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "no build yet")

	_, err := a.Build(context.Background())
	require.NoError(t, err)
	rec = probe()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OK")

	require.NoError(t, os.WriteFile(path, []byte(`plugins = ["nope"]`), 0o644))
	_, err = a.Build(context.Background())
	require.Error(t, err)
	rec = probe()
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "build failed")
}

func TestCloseHealthcheckServer_NotRunning(t *testing.T) {
	t.Parallel()

	path := SetupProject(t, "tailgrid.hcl", testutil.ReferenceHCL)
	a, _, _ := SetupAppTest(t, Config{ConfigPath: path})

	a.startHealthcheckServer()
	assert.NoError(t, a.closeHealthcheckServer())
}
