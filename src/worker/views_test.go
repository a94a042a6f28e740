package worker_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wallet/src/config"
	"wallet/src/models"
	"wallet/src/repositories"
	"wallet/src/utils"
	"wallet/src/worker"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorker(t *testing.T) (*worker.Server, *config.Config) {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.DataDir = t.TempDir()
	cfg.Prices.RequestDelay = 0

	server, err := worker.NewServer(cfg, utils.NewLogger(logrus.ErrorLevel, false, ""))
	require.NoError(t, err)
	t.Cleanup(server.Handler.Controller.StopScheduler)
	return server, cfg
}

func TestTakeSnapshotEndpoint(t *testing.T) {
	server, cfg := newWorker(t)
	ts := httptest.NewServer(server)
	defer ts.Close()

	res, err := http.Post(ts.URL+"/api/snapshots", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var snapshot models.PortfolioSnapshot
	require.NoError(t, json.NewDecoder(res.Body).Decode(&snapshot))
	assert.NotEmpty(t, snapshot.Date)
	assert.Equal(t, 0.0, snapshot.NetWorth)

	history, err := repositories.NewSnapshotStore(cfg.Storage.Path(cfg.Storage.History)).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, snapshot.Date, history[0].Date)
}

func TestWorkerInstallsSchedule(t *testing.T) {
	server, _ := newWorker(t)

	require.NotNil(t, server.Handler.Controller.Scheduler)
	assert.False(t, server.Handler.Controller.Scheduler.Next().IsZero())

	require.NoError(t, server.Handler.Controller.ScheduleSnapshots("@every 1h"))
	assert.Error(t, server.Handler.Controller.ScheduleSnapshots("not a cron"))
}

func TestWorkerHealthcheck(t *testing.T) {
	server, _ := newWorker(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/alive", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
