//go:build e2e

package e2e

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"appointment-gateway/cmd/bootstrap"
	"appointment-gateway/cmd/bootstrap/components"
	"appointment-gateway/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Fake upstream services
// ------------------------------------------------------------

// RecordedRequest is one call received by a FakeServer.
type RecordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// DecodeBody unmarshals the recorded JSON body into target.
func (r RecordedRequest) DecodeBody(t *testing.T, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body, target), "recorded body: %s", r.Body)
}

// FakeServer answers exact "METHOD /path" routes and records every request.
// Unknown routes get a 404 with the usual {"message"} body.
type FakeServer struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []RecordedRequest
}

func newFakeServer() *FakeServer {
	f := &FakeServer{routes: map[string]http.HandlerFunc{}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *FakeServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	})
	h, ok := f.routes[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		Respond(http.StatusNotFound, map[string]string{"message": "no fake route for " + r.Method + " " + r.URL.Path})(w, r)
		return
	}
	h(w, r)
}

func (f *FakeServer) On(method, path string, h http.HandlerFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes[method+" "+path] = h
}

func (f *FakeServer) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedRequest(nil), f.requests...)
}

// Last returns the most recent request to path, failing the test when none arrived.
func (f *FakeServer) Last(t *testing.T, method, path string) RecordedRequest {
	t.Helper()
	reqs := f.Requests()
	for i := len(reqs) - 1; i >= 0; i-- {
		if reqs[i].Method == method && reqs[i].Path == path {
			return reqs[i]
		}
	}
	require.FailNow(t, fmt.Sprintf("no %s %s request recorded", method, path))
	return RecordedRequest{}
}

func (f *FakeServer) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.routes = map[string]http.HandlerFunc{}
	f.requests = nil
}

// Respond writes payload as JSON; a nil payload leaves the body empty.
func Respond(status int, payload any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		if payload == nil {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type Upstreams struct {
	Dealers *FakeServer
	Engine  *FakeServer
	Mailing *FakeServer
}

func startUpstreams(t *testing.T) *Upstreams {
	u := &Upstreams{
		Dealers: newFakeServer(),
		Engine:  newFakeServer(),
		Mailing: newFakeServer(),
	}
	t.Cleanup(func() {
		u.Dealers.Close()
		u.Engine.Close()
		u.Mailing.Close()
	})
	return u
}

func (u *Upstreams) Reset() {
	u.Dealers.Reset()
	u.Engine.Reset()
	u.Mailing.Reset()
}

// ------------------------------------------------------------
// Per-process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*Upstreams, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	upstreams := startUpstreams(t)

	router, cfg, app := buildE2EApp(createTestConfig(upstreams))
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return upstreams, router, cfg
}

// ------------------------------------------------------------
// Application wiring for E2E tests
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(testConfig config.Config) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return testConfig }),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.ClientModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx app started without a router")
	}

	return router, cfg, app
}

func createTestConfig(u *Upstreams) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Upstream.DealerServiceURL = u.Dealers.URL
	testConfig.Upstream.AppointmentEngineURL = u.Engine.URL
	testConfig.Mailing.ServiceURL = u.Mailing.URL
	return testConfig
}

// ------------------------------------------------------------
// Shared suite for all E2E tests
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router    *gin.Engine
	Upstreams *Upstreams
	Config    config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	upstreams, router, cfg := setupE2EEnvironment(t)
	s.Upstreams = upstreams
	s.Router = router
	s.Config = cfg
	require.NotEmpty(t, s.Config, "config not populated")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

func (s *SharedSuite) SetupSubTest() {
	s.Upstreams.Reset()
}
