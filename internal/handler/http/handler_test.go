package http

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/config"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/mock"
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/service"
	"github.com/go-resty/resty/v2"
	"go.uber.org/mock/gomock"
)

// stubProbe is a fixed BackendProbe.
type stubProbe struct {
	backend config.Backend
	err     error
}

func (p stubProbe) Backend() config.Backend { return p.backend }

func (p stubProbe) Ping(context.Context) error { return p.err }

type testEnv struct {
	auth   *mock.MockAuthService
	books  *mock.MockBookService
	client *resty.Client
}

// newTestEnv serves the full router over a real listener and returns a
// resty client bound to it.
func newTestEnv(t *testing.T, probe BackendProbe) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth:  mock.NewMockAuthService(ctrl),
		books: mock.NewMockBookService(ctrl),
	}
	services := &service.Services{AuthService: env.auth, BookService: env.books}

	if probe == nil {
		probe = stubProbe{backend: config.BackendRelational}
	}
	h := NewHandler(services, probe, config.Server{AllowedOrigins: []string{"*"}}, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	env.client = resty.New().SetBaseURL(srv.URL)

	return env
}
