// Package grpc implements the optional gRPC transport of the bookshelf API.
//
// It serves the standard grpc.health.v1.Health service. The reported status
// follows the storage backend reachability observed by the health probe
// worker.
package grpc

import (
	"github.com/dailaaaaan/M8-UF2-PROJ-Dylan/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// BooksServiceName is the service name whose health is reported alongside
// the overall server status ("").
const BooksServiceName = "bookshelf.v1.Books"

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC
// server and the health probe worker.
type Handler struct {
	// health holds the serving status of every reported service.
	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until the first successful backend probe.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing updates the status reported for the server and the books
// service.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(BooksServiceName, status)
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
