package web

import "context"

// Server is the lifecycle the binaries drive for the preview endpoint.
type Server interface {
	Start(ctx context.Context) error
	Stop() error
}

// NoopServer stands in when the preview is disabled.
type NoopServer struct{}

func (n *NoopServer) Start(ctx context.Context) error { return nil }
func (n *NoopServer) Stop() error                     { return nil }

// NewPreviewServer wires the API routes onto an HTTP server. A nil cfg
// disables the preview and yields a NoopServer.
func NewPreviewServer(cfg *ServerConfig, api APIV1Deps, logger Logger) Server {
	if cfg == nil {
		return &NoopServer{}
	}
	router := NewRouter(RouterConfig{API: api, DevMode: cfg.DevMode})
	return NewHTTPServer(cfg.ListenAddr, router, logger)
}
