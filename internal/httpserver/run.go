package httpserver

import (
	"context"
	"fmt"
)

// Run wires up all routes and serves until the listener fails or the
// process is stopped.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "listening on %s (%s mode, %s)", addr, srv.mode, srv.environment)
	return srv.gin.Run(addr)
}
