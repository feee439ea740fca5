// Package nats runs the embedded JetStream server that backs the wizard
// event journal.
package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/stepwise/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	readyTimeout    = 4 * time.Second
	drainTimeout    = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Server is an in-process JetStream server holding the journal stream.
// It never listens on a network port.
type Server struct {
	dir    string
	ns     *server.Server
	nc     *nats.Conn
	js     jetstream.JetStream
	stream jetstream.Stream
}

// Open starts a server storing its data under dir, connects to it and
// creates or updates the journal stream. Close releases everything.
func Open(ctx context.Context, dir string) (*Server, error) {
	logger.Debug("Opening journal store in %s", dir)

	ns, err := server.NewServer(&server.Options{
		JetStream:  true,
		StoreDir:   dir,
		DontListen: true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating journal server: %w", err)
	}

	go ns.Start()
	if !ns.ReadyForConnections(readyTimeout) {
		ns.Shutdown()
		return nil, fmt.Errorf("journal server not ready after %s", readyTimeout)
	}

	s := &Server{dir: dir, ns: ns}

	s.nc, err = nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("connecting to journal server: %w", err)
	}

	s.js, err = jetstream.New(s.nc)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("creating JetStream context: %w", err)
	}

	s.stream, err = SetupStream(ctx, s.js)
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("setting up %s stream: %w", streamName, err)
	}

	logger.Debug("Journal store ready: stream %s", streamName)
	return s, nil
}

// Dir returns the storage directory.
func (s *Server) Dir() string {
	return s.dir
}

// JetStream returns the JetStream context of the in-process connection.
func (s *Server) JetStream() jetstream.JetStream {
	return s.js
}

// Stream returns the journal stream.
func (s *Server) Stream() jetstream.Stream {
	return s.stream
}

// Close drains the connection and stops the server. Both steps are bounded
// so a stuck consumer cannot hang exit. Close is safe to call twice.
func (s *Server) Close() error {
	if s.nc != nil {
		drained := make(chan error, 1)
		go func() { drained <- s.nc.Drain() }()

		select {
		case err := <-drained:
			if err != nil {
				logger.Warn("Journal drain failed, closing: %v", err)
				s.nc.Close()
			}
		case <-time.After(drainTimeout):
			logger.Warn("Journal drain timed out, closing")
			s.nc.Close()
		}
		s.nc = nil
	}

	if s.ns == nil {
		return nil
	}
	ns := s.ns
	s.ns = nil
	ns.Shutdown()

	stopped := make(chan struct{})
	go func() {
		ns.WaitForShutdown()
		close(stopped)
	}()
	select {
	case <-stopped:
		logger.Debug("Journal store closed")
		return nil
	case <-time.After(shutdownTimeout):
		return errors.New("journal server shutdown timed out")
	}
}
