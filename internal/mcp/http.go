package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/exa-labs/exa-mcp-server/internal/protocol"
)

const shutdownTimeout = 5 * time.Second

// NewHTTPHandler serves MCP JSON-RPC requests via POST on the root path.
// Expects a single JSON-RPC request per call.
func NewHTTPHandler(server *Server, logger *logrus.Entry) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		var req protocol.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, protocol.Response{JSONRPC: "2.0", ID: "0", Error: &protocol.ResponseError{Code: protocol.CodeParseError, Message: "invalid JSON"}}, http.StatusBadRequest)
			return
		}

		logger.WithFields(logrus.Fields{
			"method":          req.Method,
			"http_request_id": middleware.GetReqID(r.Context()),
		}).Debug("mcp request")

		resp, err := server.Handle(r.Context(), req)
		if err != nil {
			writeJSON(w, WriteError(req.ID, protocol.CodeInternalError, "internal error", err), http.StatusInternalServerError)
			return
		}
		if req.IsNotification() && resp.Result == nil && resp.Error == nil {
			w.WriteHeader(http.StatusAccepted)
			return
		}

		writeJSON(w, resp, http.StatusOK)
	})

	return r
}

// RunHTTP listens on addr until ctx is done, then shuts down gracefully.
func RunHTTP(ctx context.Context, server *Server, addr string, logger *logrus.Entry) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           NewHTTPHandler(server, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("HTTP MCP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func writeJSON(w http.ResponseWriter, resp protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
