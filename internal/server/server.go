package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/TrenchGarden_Go/docs"
	"github.com/osse101/TrenchGarden_Go/internal/garden"
	"github.com/osse101/TrenchGarden_Go/internal/handler"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
	"github.com/osse101/TrenchGarden_Go/internal/metrics"
	"github.com/osse101/TrenchGarden_Go/internal/shop"
	"github.com/osse101/TrenchGarden_Go/internal/sse"
	"github.com/osse101/TrenchGarden_Go/internal/visit"
	"github.com/osse101/TrenchGarden_Go/internal/wallet"
)

// Options configures the HTTP layer
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
	MaxBodyBytes   int64
}

// Services are the handlers' dependencies
type Services struct {
	Store   handler.Pinger
	Catalog handler.PlantLister
	Garden  garden.Service
	Shop    shop.Service
	Visit   visit.Service
	Wallet  wallet.Service
	Hub     *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance. Shutdown stops svc.Hub first so
// open event streams end and their connections can go idle.
func NewServer(opts Options, svc Services) *Server {
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           NewRouter(opts, svc),
		ReadHeaderTimeout: readHeaderTimeout,
	}
	if svc.Hub != nil {
		httpServer.RegisterOnShutdown(svc.Hub.Stop)
	}
	return &Server{httpServer: httpServer}
}

// NewRouter builds the full route tree with its middleware stack
func NewRouter(opts Options, svc Services) http.Handler {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Store))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	gardenHandlers := handler.NewGardenHandlers(svc.Garden)

	r.Route(APIPrefix, func(r chi.Router) {
		r.Route("/gardens", func(r chi.Router) {
			r.Post("/", gardenHandlers.HandleRegister())
			r.Route("/{username}", func(r chi.Router) {
				r.Get("/", gardenHandlers.HandleGet())
				r.Put("/username", gardenHandlers.HandleRename())
				r.Post("/coins", gardenHandlers.HandleAddCoins())
				r.Post("/coins/spend", gardenHandlers.HandleSpendCoins())
				r.Post("/experience", gardenHandlers.HandleGainExperience())
				r.Post("/growth", gardenHandlers.HandleUpdateGrowth())
				r.Post("/plants", gardenHandlers.HandlePlacePlant())
				r.Delete("/plants/{plantID}", gardenHandlers.HandleRemovePlant())
			})
		})

		r.Get("/catalog/plants", handler.HandleListPlants(svc.Catalog))

		r.Route("/shop", func(r chi.Router) {
			r.Get("/items", handler.HandleShopList(svc.Shop))
			r.Post("/purchase", handler.HandleShopPurchase(svc.Shop))
		})

		r.Route("/visit", func(r chi.Router) {
			r.Get("/featured", handler.HandleFeatured(svc.Visit))
			r.Get("/{username}", handler.HandleVisit(svc.Visit))
		})

		r.Post("/wallet/connect", handler.HandleWalletConnect(svc.Wallet))

		if svc.Hub != nil {
			r.Get("/events", sse.Handler(svc.Hub))
		}
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the event stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > 64 {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Serve accepts connections on ln instead of the configured port
func (s *Server) Serve(ln net.Listener) error {
	slog.Default().Info(LogMsgServerStarting, "addr", ln.Addr().String())
	return s.httpServer.Serve(ln)
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
