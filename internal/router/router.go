package router

import (
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"github.com/thirteen-hero/myCats-server/internal/product"
	productrepo "github.com/thirteen-hero/myCats-server/internal/product/repo"
	"github.com/thirteen-hero/myCats-server/internal/slider"
	sliderrepo "github.com/thirteen-hero/myCats-server/internal/slider/repo"
	"github.com/thirteen-hero/myCats-server/internal/token"
	"github.com/thirteen-hero/myCats-server/internal/upload"
	"github.com/thirteen-hero/myCats-server/internal/user"
	userrepo "github.com/thirteen-hero/myCats-server/internal/user/repo"
	"github.com/thirteen-hero/myCats-server/internal/web"
	"github.com/thirteen-hero/myCats-server/pkg/utilities"
)

// loggingResponseWriter wraps http.ResponseWriter to capture status and size.
type loggingResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.status = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if lrw.status == 0 {
		lrw.status = http.StatusOK
	}
	n, err := lrw.ResponseWriter.Write(b)
	lrw.size += n
	return n, err
}

// LoggingMiddleware returns a middleware that tags each request with a
// snowflake id and logs it at debug level using the provided sugared logger.
func LoggingMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := utilities.NewSnowflakeID()
			w.Header().Set("X-Request-Id", reqID)
			lrw := &loggingResponseWriter{ResponseWriter: w}
			next.ServeHTTP(lrw, r)
			dur := time.Since(start)
			// ensure status is set
			status := lrw.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.Debugw("http request",
				"request_id", reqID,
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"status", status,
				"duration_ms", float64(dur.Microseconds())/1000.0,
				"size", lrw.size,
			)
		})
	}
}

// SecurityHeadersMiddleware returns a middleware that sets common HTTP security headers.
// It is intentionally simple and conservative so it works with most setups.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Prevent MIME sniffing
			w.Header().Set("X-Content-Type-Options", "nosniff")

			// Clickjacking protection
			w.Header().Set("X-Frame-Options", "DENY")

			// Referrer policy
			w.Header().Set("Referrer-Policy", "no-referrer-when-downgrade")

			// HSTS - instruct browsers to use HTTPS for future requests. Only set if request is over TLS.
			if r.TLS != nil {
				// 30 days by default
				w.Header().Set("Strict-Transport-Security", "max-age=2592000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CORSMiddleware allows cross-origin calls from the storefront client.
func CORSMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Options carries the wiring knobs RegisterRoutes needs beyond its deps.
type Options struct {
	StaticDir string // served under /public/
	UploadDir string // where uploaded files land, inside StaticDir
}

// RegisterRoutes mounts HTTP handlers using the standard library's http.ServeMux.
// This keeps the project stdlib-only for routing while keeping wiring simple
// and testable.
func RegisterRoutes(logger *zap.SugaredLogger, db *mongo.Database, issuer *token.Issuer, opts Options) http.Handler {
	mux := http.NewServeMux()

	// hello
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		web.RespondJSON(w, http.StatusOK, "hello")
	})

	// user routes
	userHandler := user.NewHandler(user.NewService(userrepo.NewUserRepo(db), nil, issuer), logger)
	mux.HandleFunc("POST /user/register", userHandler.Register)
	mux.HandleFunc("POST /user/login", userHandler.Login)
	mux.HandleFunc("GET /user/validate", userHandler.Validate)

	// catalog routes
	productHandler := product.NewHandler(product.NewService(productrepo.NewProductRepo(db)), logger)
	mux.HandleFunc("GET /product/list", productHandler.List)

	sliderHandler := slider.NewHandler(sliderrepo.NewSliderRepo(db), logger)
	mux.HandleFunc("GET /slider/list", sliderHandler.List)

	// uploads and the static tree they land in
	uploadHandler := upload.NewHandler(opts.UploadDir, "/public/upload", logger)
	mux.HandleFunc("POST /upload", uploadHandler.Upload)
	mux.Handle("GET /public/", http.StripPrefix("/public/", http.FileServer(http.Dir(opts.StaticDir))))

	// anything unmatched gets the 404 envelope
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		web.RespondError(w, web.NewError(http.StatusNotFound, "not found"))
	})

	// wrap with CORS, then security headers, then logging
	handler := LoggingMiddleware(logger)(SecurityHeadersMiddleware()(CORSMiddleware()(mux)))
	return handler
}
