package web

import (
	"net/http"
	"time"

	"voucher-pass/internal/config"
	"voucher-pass/internal/domain/ports/adapter"
	"voucher-pass/internal/infra/links"
	"voucher-pass/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// handlerBudget bounds one render pass end to end, QR encode included.
const handlerBudget = 5 * time.Second

// Server is the delivery layer of the voucher detail screen: one HTML
// page, its JSON twin, and the QR engine endpoint.
type Server struct {
	viewUC  usecase.ViewUseCase
	qr      adapter.QRSymbolRenderer
	nav     adapter.Navigator
	links   *links.Codec // nil when signed links are disabled
	limiter Limiter      // nil when rate limiting is disabled
	backend string       // limiter backend label for metrics
	cfg     *config.Config
	log     *zerolog.Logger
}

func NewServer(
	viewUC usecase.ViewUseCase,
	qr adapter.QRSymbolRenderer,
	nav adapter.Navigator,
	codec *links.Codec,
	limiter Limiter,
	limiterBackend string,
	cfg *config.Config,
	logger *zerolog.Logger,
) *Server {
	return &Server{
		viewUC:  viewUC,
		qr:      qr,
		nav:     nav,
		links:   codec,
		limiter: limiter,
		backend: limiterBackend,
		cfg:     cfg,
		log:     logger,
	}
}

// Routes assembles the router. The screen and QR routes sit behind the
// rate limiter; health and metrics stay open.
func (s *Server) Routes() *chi.Mux {
	r := chi.NewRouter()
	r.Use(TraceID(s.log), RequestLog(s.log), Recover(s.log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// The bare host renders the all-defaults screen.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/vouchers/view", http.StatusFound)
	})

	r.Group(func(g chi.Router) {
		if s.limiter != nil && s.cfg.RateLimit.Enabled {
			g.Use(RateLimit(s.limiter, s.cfg.RateLimit.Limit, s.cfg.RateLimit.Window, s.backend, s.log))
		}
		g.Use(Timeout(handlerBudget))
		g.Get("/vouchers/view", s.viewHTMLHandler())
		g.Get("/vouchers/qr.png", s.qrPNGHandler())
		g.Get("/api/v1/vouchers/view", s.viewJSONHandler())
	})

	return r
}
