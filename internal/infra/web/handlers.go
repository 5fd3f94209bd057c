package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"voucher-pass/internal/domain"
	"voucher-pass/internal/domain/model"
	"voucher-pass/internal/infra/logging"
	"voucher-pass/internal/infra/metrics"
	"voucher-pass/internal/usecase"
)

// recognized lists the bag keys read off a query string.
var recognized = []string{
	model.ParamName,
	model.ParamCode,
	model.ParamIssuer,
	model.ParamMaxPax,
	model.ParamRemainingPax,
	model.ParamStatus,
}

// bagFromQuery keeps the bag's presence semantics intact: a key that
// appears in the query is present even when its value is empty, and a
// key that does not appear stays absent. Unknown keys are ignored.
func bagFromQuery(q url.Values) model.Params {
	bag := model.Params{}
	for _, key := range recognized {
		if q.Has(key) {
			bag[key] = q.Get(key)
		}
	}
	return bag
}

// screen is the fully resolved input of one render pass.
type screen struct {
	state   *usecase.ViewState
	backURL string
}

// resolveScreen turns a request into a render state. The only error
// surface is the signed-link collaborator; the presentation core itself
// accepts any bag.
func (s *Server) resolveScreen(r *http.Request) (*screen, error) {
	q := r.URL.Query()

	bag, err := s.resolveBag(r, q)
	if err != nil {
		return nil, err
	}

	viewportWidth := s.cfg.Render.ViewportWidth
	if v, err := strconv.Atoi(q.Get("viewportWidth")); err == nil {
		viewportWidth = v
	}

	return &screen{
		state:   s.viewUC.Build(r.Context(), bag, viewportWidth),
		backURL: s.nav.BackURL(q.Get("back")),
	}, nil
}

// resolveBag picks the parameter source: a valid signed link replaces
// the raw query bag. A bad token is fatal only when links are required;
// otherwise the service logs it and falls back to the plain query.
func (s *Server) resolveBag(r *http.Request, q url.Values) (model.Params, error) {
	if s.links == nil {
		return bagFromQuery(q), nil
	}

	tok := q.Get("t")
	if tok == "" {
		if s.cfg.Links.Required {
			return nil, domain.ErrInvalidLink
		}
		return bagFromQuery(q), nil
	}

	bag, err := s.links.Resolve(tok)
	if err == nil {
		metrics.LinkVerificationsTotal.WithLabelValues("ok").Inc()
		return bag, nil
	}
	if errors.Is(err, domain.ErrLinkExpired) {
		metrics.LinkVerificationsTotal.WithLabelValues("expired").Inc()
	} else {
		metrics.LinkVerificationsTotal.WithLabelValues("invalid").Inc()
	}
	if s.cfg.Links.Required {
		return nil, err
	}
	logging.With(r.Context(), s.log).Warn().Err(err).Msg("signed link rejected; using query bag")
	return bagFromQuery(q), nil
}

// qrImageURL builds the engine endpoint URL for the page and the API,
// carrying the computed size through unchanged.
func qrImageURL(code string, sizePx int) string {
	v := url.Values{}
	v.Set("data", code)
	v.Set("size", strconv.Itoa(sizePx))
	return "/vouchers/qr.png?" + v.Encode()
}

func rejectLink(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrLinkExpired) {
		http.Error(w, "voucher link has expired", http.StatusBadRequest)
		return
	}
	http.Error(w, "voucher link is missing or invalid", http.StatusBadRequest)
}

// viewHTMLHandler renders the voucher detail screen.
func (s *Server) viewHTMLHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		scr, err := s.resolveScreen(r)
		if err != nil {
			rejectLink(w, err)
			return
		}
		st := scr.state

		renderScreen(w, http.StatusOK, pageModel{
			Label:     st.Theme.Label,
			Color:     st.Theme.ColorToken,
			Name:      st.View.Name,
			Code:      st.View.Code,
			QROpacity: st.Theme.QROpacity,
			QRURL:     qrImageURL(st.View.Code, st.QRSizePx),
			QRSize:    st.QRSizePx,
			Rows:      st.Rows,
			BackURL:   scr.backURL,
		})

		metrics.VoucherViewsTotal.WithLabelValues("html", st.View.Status.Kind().String()).Inc()
		metrics.ViewRenderDuration.WithLabelValues("html").Observe(time.Since(start).Seconds())
	}
}

// viewJSONHandler serves the display state as a document, for clients
// that draw the screen themselves.
func (s *Server) viewJSONHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		scr, err := s.resolveScreen(r)
		if err != nil {
			rejectLink(w, err)
			return
		}
		st := scr.state

		response := struct {
			Voucher struct {
				Name         string `json:"name"`
				Code         string `json:"code"`
				Issuer       string `json:"issuer"`
				MaxPax       int    `json:"max_pax"`
				RemainingPax int    `json:"remaining_pax"`
				Status       string `json:"status"`
			} `json:"voucher"`
			Theme model.Theme         `json:"theme"`
			Rows  []usecase.DetailRow `json:"rows"`
			QR    struct {
				SizePx int    `json:"size_px"`
				URL    string `json:"url"`
			} `json:"qr"`
			BackURL string `json:"back_url"`
		}{
			Theme:   st.Theme,
			Rows:    st.Rows,
			BackURL: scr.backURL,
		}
		response.Voucher.Name = st.View.Name
		response.Voucher.Code = st.View.Code
		response.Voucher.Issuer = st.View.Issuer
		response.Voucher.MaxPax = st.View.MaxPax
		response.Voucher.RemainingPax = st.View.RemainingPax
		response.Voucher.Status = string(st.View.Status)
		response.QR.SizePx = st.QRSizePx
		response.QR.URL = qrImageURL(st.View.Code, st.QRSizePx)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(response)

		metrics.VoucherViewsTotal.WithLabelValues("json", st.View.Status.Kind().String()).Inc()
		metrics.ViewRenderDuration.WithLabelValues("json").Observe(time.Since(start).Seconds())
	}
}

// qrPNGHandler is the QR engine boundary. The size arrives verbatim from
// the layout formula; what the engine cannot draw comes back as 422.
func (s *Server) qrPNGHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		data := q.Get("data")
		size, err := strconv.Atoi(q.Get("size"))
		if err != nil {
			http.Error(w, "size must be a base-10 integer", http.StatusBadRequest)
			return
		}

		start := time.Now()
		png, err := s.qr.RenderPNG(r.Context(), data, size)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrEmptyQRData):
				metrics.QRRendersTotal.WithLabelValues("empty_data").Inc()
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.Is(err, domain.ErrInvalidQRSize):
				metrics.QRRendersTotal.WithLabelValues("bad_size").Inc()
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			default:
				metrics.QRRendersTotal.WithLabelValues("encode_error").Inc()
				logging.With(r.Context(), s.log).Error().Err(err).Msg("qr encode failed")
				http.Error(w, "could not render QR symbol", http.StatusInternalServerError)
			}
			return
		}
		metrics.QRRendersTotal.WithLabelValues("ok").Inc()
		metrics.QRRenderDuration.Observe(time.Since(start).Seconds())

		w.Header().Set("Content-Type", "image/png")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(png)
	}
}
