package usecase

import (
	"context"

	"voucher-pass/internal/domain/model"
	"voucher-pass/internal/infra/logging"

	"github.com/rs/zerolog"
)

// Compile-time check
var _ ViewUseCase = (*viewUC)(nil)

// ViewUseCase derives the complete display state for the voucher detail
// screen from a raw parameter bag. One call, one render pass.
type ViewUseCase interface {
	Build(ctx context.Context, params model.Params, viewportWidth int) *ViewState
}

// DetailRow is one label/value line of the detail card.
type DetailRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ViewState is everything the renderer needs: the normalized record, its
// theme, the fixed detail rows, and the QR symbol geometry. It carries no
// identity and is rebuilt from the bag on every request.
type ViewState struct {
	View     model.VoucherView
	Theme    model.Theme
	Rows     []DetailRow
	QRSizePx int
}

const (
	// maxQRSizePx caps the symbol edge on wide viewports.
	maxQRSizePx = 200
	// qrGutterPx is the horizontal space reserved around the symbol.
	qrGutterPx = 120
)

// QRSizePx computes the symbol edge for a viewport: min(width-120, 200).
// There is no lower clamp: a very narrow viewport drives the size to zero or
// below, and the value is handed to the rendering collaborator unchanged.
func QRSizePx(viewportWidth int) int {
	size := viewportWidth - qrGutterPx
	if size > maxQRSizePx {
		return maxQRSizePx
	}
	return size
}

type viewUC struct {
	log *zerolog.Logger
}

// NewViewUseCase constructs the view builder.
func NewViewUseCase(logger *zerolog.Logger) *viewUC {
	return &viewUC{log: logger}
}

// Build normalizes the bag, derives the theme and labels and computes the QR
// geometry. Total and side-effect free: any bag yields a fresh, fully
// populated state and no error.
func (uc *viewUC) Build(ctx context.Context, params model.Params, viewportWidth int) *ViewState {
	defer logging.TraceDuration(uc.log, "ViewUC.Build")()

	view := model.Normalize(params)
	theme := model.ThemeFor(view.Status)

	state := &ViewState{
		View:     view,
		Theme:    theme,
		QRSizePx: QRSizePx(viewportWidth),
		Rows: []DetailRow{
			{Label: "Voucher Code", Value: view.Code},
			{Label: "Issuer", Value: view.Issuer},
			{Label: "Max Pax", Value: model.FormatPax(view.MaxPax)},
			{Label: "Remaining Pax", Value: model.FormatPax(view.RemainingPax)},
			{Label: "Status", Value: model.FormatStatus(view.Status)},
		},
	}

	logging.With(ctx, uc.log).Debug().
		Str("code", view.Code).
		Str("status", string(view.Status)).
		Str("status_kind", view.Status.Kind().String()).
		Int("qr_size_px", state.QRSizePx).
		Msg("view state built")

	return state
}
