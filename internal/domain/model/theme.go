package model

// Color tokens for the three theme variants.
const (
	colorActive   = "#2E7D32" // green
	colorRedeemed = "#071689" // deep blue
	colorNeutral  = "#6B7280" // gray, also the fallback for unknown statuses
)

// QR overlay opacities. Anything but an exactly-active voucher dims the symbol.
const (
	qrOpacityFull   = 1.0
	qrOpacityDimmed = 0.35
)

// Theme is the status-dependent presentation triple for the detail screen:
// header label, header color token, and the opacity overlaid on the QR symbol.
// The opacity is purely visual and never feeds the QR encoder.
type Theme struct {
	Label      string  `json:"label"`
	ColorToken string  `json:"color"`
	QROpacity  float64 `json:"qr_opacity"`
}

// ThemeFor maps a status to its theme. Total: unrecognized values share the
// expired branch instead of erroring, and only an exactly-active status keeps
// the symbol at full opacity.
func ThemeFor(s Status) Theme {
	switch s.Kind() {
	case KindActive:
		return Theme{Label: "Active Voucher", ColorToken: colorActive, QROpacity: qrOpacityFull}
	case KindRedeemed:
		return Theme{Label: "Redeemed Voucher", ColorToken: colorRedeemed, QROpacity: qrOpacityDimmed}
	default:
		return Theme{Label: "Expired Voucher", ColorToken: colorNeutral, QROpacity: qrOpacityDimmed}
	}
}
