package model

import "strconv"

// Params is the raw, string-keyed parameter bag handed over by the navigation
// layer. A key may be absent, or present with any string value including "".
// The two cases are distinguishable and resolve differently; see Normalize.
type Params map[string]string

// Bag keys recognized by Normalize. Anything else in the bag is ignored.
const (
	ParamName         = "voucherName"
	ParamCode         = "voucherCode"
	ParamIssuer       = "issuer"
	ParamMaxPax       = "maxPax"
	ParamRemainingPax = "remainingPax"
	ParamStatus       = "status"
)

// Defaults applied when a field is absent from the bag.
const (
	DefaultName         = "VIP Group Access"
	DefaultCode         = "VOU-992-AA"
	DefaultIssuer       = "ADNU Athletics"
	DefaultMaxPax       = 10
	DefaultRemainingPax = 7
)

// Status is a voucher lifecycle status. The raw string from the bag is kept
// verbatim: arbitrary values are legal and classified through Kind, so the
// original casing stays available for label formatting.
type Status string

const (
	StatusActive   Status = "active"
	StatusRedeemed Status = "redeemed"
	StatusExpired  Status = "expired"
)

// StatusKind is the closed classification of a Status. Any raw value other
// than the three named ones maps to KindOther, which shares the expired
// visual branch.
type StatusKind int

const (
	KindActive StatusKind = iota
	KindRedeemed
	KindExpired
	KindOther
)

// Kind classifies the status. Total over all strings.
func (s Status) Kind() StatusKind {
	switch s {
	case StatusActive:
		return KindActive
	case StatusRedeemed:
		return KindRedeemed
	case StatusExpired:
		return KindExpired
	default:
		return KindOther
	}
}

// String returns the kind's wire/metric label.
func (k StatusKind) String() string {
	switch k {
	case KindActive:
		return "active"
	case KindRedeemed:
		return "redeemed"
	case KindExpired:
		return "expired"
	default:
		return "other"
	}
}

// VoucherView is the fully-typed voucher record a single render works from.
// It is rebuilt from the bag on every request and never cached or shared
// across renders.
type VoucherView struct {
	Name         string
	Code         string
	Issuer       string
	MaxPax       int
	RemainingPax int
	Status       Status
}

// Normalize resolves the raw bag into a VoucherView. It is total: every bag,
// including an empty or garbage one, yields a fully populated view and no
// error.
//
// Numeric fields are asymmetric on purpose: an absent field takes its default,
// while a present-but-unparsable one resolves to 0. The asymmetry is
// observable screen behavior; do not collapse the two cases.
func Normalize(p Params) VoucherView {
	return VoucherView{
		Name:         stringField(p, ParamName, DefaultName),
		Code:         stringField(p, ParamCode, DefaultCode),
		Issuer:       stringField(p, ParamIssuer, DefaultIssuer),
		MaxPax:       paxField(p, ParamMaxPax, DefaultMaxPax),
		RemainingPax: paxField(p, ParamRemainingPax, DefaultRemainingPax),
		Status:       statusField(p),
	}
}

// stringField takes the raw value only when present and non-empty.
func stringField(p Params, key, def string) string {
	if v, ok := p[key]; ok && v != "" {
		return v
	}
	return def
}

// paxField parses a base-10 pax count. Absent takes def; present but
// unparsable, or negative (pax counts cannot be), resolves to 0.
func paxField(p Params, key string, def int) int {
	v, ok := p[key]
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// statusField keeps whatever the bag says, with no membership check. Only
// absence defaults to active; a present empty string stays empty and lands in
// the expired visual branch.
func statusField(p Params) Status {
	if v, ok := p[ParamStatus]; ok {
		return Status(v)
	}
	return StatusActive
}
