package adapter

import "context"

// QRSymbolRenderer is the port for the QR rendering engine. The presentation
// core treats the engine as a black box: it hands over the voucher code
// string and a pixel size and gets back a drawn symbol.
//
// Implementations may reject inputs the engine cannot draw (empty data, or a
// non-positive size produced by a very narrow viewport). That policy belongs
// to the collaborator; the core passes its computed size through unchanged.
type QRSymbolRenderer interface {
	// RenderPNG encodes data into a sizePx×sizePx PNG image.
	RenderPNG(ctx context.Context, data string, sizePx int) ([]byte, error)
}
