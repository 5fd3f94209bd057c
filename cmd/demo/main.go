// cmd/demo renders a few voucher screens to stdout without the HTTP
// layer, for eyeballing normalization and theming during development.
package main

import (
	"context"
	"fmt"

	"voucher-pass/internal/domain/model"
	"voucher-pass/internal/usecase"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.Nop()
	uc := usecase.NewViewUseCase(&logger)

	scenarios := []struct {
		title string
		bag   model.Params
		width int
	}{
		{"all defaults", model.Params{}, 360},
		{"expired voucher from a shared link", model.Params{
			model.ParamCode:         "VOU-1",
			model.ParamStatus:       "expired",
			model.ParamMaxPax:       "4",
			model.ParamRemainingPax: "2",
		}, 300},
		{"garbage pax field resolves to zero", model.Params{model.ParamMaxPax: "abc"}, 360},
		{"unrecognized status folds into expired visuals", model.Params{model.ParamStatus: "on-hold"}, 360},
	}

	for _, sc := range scenarios {
		st := uc.Build(context.Background(), sc.bag, sc.width)
		fmt.Printf("== %s ==\n", sc.title)
		fmt.Printf("%s  color=%s  qr=%dpx  opacity=%.2f\n", st.Theme.Label, st.Theme.ColorToken, st.QRSizePx, st.Theme.QROpacity)
		for _, row := range st.Rows {
			fmt.Printf("  %-14s %s\n", row.Label, row.Value)
		}
		fmt.Println()
	}
}
