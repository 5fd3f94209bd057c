// cmd/link mints signed deep links into the voucher detail screen. It
// plays the navigation layer: whatever flags are omitted stay absent
// from the parameter bag, so the server's defaulting rules are
// observable end to end.
package main

import (
	"flag"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"voucher-pass/internal/domain/model"
	"voucher-pass/internal/infra/links"
	"voucher-pass/internal/infra/security"
)

// bagFlags maps CLI flag names to the bag keys the server reads.
var bagFlags = map[string]string{
	"name":          model.ParamName,
	"code":          model.ParamCode,
	"issuer":        model.ParamIssuer,
	"max-pax":       model.ParamMaxPax,
	"remaining-pax": model.ParamRemainingPax,
	"status":        model.ParamStatus,
}

func main() {
	key := flag.String("key", "", "HS256 signing key (required, must match links.signing_key)")
	encKey := flag.String("encrypt-key", "", "optional AES key (16/24/32 bytes) to seal the bag inside the token")
	base := flag.String("base", "http://localhost:8080", "service base URL")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	back := flag.String("back", "", "back target for the screen (rooted relative path)")
	width := flag.Int("viewport", 0, "viewportWidth hint; 0 leaves it to the server default")

	flag.String("name", "", "voucherName (omit to use the server default)")
	flag.String("code", "", "voucherCode")
	flag.String("issuer", "", "issuer")
	flag.String("max-pax", "", "maxPax, sent as a string and parsed server-side")
	flag.String("remaining-pax", "", "remainingPax, sent as a string and parsed server-side")
	flag.String("status", "", "status (active|redeemed|expired; anything else shows the expired visuals)")
	flag.Parse()

	if *key == "" {
		log.Fatal("-key is required")
	}

	// Only flags that were actually set become present bag keys; an
	// explicitly empty flag value stays present-and-empty.
	bag := model.Params{}
	flag.Visit(func(f *flag.Flag) {
		if bagKey, ok := bagFlags[f.Name]; ok {
			bag[bagKey] = f.Value.String()
		}
	})

	var sealer *security.Sealer
	if *encKey != "" {
		var err error
		sealer, err = security.NewSealer(*encKey)
		if err != nil {
			log.Fatalf("sealer: %v", err)
		}
	}

	codec := links.NewCodec(*key, 0, sealer)
	tok, err := codec.Mint(bag, *ttl)
	if err != nil {
		log.Fatalf("mint: %v", err)
	}

	u, err := url.Parse(*base)
	if err != nil {
		log.Fatalf("base url: %v", err)
	}
	u.Path = "/vouchers/view"
	q := url.Values{}
	q.Set("t", tok)
	if *back != "" {
		q.Set("back", *back)
	}
	if *width > 0 {
		q.Set("viewportWidth", strconv.Itoa(*width))
	}
	u.RawQuery = q.Encode()

	fmt.Println(u.String())
}
