package web

import (
	"html/template"
	"net/http"

	"voucher-pass/internal/usecase"
)

var screenPage = template.Must(template.New("voucher").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width,initial-scale=1" />
<title>{{.Label}}</title>
<style>
body{font-family:system-ui,Arial,sans-serif;margin:2rem;background:#f7f7f8;}
.card{max-width:420px;margin:0 auto;border:1px solid #ddd;border-radius:12px;padding:24px;background:#fff;}
.header{border-radius:8px;padding:12px 16px;color:#fff;text-align:center;font-size:18px;font-weight:600;}
.qr{display:flex;justify-content:center;margin:20px 0;}
.row{display:flex;justify-content:space-between;padding:8px 0;border-bottom:1px solid #eee;font-size:14px;}
.row:last-child{border-bottom:none;}
.key{color:#666;}
.name{margin:16px 0 4px;font-size:16px;font-weight:600;text-align:center;}
.back{display:inline-block;margin-top:16px;padding:10px 16px;border-radius:8px;border:1px solid #888;text-decoration:none;color:#333;}
</style>
</head>
<body>
<div class="card">
  <div class="header" style="background:{{.Color}}">{{.Label}}</div>
  <div class="name">{{.Name}}</div>
  <div class="qr" style="opacity:{{.QROpacity}}">
    <img src="{{.QRURL}}" width="{{.QRSize}}" height="{{.QRSize}}" alt="QR for {{.Code}}" />
  </div>
  {{range .Rows}}
  <div class="row"><span class="key">{{.Label}}</span><span>{{.Value}}</span></div>
  {{end}}
  <a class="back" href="{{.BackURL}}">&larr; Back</a>
</div>
</body>
</html>`))

// pageModel feeds the detail screen template. The QR opacity lands in a
// CSS overlay around the <img>, never in the encode request itself.
type pageModel struct {
	Label     string
	Color     string
	Name      string
	Code      string
	QROpacity float64
	QRURL     string
	QRSize    int
	Rows      []usecase.DetailRow
	BackURL   string
}

func renderScreen(w http.ResponseWriter, code int, m pageModel) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_ = screenPage.Execute(w, m)
}
