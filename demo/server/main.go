package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	h3abi "github.com/tingold/orb-h3abi"
	"github.com/tingold/orb-h3abi/internal/logging"
)

type config struct {
	Listen    string
	ClientDir string
	MaxK      int
}

func loadConfig() config {
	cfg := config{
		Listen:    ":8080",
		ClientDir: filepath.Join("..", "client"),
		MaxK:      32,
	}
	if v := os.Getenv("H3ABI_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("H3ABI_CLIENT_DIR"); v != "" {
		cfg.ClientDir = v
	}
	if v, err := strconv.Atoi(os.Getenv("H3ABI_MAX_K")); err == nil && v >= 0 {
		cfg.MaxK = v
	}
	return cfg
}

var errBadQuery = errors.New("lat, lng, res and k are required numbers")

type diskQuery struct {
	lat, lng float64
	res, k   int
}

func parseDiskQuery(r *http.Request, maxK int) (diskQuery, error) {
	q := r.URL.Query()
	var (
		dq   diskQuery
		errs []error
		err  error
	)
	dq.lat, err = strconv.ParseFloat(q.Get("lat"), 64)
	errs = append(errs, err)
	dq.lng, err = strconv.ParseFloat(q.Get("lng"), 64)
	errs = append(errs, err)
	dq.res, err = strconv.Atoi(q.Get("res"))
	errs = append(errs, err)
	dq.k, err = strconv.Atoi(q.Get("k"))
	errs = append(errs, err)
	if errors.Join(errs...) != nil {
		return dq, errBadQuery
	}
	if dq.k > maxK {
		dq.k = maxK
	}
	return dq, nil
}

// diskCells returns the non-empty slots of the grid disk around the query
// point.
func diskCells(dq diskQuery) ([]h3abi.Index, h3abi.Code) {
	var origin h3abi.Index
	ll := h3abi.LatLng{Lat: h3abi.DegsToRads(dq.lat), Lng: h3abi.DegsToRads(dq.lng)}
	if c := h3abi.LatLngToCell(ll, dq.res, &origin); c != h3abi.OK {
		return nil, c
	}
	var size int64
	if c := h3abi.MaxGridDiskSize(dq.k, &size); c != h3abi.OK {
		return nil, c
	}
	out := make([]h3abi.Index, size)
	if c := h3abi.GridDisk(origin, dq.k, out); c != h3abi.OK {
		return nil, c
	}
	cells := out[:0]
	for _, h := range out {
		if h != h3abi.Null {
			cells = append(cells, h)
		}
	}
	return cells, h3abi.OK
}

type layerWriter func(w io.Writer, cells []h3abi.Index, opts *h3abi.Options) error

func fgbHandler(name string, cfg config, write layerWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestsTotal.WithLabelValues(name).Inc()
		defer func() {
			requestDurationMs.WithLabelValues(name).Observe(float64(time.Since(start).Milliseconds()))
		}()

		dq, err := parseDiskQuery(r, cfg.MaxK)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		cells, code := diskCells(dq)
		resultCodesTotal.WithLabelValues(code.String()).Inc()
		if code != h3abi.OK {
			slog.Debug("disk_query_failed", "endpoint", name, "code", code)
			http.Error(w, code.String(), http.StatusUnprocessableEntity)
			return
		}

		var buf bytes.Buffer
		opts := &h3abi.Options{
			Name:         name,
			Description:  "grid disk of radius " + strconv.Itoa(dq.k),
			IncludeIndex: true,
			CRS:          h3abi.WGS84(),
		}
		if err := write(&buf, cells, opts); err != nil {
			slog.Error("fgb_write_error", "endpoint", name, "err", err)
			http.Error(w, "cannot encode layer", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/octet-stream")
		w.Header().Set("Access-Control-Allow-Origin", "*")
		_, _ = w.Write(buf.Bytes())
	}
}

func main() {
	_ = godotenv.Load(".env")
	l := logging.Setup()
	cfg := loadConfig()

	mux := http.NewServeMux()
	mux.Handle("/disk.fgb", fgbHandler("disk", cfg, h3abi.WriteCells))
	mux.Handle("/outline.fgb", fgbHandler("outline", cfg, h3abi.WriteOutline))
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", http.FileServer(http.Dir(cfg.ClientDir)))

	l.Info("server_start", "listen", cfg.Listen, "client_dir", cfg.ClientDir, "max_k", cfg.MaxK)
	if err := http.ListenAndServe(cfg.Listen, mux); err != nil {
		l.Error("server_stopped", "err", err)
		os.Exit(1)
	}
}
