// Package metrics exposes Prometheus collectors for the HTTP layer and for
// the quotation lifecycle.
package metrics

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "storefront"

var (
	quotationsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotations_created_total",
		Help:      "Quotations created, by origin (checkout, guest_checkout, builder).",
	}, []string{"origin"})

	stockCommits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_commits_total",
		Help:      "Quotations whose stock deduction was committed.",
	})

	notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Notification attempts by channel and outcome.",
	}, []string{"channel", "status"})
)

func init() {
	register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	register(collectors.NewGoCollector())
}

// register tolerates collectors that are already present in the default registry.
func register(c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		slog.Debug("Collector not registered", slog.String("error", err.Error()))
	}
}

func QuotationCreated(origin string) {
	quotationsCreated.WithLabelValues(origin).Inc()
}

func StockCommitted() {
	stockCommits.Inc()
}

func NotificationAttempt(channel, status string) {
	notifications.WithLabelValues(channel, status).Inc()
}

// RegisterDBStats exports the connection pool gauges of db.
func RegisterDBStats(db *sql.DB) {
	register(collectors.NewDBStatsCollector(db, namespace))
}

func Handler() http.Handler {
	return promhttp.Handler()
}
