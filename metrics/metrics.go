package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	eventsReceived = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "reacjilator_events_received_total", Help: "Reaction events received"},
		[]string{"transport"},
	)
	classificationSkips = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "reacjilator_classification_skips_total", Help: "Events ignored by the classifier"},
		[]string{"reason"},
	)
	fetchErrors = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "reacjilator_fetch_errors_total", Help: "Thread fetch failures"},
	)
	translations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "reacjilator_translations_total", Help: "Translation provider calls"},
		[]string{"status"},
	)
	replies = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "reacjilator_replies_total", Help: "Reply outcomes"},
		[]string{"outcome"},
	)
)

const (
	StatusOK    = "ok"
	StatusError = "error"

	ReplyPosted      = "posted"
	ReplyUnsupported = "unsupported"
	ReplyDuplicate   = "duplicate"
	ReplyError       = "error"
)

func init() {
	prometheus.MustRegister(eventsReceived, classificationSkips, fetchErrors, translations, replies)
}

// Handler exposes the default registry
func Handler() http.Handler {
	return promhttp.Handler()
}

func IncEventReceived(transport string) { eventsReceived.WithLabelValues(transport).Inc() }

func IncClassificationSkip(reason string) { classificationSkips.WithLabelValues(reason).Inc() }

func IncFetchError() { fetchErrors.Inc() }

func IncTranslation(status string) { translations.WithLabelValues(status).Inc() }

func IncReply(outcome string) { replies.WithLabelValues(outcome).Inc() }
