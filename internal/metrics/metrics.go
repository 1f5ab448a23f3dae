package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptstudio_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ptstudio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	BookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptstudio_bookings_total",
			Help: "Total number of booking attempts by outcome",
		},
		[]string{"outcome"},
	)

	BookingCancellationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptstudio_booking_cancellations_total",
			Help: "Total number of booking cancellations by credit policy",
		},
		[]string{"policy"},
	)

	WaitlistJoinsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ptstudio_waitlist_joins_total",
			Help: "Total number of waitlist joins",
		},
	)

	CreditPurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptstudio_credit_purchases_total",
			Help: "Total number of credit pack purchases",
		},
		[]string{"pack"},
	)

	CreditsIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptstudio_credits_issued_total",
			Help: "Credits added to client balances by transaction type",
		},
		[]string{"type"},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ptstudio_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ptstudio_email_queue_length",
			Help: "Current length of email queue",
		},
	)

	MessagesSentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ptstudio_messages_sent_total",
			Help: "Total number of chat messages sent",
		},
	)

	MessageStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ptstudio_message_streams",
			Help: "Open realtime message streams",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordBooking(outcome string) {
	BookingsTotal.WithLabelValues(outcome).Inc()
}

func RecordBookingCancellation(policy string) {
	BookingCancellationsTotal.WithLabelValues(policy).Inc()
}

func RecordWaitlistJoin() {
	WaitlistJoinsTotal.Inc()
}

func RecordCreditPurchase(pack string, credits int) {
	CreditPurchasesTotal.WithLabelValues(pack).Inc()
	CreditsIssuedTotal.WithLabelValues("purchase").Add(float64(credits))
}

func RecordCreditsIssued(txType string, credits int) {
	if credits <= 0 {
		return
	}
	CreditsIssuedTotal.WithLabelValues(txType).Add(float64(credits))
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}

func RecordMessage() {
	MessagesSentTotal.Inc()
}
