package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	HTTPRequestsTotal.Reset()
	HTTPRequestDuration.Reset()

	RecordHTTPRequest("GET", "/bookings", "200", 0.5)

	count := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/bookings", "200"))
	assert.Equal(t, float64(1), count)
	assert.Equal(t, 1, testutil.CollectAndCount(HTTPRequestDuration))
}

func TestRecordHTTPRequestMultiple(t *testing.T) {
	HTTPRequestsTotal.Reset()

	RecordHTTPRequest("POST", "/auth/sign-in", "200", 0.1)
	RecordHTTPRequest("POST", "/auth/sign-in", "200", 0.2)
	RecordHTTPRequest("POST", "/auth/sign-in", "401", 0.05)

	successCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/sign-in", "200"))
	failCount := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("POST", "/auth/sign-in", "401"))

	assert.Equal(t, float64(2), successCount)
	assert.Equal(t, float64(1), failCount)
}

func TestRecordBooking(t *testing.T) {
	BookingsTotal.Reset()

	RecordBooking("booked")
	RecordBooking("booked")
	RecordBooking("insufficient_credits")

	assert.Equal(t, float64(2), testutil.ToFloat64(BookingsTotal.WithLabelValues("booked")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BookingsTotal.WithLabelValues("insufficient_credits")))
}

func TestRecordBookingCancellation(t *testing.T) {
	BookingCancellationsTotal.Reset()

	RecordBookingCancellation("refunded")
	RecordBookingCancellation("forfeited")
	RecordBookingCancellation("refunded")

	assert.Equal(t, float64(2), testutil.ToFloat64(BookingCancellationsTotal.WithLabelValues("refunded")))
	assert.Equal(t, float64(1), testutil.ToFloat64(BookingCancellationsTotal.WithLabelValues("forfeited")))
}

func TestRecordCreditPurchase(t *testing.T) {
	CreditPurchasesTotal.Reset()
	CreditsIssuedTotal.Reset()

	RecordCreditPurchase("10 pack", 11)

	assert.Equal(t, float64(1), testutil.ToFloat64(CreditPurchasesTotal.WithLabelValues("10 pack")))
	assert.Equal(t, float64(11), testutil.ToFloat64(CreditsIssuedTotal.WithLabelValues("purchase")))
}

func TestRecordCreditsIssued_IgnoresDebits(t *testing.T) {
	CreditsIssuedTotal.Reset()

	RecordCreditsIssued("refund", 1)
	RecordCreditsIssued("booking", -1)

	assert.Equal(t, float64(1), testutil.ToFloat64(CreditsIssuedTotal.WithLabelValues("refund")))
	assert.Equal(t, 1, testutil.CollectAndCount(CreditsIssuedTotal))
}

func TestRecordEmailMultipleTypes(t *testing.T) {
	EmailsSentTotal.Reset()

	RecordEmail("booking_confirmation", "success")
	RecordEmail("booking_confirmation", "failed")
	RecordEmail("waitlist", "success")

	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("booking_confirmation", "failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(EmailsSentTotal.WithLabelValues("waitlist", "success")))
}

func TestEmailQueueLength(t *testing.T) {
	EmailQueueLength.Set(10)
	assert.Equal(t, float64(10), testutil.ToFloat64(EmailQueueLength))

	EmailQueueLength.Set(0)
	assert.Equal(t, float64(0), testutil.ToFloat64(EmailQueueLength))
}

func TestMessageCounters(t *testing.T) {
	before := testutil.ToFloat64(MessagesSentTotal)
	RecordMessage()
	assert.Equal(t, before+1, testutil.ToFloat64(MessagesSentTotal))

	MessageStreams.Inc()
	MessageStreams.Dec()
	assert.Equal(t, float64(0), testutil.ToFloat64(MessageStreams))
}
