package email

import (
	"context"
	"fmt"
	"time"
)

const (
	KindBookingConfirmation = "booking_confirmation"
	KindCancellation        = "booking_cancellation"
	KindWaitlist            = "waitlist_place"
)

func (s *Service) SendBookingConfirmation(ctx context.Context, to, name, session string, when time.Time) error {
	subject := "Session booked - " + session
	body := fmt.Sprintf(`Hi %s,

Your session is booked.

Session: %s
Time: %s

One credit has been taken from your balance. You can cancel for a full
refund up to 48 hours before the start time.

- PT Studio`, name, session, when.In(s.loc).Format(timeLayout))

	return s.Send(ctx, to, name, KindBookingConfirmation, subject, body)
}

func (s *Service) SendCancellation(ctx context.Context, to, name, session string, when time.Time, refunded bool) error {
	subject := "Session cancelled - " + session
	creditLine := "Your credit has been returned to your balance."
	if !refunded {
		creditLine = "This was inside the 48 hour window, so the credit was not refunded."
	}

	body := fmt.Sprintf(`Hi %s,

Your session has been cancelled.

Session: %s
Time: %s

%s

- PT Studio`, name, session, when.In(s.loc).Format(timeLayout), creditLine)

	return s.Send(ctx, to, name, KindCancellation, subject, body)
}

func (s *Service) SendWaitlistPlace(ctx context.Context, to, name, session string, when time.Time) error {
	subject := "A place opened up - " + session
	body := fmt.Sprintf(`Hi %s,

A place has opened up in a session you are waiting for:

Session: %s
Time: %s

Places go to whoever books first, so open the app to grab it.

- PT Studio`, name, session, when.In(s.loc).Format(timeLayout))

	return s.Send(ctx, to, name, KindWaitlist, subject, body)
}
