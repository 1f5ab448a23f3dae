package server

import (
	"ptstudio/internal/analytics"
	"ptstudio/internal/auth"
	"ptstudio/internal/blockbooking"
	"ptstudio/internal/booking"
	"ptstudio/internal/config"
	"ptstudio/internal/credits"
	"ptstudio/internal/email"
	"ptstudio/internal/events"
	"ptstudio/internal/message"
	"ptstudio/internal/notification"
	"ptstudio/internal/pack"
	"ptstudio/internal/programme"
	"ptstudio/internal/referral"
	"ptstudio/internal/search"
	"ptstudio/internal/slot"
	"ptstudio/internal/storage"
	"ptstudio/internal/user"
	"ptstudio/internal/waitlist"
	"ptstudio/internal/workout"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Deps are the process-wide clients. DB and Email are required. Search and
// Storage are optional and must be left as nil interfaces when their
// backends are not configured. A nil Redis disables sign-out revocation and
// the message stream.
type Deps struct {
	DB        *sqlx.DB
	Redis     *redis.Client
	Email     *email.Service
	Publisher events.Publisher
	Search    search.ExerciseIndex
	Storage   storage.Store
}

type Services struct {
	Users         user.Service
	Notifications notification.Service
	Credits       credits.Service
	Referrals     referral.Service
	Packs         pack.Service
	Slots         slot.Service
	Bookings      booking.Service
	Waitlist      waitlist.Service
	BlockBookings blockbooking.Service
	Workouts      workout.Service
	Programmes    programme.Service
	Analytics     analytics.Service
	Messages      message.Service
	Revocations   auth.RevocationStore
}

func NewServices(cfg *config.Config, deps Deps) *Services {
	db := deps.DB
	loc := cfg.Location()

	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.Noop{}
	}

	var revocations auth.RevocationStore
	var broker message.Broker
	if deps.Redis != nil {
		revocations = auth.NewRedisRevocationStore(deps.Redis)
		broker = message.NewRedisBroker(deps.Redis)
	}

	notifications := notification.NewService(notification.NewRepository(db))
	referrals := referral.NewService(referral.NewRepository(db), cfg.ReferralBonusCredits, publisher, notifications)

	slotRepo := slot.NewRepository(db)
	waitlistSvc := waitlist.NewService(waitlist.NewRepository(db), slotRepo, notifications, deps.Email)
	bookings := booking.NewService(
		booking.NewRepository(db),
		cfg.CancellationWindow,
		deps.Email,
		notifications,
		waitlistSvc,
		publisher,
	)

	return &Services{
		Users: user.NewService(
			user.NewRepository(db),
			user.Tokens{AccessSecret: cfg.JWTSecret, RefreshSecret: cfg.JWTRefreshSecret},
			revocations,
			referrals,
			deps.Storage,
		),
		Notifications: notifications,
		Credits:       credits.NewService(credits.NewRepository(db), publisher, notifications),
		Referrals:     referrals,
		Packs:         pack.NewService(pack.NewRepository(db), referrals, publisher),
		Slots:         slot.NewService(slotRepo),
		Bookings:      bookings,
		Waitlist:      waitlistSvc,
		BlockBookings: blockbooking.NewService(blockbooking.NewRepository(db), slotRepo, bookings, loc),
		Workouts:      workout.NewService(workout.NewRepository(db), deps.Search),
		Programmes:    programme.NewService(programme.NewRepository(db), notifications, publisher),
		Analytics:     analytics.NewService(analytics.NewRepository(db), loc),
		Messages:      message.NewService(message.NewRepository(db), broker, notifications),
		Revocations:   revocations,
	}
}
