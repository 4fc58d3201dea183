package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pickleclub/reservation-backend/internal/api"
	"github.com/pickleclub/reservation-backend/internal/auth"
	"github.com/pickleclub/reservation-backend/internal/court"
	"github.com/pickleclub/reservation-backend/internal/member"
	"github.com/pickleclub/reservation-backend/internal/notice"
	"github.com/pickleclub/reservation-backend/internal/photo"
	"github.com/pickleclub/reservation-backend/internal/pkg/storage"
	"github.com/pickleclub/reservation-backend/internal/reservation"
	"github.com/pickleclub/reservation-backend/internal/timeslot"
	"github.com/pickleclub/reservation-backend/internal/venue"
)

// Config holds the dependencies and settings required to start the service.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
	PhotoDir     string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer wires every module together and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	photoStore, err := storage.NewLocalStorage(cfg.PhotoDir)
	if err != nil {
		return nil, err
	}

	// Member module
	memberRepo := member.NewPgxRepository(cfg.DBPool)
	memberService := member.NewService(memberRepo, passwordHasher)

	// Venue module
	venueRepo := venue.NewPgxRepository(cfg.DBPool)
	venueService := venue.NewService(venueRepo)

	// Court module
	courtRepo := court.NewPgxRepository(cfg.DBPool)
	courtService := court.NewService(courtRepo, venueService)

	// Time slot module
	slotRepo := timeslot.NewPgxRepository(cfg.DBPool)
	slotService := timeslot.NewService(slotRepo)

	// Reservation module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(reservationRepo, courtService, slotService, memberService)

	// Notice module
	noticeRepo := notice.NewPgxRepository(cfg.DBPool)
	noticeService := notice.NewService(noticeRepo)

	// Photo module
	photoRepo := photo.NewPgxRepository(cfg.DBPool)
	photoService := photo.NewService(photoRepo, courtService, photoStore)

	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		MemberService:      memberService,
		VenueService:       venueService,
		CourtService:       courtService,
		TimeSlotService:    slotService,
		ReservationService: reservationService,
		NoticeService:      noticeService,
		PhotoService:       photoService,
		JWTManager:         jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
