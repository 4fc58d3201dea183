package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/pickleclub/reservation-backend/internal/auth"
	"github.com/pickleclub/reservation-backend/internal/court"
	courtHttp "github.com/pickleclub/reservation-backend/internal/court/http"
	"github.com/pickleclub/reservation-backend/internal/member"
	memberHttp "github.com/pickleclub/reservation-backend/internal/member/http"
	"github.com/pickleclub/reservation-backend/internal/notice"
	noticeHttp "github.com/pickleclub/reservation-backend/internal/notice/http"
	"github.com/pickleclub/reservation-backend/internal/photo"
	photoHttp "github.com/pickleclub/reservation-backend/internal/photo/http"
	"github.com/pickleclub/reservation-backend/internal/reservation"
	reservationHttp "github.com/pickleclub/reservation-backend/internal/reservation/http"
	"github.com/pickleclub/reservation-backend/internal/timeslot"
	timeslotHttp "github.com/pickleclub/reservation-backend/internal/timeslot/http"
	"github.com/pickleclub/reservation-backend/internal/venue"
	venueHttp "github.com/pickleclub/reservation-backend/internal/venue/http"
)

// Config collects the services the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  []string

	MemberService      member.Service
	VenueService       venue.Service
	CourtService       court.Service
	TimeSlotService    timeslot.Service
	ReservationService reservation.Service
	NoticeService      notice.Service
	PhotoService       photo.Service

	JWTManager *auth.JWTManager
}

// NewRouter assembles global middleware and registers every module's routes
// under /v1.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:5173"}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	partnerMiddleware := RequirePartner(cfg.MemberService)

	memberHandler := memberHttp.NewHandler(cfg.MemberService, cfg.JWTManager)
	venueHandler := venueHttp.NewHandler(cfg.VenueService)
	courtHandler := courtHttp.NewHandler(cfg.CourtService)
	timeslotHandler := timeslotHttp.NewHandler(cfg.TimeSlotService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService)
	noticeHandler := noticeHttp.NewHandler(cfg.NoticeService)
	photoHandler := photoHttp.NewHandler(cfg.PhotoService)

	v1 := r.Group("/v1")
	{
		memberHttp.RegisterRoutes(v1, memberHandler, authMiddleware, partnerMiddleware)
		venueHttp.RegisterRoutes(v1, venueHandler, authMiddleware, partnerMiddleware)
		courtHttp.RegisterRoutes(v1, courtHandler, authMiddleware, partnerMiddleware)
		timeslotHttp.RegisterRoutes(v1, timeslotHandler, authMiddleware, partnerMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware)
		noticeHttp.RegisterRoutes(v1, noticeHandler, authMiddleware, partnerMiddleware)
		photoHttp.RegisterRoutes(v1, photoHandler, authMiddleware, partnerMiddleware)
	}

	return r
}
