package api

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/terraincognita07/vital/internal/db"
	"github.com/terraincognita07/vital/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repos     *db.Repositories
	auth      *services.AuthService
	summaries *services.SummaryService
	goals     *services.GoalService
	settings  *services.SettingsService
}

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	repos := db.NewRepositories(database)
	return &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
		repos:        repos,
		auth:         services.NewAuthService(repos.Users),
		summaries:    services.NewSummaryService(repos.Logs, repos.Summaries),
		goals:        services.NewGoalService(repos.Weights, repos.Logs),
		settings:     services.NewSettingsService(repos.Users),
	}
}

const (
	defaultAuthTokenTTL  = 7 * 24 * time.Hour
	rememberAuthTokenTTL = 30 * 24 * time.Hour
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}
