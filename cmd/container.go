package main

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/jobdeck/jobdeck/board/application/applicationapi"
	"github.com/jobdeck/jobdeck/board/application/applicationinfra"
	"github.com/jobdeck/jobdeck/board/application/applicationsrv"
	"github.com/jobdeck/jobdeck/board/job/jobapi"
	"github.com/jobdeck/jobdeck/board/job/jobinfra"
	"github.com/jobdeck/jobdeck/board/job/jobsrv"
	"github.com/jobdeck/jobdeck/board/wizard/wizardapi"
	"github.com/jobdeck/jobdeck/board/wizard/wizardinfra"
	"github.com/jobdeck/jobdeck/board/wizard/wizardsrv"
	"github.com/jobdeck/jobdeck/pkg/fsx"
	"github.com/jobdeck/jobdeck/pkg/fsx/fsxs3"
	"github.com/jobdeck/jobdeck/pkg/iam/auth"
	"github.com/jobdeck/jobdeck/pkg/iam/auth/authinfra"
	"github.com/jobdeck/jobdeck/pkg/iam/user/userinfra"
	"github.com/jobdeck/jobdeck/pkg/logx"
	_ "github.com/lib/pq"
)

// Container holds all application dependencies
type Container struct {
	Config *Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Auth
	TokenService   auth.TokenService
	AuthHandlers   *auth.AuthHandlers
	AuthMiddleware *auth.TokenMiddleware

	// Board Services
	JobService         *jobsrv.JobService
	ApplicationService *applicationsrv.ApplicationService
	WizardService      *wizardsrv.WizardService

	// API Handlers
	JobHandlers         *jobapi.Handlers
	ApplicationHandlers *applicationapi.Handlers
	WizardHandlers      *wizardapi.Handlers
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *Config) *Container {
	c := &Container{Config: cfg}
	c.initInfrastructure()
	c.initServices()
	return c
}

func (c *Container) initInfrastructure() {
	// 1. Database Connection
	db, err := sqlx.Connect("postgres", c.Config.DSN())
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	c.DB = db

	// 2. Redis Connection
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Addr,
		Password: c.Config.Redis.Pass,
		DB:       0,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Warnf("Failed to connect to Redis: %v", err)
	}

	// 3. AWS S3 Configuration
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(c.Config.S3.Region))
	if err != nil {
		logx.Fatalf("unable to load SDK config, %v", err)
	}
	c.S3Client = s3.NewFromConfig(cfg)
	c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, c.Config.S3.Bucket, c.Config.S3.Prefix).
		WithRegion(c.Config.S3.Region)

	// 4. JWT Secret
	if c.Config.JWT.Secret == "" {
		logx.Warn("JWT_SECRET is not set, using default (unsafe for production)")
		c.Config.JWT.Secret = "super-secret-key-please-change-me-in-production"
	}
}

func (c *Container) initServices() {
	// --- Repositories ---
	userRepo := userinfra.NewPostgresUserRepository(c.DB)
	jobRepo := jobinfra.NewPostgresJobRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)

	// --- Redis-backed stores ---
	listingCache := applicationinfra.NewRedisListingCache(c.Redis)
	sessionStore := wizardinfra.NewRedisSessionStore(c.Redis)

	// --- Auth ---
	passwordSvc := authinfra.NewBcryptPasswordService()
	c.TokenService = auth.NewJWTService(
		c.Config.JWT.Secret,
		c.Config.JWT.TTL,
		c.Config.JWT.Issuer,
	)
	c.AuthHandlers = auth.NewAuthHandlers(userRepo, passwordSvc, c.TokenService)
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService)

	// --- Domain Services ---
	c.JobService = jobsrv.NewJobService(jobRepo, userRepo)
	c.ApplicationService = applicationsrv.NewApplicationService(
		applicationRepo,
		c.FileSystem,
		listingCache,
	)
	c.WizardService = wizardsrv.NewWizardService(
		sessionStore,
		jobRepo,
		c.FileSystem,
		c.ApplicationService,
	)

	// --- Handlers ---
	c.JobHandlers = jobapi.NewHandlers(c.JobService)
	c.ApplicationHandlers = applicationapi.NewHandlers(c.ApplicationService)
	c.WizardHandlers = wizardapi.NewHandlers(c.WizardService)
}
