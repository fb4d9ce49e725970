package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"recordlabel-backend/internal/config"
	catalogHandler "recordlabel-backend/internal/domains/catalog/handler"
	catalogModel "recordlabel-backend/internal/domains/catalog/model"
	catalogRepo "recordlabel-backend/internal/domains/catalog/repository"
	catalogService "recordlabel-backend/internal/domains/catalog/service"
	linkHandler "recordlabel-backend/internal/domains/link/handler"
	linkModel "recordlabel-backend/internal/domains/link/model"
	linkRepo "recordlabel-backend/internal/domains/link/repository"
	linkService "recordlabel-backend/internal/domains/link/service"
	infraCache "recordlabel-backend/internal/infrastructure/cache"
	"recordlabel-backend/internal/infrastructure/database"
	"recordlabel-backend/internal/shared/authz"
	"recordlabel-backend/pkg/cache"
	"recordlabel-backend/pkg/jwt"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa tất cả dependencies của application.
// Lifecycle: singleton, built once by NewContainer and torn down by Cleanup.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	Authorizer authz.Authorizer

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	LabelRepo      catalogRepo.LabelRepository
	ArtistRepo     catalogRepo.ArtistRepository
	ReleaseRepo    catalogRepo.ReleaseRepository
	TrackRepo      catalogRepo.TrackRepository
	PageRepo       catalogRepo.PageRepository
	MembershipRepo catalogRepo.MembershipRepository
	Lookup         catalogModel.Lookup
	MusicLinkRepo  linkRepo.Repository[linkModel.MusicService]
	SocialLinkRepo linkRepo.Repository[linkModel.SocialMedia]

	// ========================================
	// SERVICE LAYER
	// ========================================
	CatalogService catalogService.ServiceInterface
	LinkService    linkService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================
	CatalogHandler *catalogHandler.CatalogHandler
	LinkHandler    *linkHandler.LinkHandler
}

// NewContainer builds the dependency graph.
//
// QUAN TRỌNG: thứ tự initialization:
// 1. Config
// 2. Infrastructure (DB, Cache, JWT)
// 3. Repositories
// 4. Services
// 5. Handlers
func NewContainer(ctx context.Context) (*Container, error) {
	log.Info().Msg("[CONTAINER] Initializing")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("env", cfg.App.Environment).Msg("[CONTAINER] Config loaded")

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.Connect(connectCtx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(connectCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	c.Cache = newCache(ctx, cfg)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)
	c.Authorizer = authz.PermissionChecker{}

	// ========================================
	// STEP 4-6: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("[CONTAINER] Initialized successfully")
	return c, nil
}

// newCache connects Redis when REDIS_HOST is set. Redis failure is not
// critical: the in-process cache takes over.
func newCache(ctx context.Context, cfg *config.Config) cache.Cache {
	if cfg.Redis.Host == "" {
		log.Info().Msg("[CONTAINER] REDIS_HOST not set, using in-memory cache")
		return infraCache.NewMemoryCache(cfg.Cache.TTL, infraCache.DefaultCleanupInterval)
	}

	rc := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB, cfg.Cache.TTL)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rc.Connect(pingCtx); err != nil {
		log.Warn().Err(err).Msg("[CONTAINER] Redis connection failed (non-critical), using in-memory cache")
		_ = rc.Close()
		return infraCache.NewMemoryCache(cfg.Cache.TTL, infraCache.DefaultCleanupInterval)
	}
	return rc
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.LabelRepo = catalogRepo.NewLabelRepository(pool, c.Cache)
	c.ArtistRepo = catalogRepo.NewArtistRepository(pool)
	c.ReleaseRepo = catalogRepo.NewReleaseRepository(pool)
	c.TrackRepo = catalogRepo.NewTrackRepository(pool)
	c.PageRepo = catalogRepo.NewPageRepository(pool)
	c.MembershipRepo = catalogRepo.NewMembershipRepository(pool)
	c.Lookup = catalogRepo.NewPostgresLookup(pool)

	c.MusicLinkRepo = linkRepo.NewPostgresRepository(pool, linkModel.MusicServices)
	c.SocialLinkRepo = linkRepo.NewPostgresRepository(pool, linkModel.SocialMediaServices)
}

func (c *Container) initServices() {
	c.CatalogService = catalogService.NewCatalogService(catalogService.Dependencies{
		Labels:      c.LabelRepo,
		Artists:     c.ArtistRepo,
		Releases:    c.ReleaseRepo,
		Tracks:      c.TrackRepo,
		Pages:       c.PageRepo,
		Memberships: c.MembershipRepo,
		Lookup:      c.Lookup,
		Authorizer:  c.Authorizer,
	})

	// Cross-domain: links resolve artists through the catalog's visibility rules.
	c.LinkService = linkService.NewLinkService(c.CatalogService, c.MusicLinkRepo, c.SocialLinkRepo, c.Authorizer)
}

func (c *Container) initHandlers() {
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService, c.Authorizer)
	c.LinkHandler = linkHandler.NewLinkHandler(c.LinkService)
}

// Cleanup dọn dẹp resources khi shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
		log.Info().Msg("[CONTAINER] Database connections closed")
	}

	if rc, ok := c.Cache.(*infraCache.RedisClient); ok {
		if err := rc.Close(); err != nil {
			log.Warn().Err(err).Msg("[CONTAINER] Failed to close Redis")
		} else {
			log.Info().Msg("[CONTAINER] Redis connections closed")
		}
	}
}
