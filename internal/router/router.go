package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"restopanel/internal/bus"
	"restopanel/internal/config"
	"restopanel/internal/datamode"
	"restopanel/internal/handler"
	"restopanel/internal/middleware"
	"restopanel/internal/permission"
	"restopanel/internal/registry"
	"restopanel/internal/repository"
	"restopanel/internal/service"
	"restopanel/internal/worker"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Store ← mock/remote bundles.
// db is nil when no remote backend is configured; the panel then runs
// mock-only and remote mode answers 503.
func New(cfg *config.Config, db *mongo.Database, rdb *redis.Client, b *bus.Bus, modes *datamode.Store) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Data layer ───────────────────────────────────────────────────────────
	mem := repository.NewMemoryBundle()
	if err := repository.SeedFixtures(mem); err != nil {
		log.Fatal().Err(err).Msg("failed to seed mock fixtures")
	}
	var remote *repository.Bundle
	if db != nil {
		remote = repository.NewMongoBundle(db)
	}
	store := repository.NewStore(modes, mem, remote)
	reg := registry.New(store, b)

	// ── Services ─────────────────────────────────────────────────────────────
	dispatcher := worker.NewDispatcher(rdb)

	authSvc := service.NewAuthService(store, cfg)
	restaurantSvc := service.NewRestaurantService(store)
	reservationSvc := service.NewReservationService(store, dispatcher)
	tableSvc := service.NewTableService(store)
	staffSvc := service.NewStaffService(store)
	orderSvc := service.NewOrderService(store)
	storageSvc := service.NewStorageService(store, db)
	onboardingSvc := service.NewOnboardingService(rdb, authSvc, restaurantSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	restaurantsH := handler.NewRestaurantHandler(restaurantSvc, reg)
	reservationsH := handler.NewReservationHandler(reservationSvc)
	tablesH := handler.NewTableHandler(tableSvc, reg)
	staffH := handler.NewStaffHandler(staffSvc, reg)
	ordersH := handler.NewOrderHandler(orderSvc)
	imagesH := handler.NewImageHandler(storageSvc)
	datamodeH := handler.NewDataModeHandler(modes)
	onboardingH := handler.NewOnboardingHandler(onboardingSvc)
	reportsH := handler.NewReportHandler(store, cfg.PDFStoragePath)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, modes))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/signin", middleware.LoginRateLimiter(), authH.SignIn)
		auth.POST("/signup", authH.SignUp)
	}

	// Onboarding wizard — public, it creates the very first account
	onboarding := r.Group("/v1/onboarding")
	{
		onboarding.POST("", onboardingH.Start)
		onboarding.GET("/:id", onboardingH.Get)
		onboarding.PUT("/:id/account", onboardingH.SubmitAccount)
		onboarding.PUT("/:id/restaurant", onboardingH.SubmitRestaurant)
		onboarding.PUT("/:id/details", onboardingH.SubmitDetails)
		onboarding.PUT("/:id/images", onboardingH.SubmitImages)
		onboarding.POST("/:id/complete", onboardingH.Complete)
	}

	// Served images — public, URLs are embedded in restaurant records
	r.GET("/v1/images/:id", imagesH.Serve)

	// Protected routes — capability checks live here, not in the client
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		v1.POST("/auth/signout", authH.SignOut)
		v1.GET("/auth/me", authH.Me)
		v1.GET("/auth/permissions", authH.Permissions)

		settings := middleware.RequirePermission(func(p permission.Capabilities) bool { return p.CanManageSettings })

		mode := v1.Group("/datamode", settings)
		{
			mode.GET("", datamodeH.Get)
			mode.PUT("", datamodeH.Set)
			mode.POST("/toggle", datamodeH.Toggle)
		}

		restaurants := v1.Group("/restaurants")
		{
			restaurants.POST("", restaurantsH.Create)
			restaurants.GET("", restaurantsH.ListMine)
			restaurants.GET("/:id", restaurantsH.Get)
			restaurants.GET("/:id/overview", middleware.RequirePermission(permission.Capabilities.Any), restaurantsH.Overview)
			restaurants.PUT("/:id", settings, restaurantsH.Update)

			menu := middleware.RequirePermission(func(p permission.Capabilities) bool { return p.CanManageMenu })
			restaurants.PUT("/:id/menu-groups", menu, restaurantsH.PutMenuGroup)
			restaurants.DELETE("/:id/menu-groups/:title", menu, restaurantsH.DeleteMenuGroup)
		}

		resPerm := middleware.RequirePermission(func(p permission.Capabilities) bool { return p.CanManageReservations })
		reservations := v1.Group("/reservations", resPerm)
		{
			reservations.POST("", reservationsH.Create)
			reservations.GET("", reservationsH.List)
			reservations.GET("/lookup", reservationsH.Lookup)
			reservations.GET("/:id", reservationsH.Get)
			reservations.PUT("/:id", reservationsH.Update)
			reservations.PUT("/:id/table", reservationsH.AssignTable)
			reservations.POST("/:id/confirm", reservationsH.Confirm)
			reservations.POST("/:id/seat", reservationsH.Seat)
			reservations.POST("/:id/complete", reservationsH.Complete)
			reservations.POST("/:id/cancel", reservationsH.Cancel)
			reservations.POST("/:id/no-show", reservationsH.MarkNoShow)
		}

		floorPerm := middleware.RequirePermission(func(p permission.Capabilities) bool { return p.CanManageFloorPlan })
		tables := v1.Group("/tables", floorPerm)
		{
			tables.POST("", tablesH.Create)
			tables.GET("", tablesH.List)
			tables.GET("/:id", tablesH.Get)
			tables.PUT("/:id", tablesH.Update)
			tables.PUT("/:id/status", tablesH.SetStatus)
			tables.DELETE("/:id", tablesH.Delete)
		}

		staffPerm := middleware.RequirePermission(func(p permission.Capabilities) bool { return p.CanManageStaff })
		staff := v1.Group("/staff", staffPerm)
		{
			staff.POST("", staffH.Add)
			staff.GET("", staffH.List)
			staff.PUT("/:id", staffH.Update)
			staff.DELETE("/:id", staffH.Deactivate)
			staff.PATCH("/:id/reactivate", staffH.Reactivate)
		}

		posPerm := middleware.RequirePermission(func(p permission.Capabilities) bool { return p.CanAccessPOS })
		orders := v1.Group("/orders", posPerm)
		{
			orders.POST("", ordersH.Open)
			orders.GET("", ordersH.List)
			orders.GET("/:id", ordersH.Get)
			orders.POST("/:id/items", ordersH.AddItem)
			orders.DELETE("/:id/items", ordersH.RemoveItem)
			orders.POST("/:id/pay", ordersH.Pay)
			orders.POST("/:id/cancel", ordersH.Cancel)
		}

		billingPerm := middleware.RequirePermission(func(p permission.Capabilities) bool { return p.CanViewBilling })
		v1.GET("/orders/billing-summary", billingPerm, ordersH.BillingSummary)

		v1.POST("/images", settings, imagesH.Upload)
		v1.GET("/reports/daysheet", resPerm, reportsH.DaySheet)
	}

	// Swagger UI — only enabled outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
