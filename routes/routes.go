package routes

import (
	"time"

	"github.com/VinitO1/Food-Order-Catering/configs"
	"github.com/VinitO1/Food-Order-Catering/controllers"
	"github.com/VinitO1/Food-Order-Catering/middlewares"
	"github.com/VinitO1/Food-Order-Catering/pkg/pricing"
	"github.com/VinitO1/Food-Order-Catering/repository"
	"github.com/VinitO1/Food-Order-Catering/services"
	"github.com/VinitO1/Food-Order-Catering/ws"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) *services.StatusWorker {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	cartSvc := services.NewCartService(db, cartRepo, restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, cartSvc,
		pricing.Rates{TaxRate: cfg.TaxRate, ServiceFee: cfg.ServiceFee, DeliveryFee: cfg.DeliveryFee},
		cfg.ApproveAfter, cfg.DeliverAfter)
	cateringSvc := services.NewCateringService(db, restRepo)
	contactSvc := services.NewContactService(db)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	cateringCtrl := controllers.NewCateringController(cateringSvc)
	contactCtrl := controllers.NewContactController(contactSvc)
	statusStream := ws.NewStatusStream(orderSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")
	wsAuth := middlewares.WSAuthMiddleware(cfg.JWTSecret)
	formLimit := middlewares.RateLimitMiddleware(rate.Every(10*time.Second), 3)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
		})

		// Auth
		a := api.Group("/auth")
		{
			a.POST("/register", authCtrl.Register)
			a.POST("/login", authCtrl.Login)
			a.GET("/me", auth, authCtrl.Me)
		}

		// Storefront (public)
		api.GET("/restaurants", restCtrl.List)
		api.GET("/restaurants/:id", restCtrl.Detail)
		api.GET("/restaurants/:id/menu", restCtrl.Menu)
		api.POST("/contact", formLimit, contactCtrl.Submit)

		// Cart
		cart := api.Group("/cart", auth)
		{
			cart.GET("", cartCtrl.Get)
			cart.POST("/add", cartCtrl.Add)
			cart.PUT("/update/:id", cartCtrl.Update)
			cart.DELETE("/remove/:id", cartCtrl.Remove)
			cart.DELETE("", cartCtrl.Clear)
		}

		// Orders
		orders := api.Group("/orders", auth)
		{
			orders.POST("", orderCtrl.Place)
			orders.GET("", orderCtrl.List)
			orders.GET("/:id", orderCtrl.Detail)
			orders.POST("/:id/cancel", orderCtrl.Cancel)
		}

		// Catering
		catering := api.Group("/catering", auth, formLimit)
		{
			catering.POST("", cateringCtrl.Submit)
			catering.GET("", cateringCtrl.List)
		}

		// Staff inbox
		admin := api.Group("/admin", adminOnly)
		{
			admin.GET("/contact", contactCtrl.List)
		}
	}

	// Browsers cannot attach headers to a websocket handshake, so this
	// route takes its token from the query string.
	r.GET("/ws/orders/:id/status", wsAuth, statusStream.Serve)

	return services.NewStatusWorker(db, orderRepo, cfg.WorkerPoll, cfg.DeliverAfter)
}
