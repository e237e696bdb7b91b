package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nikolayk812/klimatshop/internal/backup"
	"github.com/nikolayk812/klimatshop/internal/domain"
	"github.com/nikolayk812/klimatshop/internal/service"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BackupManager is the slice of the backup utility the HTTP surface delegates to.
type BackupManager interface {
	Create(ctx context.Context) (backup.Info, error)
	Restore(ctx context.Context) (map[string]int, error)
	GetStatus(ctx context.Context) (backup.Status, error)
}

type Server struct {
	router   *gin.Engine
	catalog  *service.Catalog
	cart     *service.Cart
	orders   *service.Orders
	feedback *service.Feedback
	backups  BackupManager
	pinger   Pinger
	log      *zap.SugaredLogger
}

func NewServer(catalog *service.Catalog, cart *service.Cart, orders *service.Orders, feedback *service.Feedback, backups BackupManager, pinger Pinger, logger *zap.SugaredLogger) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	router := gin.Default()
	router.Use(corsMiddleware())

	server := &Server{
		router:   router,
		catalog:  catalog,
		cart:     cart,
		orders:   orders,
		feedback: feedback,
		backups:  backups,
		pinger:   pinger,
		log:      logger,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/", s.root)
		api.GET("/health", s.healthCheck)

		api.GET("/products", s.listProducts)
		api.GET("/products/:id", s.getProduct)
		api.POST("/products", s.createProduct)
		api.DELETE("/products/:id", s.deleteProduct)

		api.GET("/cart", s.getCart)
		api.POST("/cart", s.addToCart)
		api.DELETE("/cart/:id", s.removeFromCart)
		api.DELETE("/cart", s.clearCart)

		api.POST("/feedback", s.submitFeedback)
		api.POST("/orders", s.createOrder)

		api.GET("/projects", s.listProjects)
		api.POST("/projects", s.createProject)
		api.DELETE("/projects/:id", s.deleteProject)

		api.POST("/init-data", s.initData)

		api.POST("/backup/create", s.createBackup)
		api.POST("/backup/restore", s.restoreBackup)
		api.GET("/backup/status", s.backupStatus)
	}
}

func (s *Server) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Добро пожаловать в интернет-магазин кондиционеров!"})
}

func (s *Server) healthCheck(c *gin.Context) {
	if err := s.pinger.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "klimatshop",
	})
}

// respondError maps the error taxonomy onto HTTP statuses: validation → 400,
// unresolved identity → 404, everything else → 500.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
	default:
		s.log.Errorw("request failed", "method", c.Request.Method, "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
