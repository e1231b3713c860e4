package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/amirko228/couple-shop/internal/relay"
	"github.com/amirko228/couple-shop/internal/repository"
	"github.com/amirko228/couple-shop/internal/service"
)

const sessionName = "shop-session"

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Catalog  *service.CatalogService
	Cart     *service.CartService
	Orders   *service.OrderService
	Auth     *service.AuthService
	Uploads  *service.UploadService
	KV       repository.KV
	Sessions *sessions.CookieStore
	Log      *zap.Logger
}

type Server struct {
	engine   *gin.Engine
	catalog  *service.CatalogService
	cart     *service.CartService
	orders   *service.OrderService
	auth     *service.AuthService
	uploads  *service.UploadService
	kv       repository.KV
	sessions *sessions.CookieStore
	log      *zap.Logger
}

func NewServer(d Deps) *Server {
	r := gin.New()
	r.Use(RequestLogger(d.Log), gin.Recovery())
	s := &Server{
		engine:   r,
		catalog:  d.Catalog,
		cart:     d.Cart,
		orders:   d.Orders,
		auth:     d.Auth,
		uploads:  d.Uploads,
		kv:       d.KV,
		sessions: d.Sessions,
		log:      d.Log,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Engine() *gin.Engine { return s.engine }

func (s *Server) registerRoutes() {
	// Swagger UI
	s.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.engine.GET("/uploads/:name", s.serveUpload)

	submitLimiter := NewRateLimiter(time.Minute)

	v1 := s.engine.Group("/api/v1")
	{
		products := v1.Group("/products")
		products.GET("", s.listProducts)
		products.GET("/featured", s.featuredProducts)
		products.GET("/:id", s.getProduct)

		cart := v1.Group("/cart")
		cart.GET("", s.getCart)
		cart.POST("/items", s.addCartItem)
		cart.PATCH("/items", s.updateCartItem)
		cart.DELETE("/items/:productId", s.removeCartItem)
		cart.DELETE("", s.clearCart)

		v1.POST("/orders", submitLimiter.Middleware(), s.submitOrder)
		v1.POST("/custom-print", submitLimiter.Middleware(), s.submitCustomPrint)

		v1.POST("/login", s.login)
		v1.POST("/logout", s.logout)

		v1.GET("/events", s.events)

		admin := v1.Group("/admin", s.requireAdmin)
		admin.GET("/data", s.adminData)
		admin.POST("/actions", s.adminAction)
		admin.POST("/products", s.createProduct)
		admin.PUT("/products/:id", s.updateProduct)
		admin.DELETE("/products/:id", s.deleteProduct)
		admin.POST("/password", s.changePassword)
		admin.POST("/uploads", s.uploadImage)
	}
}

// cartOwner resolves the per-visitor cart key from the session, minting one
// on first use.
func (s *Server) cartOwner(c *gin.Context) string {
	session, _ := s.sessions.Get(c.Request, sessionName)
	if id, ok := session.Values["cart_id"].(string); ok && id != "" {
		return id
	}
	id := uuid.NewString()
	session.Values["cart_id"] = id
	if err := session.Save(c.Request, c.Writer); err != nil {
		s.log.Warn("save session", zap.Error(err))
	}
	return id
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnsupportedImage):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, relay.ErrNotConfigured), errors.Is(err, service.ErrRelayFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
