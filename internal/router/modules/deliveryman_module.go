package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/container"
	handlers "github.com/felipecouto0101/FastFeet-Deliveryman/internal/interface/http"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/interface/middleware"
	"github.com/felipecouto0101/FastFeet-Deliveryman/pkg/helpers"
)

// DeliveryManModule wires the delivery-personnel routes under /api.
// All routes require a bearer token; mutating routes carry a tighter
// per-IP rate limit than reads.
type DeliveryManModule struct {
	Handler *handlers.DeliveryManHandler
	JWT     *helpers.JWTManager
}

func NewDeliveryManModule(h *handlers.DeliveryManHandler, jwt *helpers.JWTManager) *DeliveryManModule {
	return &DeliveryManModule{Handler: h, JWT: jwt}
}

func (m *DeliveryManModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP())
	writeLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath())

	g := rg.Group("/deliverymen")
	g.Use(middleware.Auth(m.JWT))
	{
		g.POST("", writeLimiter, m.Handler.Create)
		g.GET("", readLimiter, m.Handler.List)
		g.GET("/:id", readLimiter, m.Handler.Find)
		g.PATCH("/:id", writeLimiter, m.Handler.Update)
		g.DELETE("/:id", writeLimiter, m.Handler.Delete)
	}
}
