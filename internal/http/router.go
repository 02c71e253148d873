package api

import (
	intconfig "farekiosk/internal/config"
	h "farekiosk/internal/http/handlers"
	"farekiosk/internal/http/middleware"
	"farekiosk/internal/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func NewRouter(cfg intconfig.Config, signer *services.VoucherSigner) *gin.Engine {
	h.SetVoucherSigner(signer)
	h.SetKioskName(cfg.Kiosk.Name)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(cfg.Env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(h.NoRoute)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/routes", h.Routes)

		api.GET("/zones", h.GetZones)
		api.GET("/zones/:id", h.GetZone)
		api.GET("/fares", h.GetFares)
		api.POST("/quotes", h.CreateQuote)

		vouchers := api.Group("/vouchers")
		vouchers.POST("", h.CreateVoucher)
		vouchers.POST("/pdf", h.CreateVoucherPDF)
		vouchers.POST("/verify", h.VerifyVoucher)
	}

	h.SetRouter(r)
	return r
}
