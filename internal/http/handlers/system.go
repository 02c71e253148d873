package handlers

import (
	"net/http"
	"sync"

	"farekiosk/internal/http/middleware"
	"farekiosk/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	depsMu    sync.RWMutex
	router    *gin.Engine
	signer    *services.VoucherSigner
	kioskName = "CTA"
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	depsMu.Lock()
	defer depsMu.Unlock()
	router = r
}

// SetVoucherSigner installs the signer used for voucher codes. Nil disables codes.
func SetVoucherSigner(s *services.VoucherSigner) {
	depsMu.Lock()
	defer depsMu.Unlock()
	signer = s
}

func SetKioskName(name string) {
	depsMu.Lock()
	defer depsMu.Unlock()
	kioskName = name
}

func voucherService(c *gin.Context) services.VoucherService {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return services.VoucherService{
		Signer:    signer,
		KioskName: kioskName,
		RequestID: middleware.GetRequestID(c),
	}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "fare kiosk api running"})
}

func Routes(c *gin.Context) {
	depsMu.RLock()
	r := router
	depsMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router is not ready", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{
			"method": rt.Method,
			"path":   rt.Path,
		})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
