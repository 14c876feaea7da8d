package middlewares

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// APIRateLimiter caps per-IP request rates on the JSON API.
func (m *Middlewares) APIRateLimiter() func(next http.Handler) http.Handler {
	return httprate.LimitByIP(m.InternalConfig.App.MaxRequests, time.Second)
}
