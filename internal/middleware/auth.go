package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yudistira/siswa_app_v1/internal/session"
)

// RequireLogin gates a route on an authenticated session. Anonymous
// requests get a flash error and a redirect to the login page, whatever
// the target route was.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.IsLogin(c) {
			_ = session.AddFlash(c, session.FlashError, "Silakan login terlebih dahulu")
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
