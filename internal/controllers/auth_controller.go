package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yudistira/siswa_app_v1/internal/models"
	"github.com/yudistira/siswa_app_v1/internal/session"
)

type AuthController struct {
	DB *gorm.DB
}

type loginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (a *AuthController) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Halaman Login",
		"error": session.Flashes(c, session.FlashError),
		"msg":   session.Flashes(c, session.FlashMsg),
	})
}

// Login matches the username exactly and compares the stored password as
// plain text. Failures are indistinguishable in status code; only the
// flash text differs.
func (a *AuthController) Login(c *gin.Context) {
	var req loginRequest
	_ = c.ShouldBind(&req)

	var user models.User
	if err := a.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		_ = session.AddFlash(c, session.FlashError, "Username tidak ditemukan!")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if user.Password != req.Password {
		_ = session.AddFlash(c, session.FlashError, "Password salah!")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := session.SetLoginUser(c, &user); err != nil {
		log.Println("failed to save session:", err)
		c.String(http.StatusInternalServerError, "Gagal menyimpan sesi!")
		return
	}
	_ = session.AddFlash(c, session.FlashMsg, "Login berhasil!")
	c.Redirect(http.StatusFound, "/")
}

func (a *AuthController) Logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		log.Println("failed to clear session:", err)
	}
	c.Redirect(http.StatusFound, "/login")
}
