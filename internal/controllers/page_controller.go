package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yudistira/siswa_app_v1/internal/session"
)

type PageController struct{}

func (p *PageController) Home(c *gin.Context) {
	user := session.GetLoginUser(c)
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title": "Halaman Home",
		"nama":  user.Username,
	})
}

func (p *PageController) About(c *gin.Context) {
	user := session.GetLoginUser(c)
	c.HTML(http.StatusOK, "about.html", gin.H{
		"title": "Halaman About",
		"nama":  user.Username,
	})
}
