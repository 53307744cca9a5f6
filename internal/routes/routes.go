package routes

import (
	"html/template"
	"log"
	"strconv"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yudistira/siswa_app_v1/internal/config"
	"github.com/yudistira/siswa_app_v1/internal/controllers"
	"github.com/yudistira/siswa_app_v1/internal/middleware"
	"github.com/yudistira/siswa_app_v1/internal/validation"
	"github.com/yudistira/siswa_app_v1/web"
)

func Register(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	// Session cookie, signed with the shared secret.
	maxAgeHours, err := strconv.Atoi(cfg.SessionMaxAgeHours)
	if err != nil || maxAgeHours <= 0 {
		maxAgeHours = 24
	}
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   maxAgeHours * 3600,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions("siswa_session", store))

	tpl := template.Must(template.New("").ParseFS(web.Templates, "templates/*.html"))
	r.SetHTMLTemplate(tpl)

	cutoff, err := time.Parse("2006-01-02", cfg.TglMasukMax)
	if err != nil {
		log.Println("invalid TGL_MASUK_MAX, falling back to 2025-12-04:", err)
		cutoff = time.Date(2025, time.December, 4, 0, 0, 0, 0, time.UTC)
	}

	authCtrl := &controllers.AuthController{DB: db}
	pageCtrl := &controllers.PageController{}
	siswaCtrl := &controllers.SiswaController{DB: db, Validator: validation.New(cutoff)}

	// Public
	r.GET("/login", authCtrl.LoginPage)
	r.POST("/login", authCtrl.Login)
	r.GET("/logout", authCtrl.Logout)

	// Protected
	gate := middleware.RequireLogin()
	r.GET("/", gate, pageCtrl.Home)
	r.GET("/about", gate, pageCtrl.About)

	siswa := r.Group("/siswa", gate)
	{
		siswa.GET("", siswaCtrl.List)
		siswa.GET("/add", siswaCtrl.AddForm)
		siswa.POST("", siswaCtrl.Create)
		siswa.GET("/edit/:nisn", siswaCtrl.EditForm)
		siswa.PUT("/:nisn", siswaCtrl.Update)
		siswa.DELETE("/:nisn", siswaCtrl.Delete)
	}
}
