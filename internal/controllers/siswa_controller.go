package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yudistira/siswa_app_v1/internal/models"
	"github.com/yudistira/siswa_app_v1/internal/session"
	"github.com/yudistira/siswa_app_v1/internal/validation"
)

type SiswaController struct {
	DB        *gorm.DB
	Validator *validation.Validator
}

type addSiswaForm struct {
	Nama      string `form:"nama" validate:"required"`
	NISN      string `form:"nisn" validate:"len=10"`
	NIK       string `form:"nik" validate:"len=16"`
	NoKK      string `form:"nokk" validate:"len=16"`
	Tingkat   string `form:"tingkat"`
	Rombel    string `form:"rombel"`
	TglMasuk  string `form:"tgl_masuk" validate:"required"`
	Terdaftar string `form:"terdaftar"`
}

type editSiswaForm struct {
	Tingkat   string `form:"tingkat" validate:"required"`
	Rombel    string `form:"rombel" validate:"required"`
	TglMasuk  string `form:"tgl_masuk" validate:"required"`
	Terdaftar string `form:"terdaftar" validate:"required"`
}

func (s *SiswaController) List(c *gin.Context) {
	var siswas []models.Siswa
	if err := s.DB.Find(&siswas).Error; err != nil {
		log.Println("failed to load siswa list:", err)
		c.String(http.StatusInternalServerError, "Gagal memuat data!")
		return
	}
	c.HTML(http.StatusOK, "siswa.html", gin.H{
		"title":  "Halaman Data Siswa",
		"siswas": siswas,
		"msg":    session.Flashes(c, session.FlashMsg),
	})
}

func (s *SiswaController) AddForm(c *gin.Context) {
	c.HTML(http.StatusOK, "add-siswa.html", gin.H{
		"title": "Form Tambah Data Siswa",
		"old":   addSiswaForm{},
	})
}

// Create validates every rule before deciding: the field rules, then the
// NISN/NIK duplicate lookups. All failures come back together on the
// re-rendered form, with the submitted values kept.
//
// The duplicate check and the insert are two separate statements, so two
// concurrent submissions with the same NISN can both pass. That window is
// accepted; there is no unique index backing it up.
func (s *SiswaController) Create(c *gin.Context) {
	var form addSiswaForm
	_ = c.ShouldBind(&form)

	errs := s.Validator.Struct(form)
	errs = append(errs, s.Validator.TglMasuk(form.TglMasuk)...)
	if s.siswaExists("nisn", form.NISN) {
		errs = append(errs, validation.FieldError{Field: "nisn", Message: "NISN sudah digunakan"})
	}
	if s.siswaExists("nik", form.NIK) {
		errs = append(errs, validation.FieldError{Field: "nik", Message: "NIK sudah digunakan"})
	}

	if len(errs) > 0 {
		c.HTML(http.StatusOK, "add-siswa.html", gin.H{
			"title":  "Form Tambah Data Siswa",
			"errors": errs,
			"old":    form,
		})
		return
	}

	siswa := models.Siswa{
		SiswaID:   uuid.NewString(),
		Nama:      form.Nama,
		NISN:      form.NISN,
		NIK:       form.NIK,
		NoKK:      form.NoKK,
		Tingkat:   form.Tingkat,
		Rombel:    form.Rombel,
		TglMasuk:  form.TglMasuk,
		Terdaftar: form.Terdaftar,
	}
	if err := s.DB.Create(&siswa).Error; err != nil {
		log.Println("insert siswa failed:", err)
		c.String(http.StatusOK, "Gagal memasukkan data!")
		return
	}

	_ = session.AddFlash(c, session.FlashMsg, "data siswa berhasil ditambahkan")
	c.Redirect(http.StatusFound, "/siswa")
}

// EditForm pre-fills the form from the record. An unknown nisn is not a
// 404: the form renders with empty fields, the lookup error is dropped.
func (s *SiswaController) EditForm(c *gin.Context) {
	var siswa models.Siswa
	_ = s.DB.Where("nisn = ?", c.Param("nisn")).First(&siswa).Error
	c.HTML(http.StatusOK, "edit-siswa.html", gin.H{
		"title": "Form Ubah Data Siswa",
		"siswa": siswa,
	})
}

// Update touches exactly tingkat, rombel, tgl_masuk and terdaftar. The
// identifying fields are immutable through this form. On validation
// failure the form re-renders from the submitted values, not the stored
// record.
func (s *SiswaController) Update(c *gin.Context) {
	var form editSiswaForm
	_ = c.ShouldBind(&form)

	errs := s.Validator.Struct(form)
	errs = append(errs, s.Validator.TglMasuk(form.TglMasuk)...)
	if len(errs) > 0 {
		c.HTML(http.StatusOK, "edit-siswa.html", gin.H{
			"title":  "Form Ubah Data Siswa",
			"errors": errs,
			"siswa": models.Siswa{
				NISN:      c.Param("nisn"),
				Tingkat:   form.Tingkat,
				Rombel:    form.Rombel,
				TglMasuk:  form.TglMasuk,
				Terdaftar: form.Terdaftar,
			},
		})
		return
	}

	err := s.DB.Model(&models.Siswa{}).
		Where("nisn = ?", c.Param("nisn")).
		Updates(map[string]any{
			"tingkat":   form.Tingkat,
			"rombel":    form.Rombel,
			"tgl_masuk": form.TglMasuk,
			"terdaftar": form.Terdaftar,
		}).Error
	if err != nil {
		log.Println("update siswa failed:", err)
		c.String(http.StatusOK, "Gagal mengubah data!")
		return
	}

	_ = session.AddFlash(c, session.FlashMsg, "data siswa berhasil diubah")
	c.Redirect(http.StatusFound, "/siswa")
}

// Delete removes the record matching nisn. A miss is a no-op and still
// redirects; the caller cannot tell the difference.
func (s *SiswaController) Delete(c *gin.Context) {
	if err := s.DB.Where("nisn = ?", c.Param("nisn")).Delete(&models.Siswa{}).Error; err != nil {
		log.Println("delete siswa failed:", err)
		c.String(http.StatusOK, "Gagal menghapus data!")
		return
	}
	_ = session.AddFlash(c, session.FlashMsg, "data siswa berhasil dihapus")
	c.Redirect(http.StatusFound, "/siswa")
}

func (s *SiswaController) siswaExists(column, value string) bool {
	var count int64
	if err := s.DB.Model(&models.Siswa{}).Where(column+" = ?", value).Count(&count).Error; err != nil {
		log.Println("duplicate lookup failed:", err)
		return false
	}
	return count > 0
}
