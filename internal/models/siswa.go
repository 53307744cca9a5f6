package models

import (
	"time"
)

// Siswa is a student record. NISN and NIK must be unique across students;
// that is checked by lookup right before insert, not by a unique index, so
// two concurrent submissions can still both get through.
type Siswa struct {
	ID        uint   `gorm:"primaryKey"`
	SiswaID   string `gorm:"column:siswa_id;uniqueIndex"`
	Nama      string `gorm:"column:nama"`
	NISN      string `gorm:"column:nisn;index"`
	NIK       string `gorm:"column:nik"`
	NoKK      string `gorm:"column:nokk"`
	Tingkat   string `gorm:"column:tingkat"`
	Rombel    string `gorm:"column:rombel"`
	TglMasuk  string `gorm:"column:tgl_masuk"`
	Terdaftar string `gorm:"column:terdaftar"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Siswa) TableName() string { return "siswa" }
