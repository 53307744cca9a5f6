package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addForm struct {
	Nama     string `form:"nama" validate:"required"`
	NISN     string `form:"nisn" validate:"len=10"`
	NIK      string `form:"nik" validate:"len=16"`
	NoKK     string `form:"nokk" validate:"len=16"`
	TglMasuk string `form:"tgl_masuk" validate:"required"`
}

func testValidator() *Validator {
	return New(time.Date(2025, time.December, 4, 0, 0, 0, 0, time.UTC))
}

func messagesOf(errs []FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Message)
	}
	return out
}

func TestStructCollectsAllFailures(t *testing.T) {
	v := testValidator()

	errs := v.Struct(addForm{
		Nama:     "",
		NISN:     "123",
		NIK:      "123",
		NoKK:     "123",
		TglMasuk: "",
	})

	msgs := messagesOf(errs)
	assert.Contains(t, msgs, "Nama wajib diisi")
	assert.Contains(t, msgs, "NISN harus 10 digit")
	assert.Contains(t, msgs, "NIK harus 16 digit")
	assert.Contains(t, msgs, "No KK harus 16 digit")
	assert.Contains(t, msgs, "Tanggal masuk wajib diisi")
	assert.Len(t, errs, 5)
}

func TestStructValidForm(t *testing.T) {
	v := testValidator()

	errs := v.Struct(addForm{
		Nama:     "Budi Santoso",
		NISN:     "0012345678",
		NIK:      "3173051234567890",
		NoKK:     "3173059876543210",
		TglMasuk: "2024-07-01",
	})
	assert.Empty(t, errs)
}

func TestTglMasuk(t *testing.T) {
	v := testValidator()

	tests := []struct {
		name  string
		value string
		want  string // expected message, empty means valid
	}{
		{"valid", "2024-07-01", ""},
		{"on cutoff", "2025-12-04", ""},
		{"after cutoff", "2025-12-05", "Tanggal masuk tidak boleh melebihi 04 Desember 2025"},
		{"far future", "2026-01-01", "Tanggal masuk tidak boleh melebihi 04 Desember 2025"},
		{"not a date", "besok", "Format tanggal tidak valid"},
		{"empty", "", "Format tanggal tidak valid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := v.TglMasuk(tt.value)
			if tt.want == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "tgl_masuk", errs[0].Field)
			assert.Equal(t, tt.want, errs[0].Message)
		})
	}
}

func TestTglMasukCutoffIsConfigurable(t *testing.T) {
	v := New(time.Date(2030, time.June, 15, 0, 0, 0, 0, time.UTC))

	assert.Empty(t, v.TglMasuk("2027-01-01"))

	errs := v.TglMasuk("2030-06-16")
	require.Len(t, errs, 1)
	assert.Equal(t, "Tanggal masuk tidak boleh melebihi 15 Juni 2030", errs[0].Message)
}

func TestFormatTanggal(t *testing.T) {
	assert.Equal(t, "04 Desember 2025", FormatTanggal(time.Date(2025, time.December, 4, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "17 Agustus 1945", FormatTanggal(time.Date(1945, time.August, 17, 0, 0, 0, 0, time.UTC)))
}
