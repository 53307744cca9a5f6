// Package validation holds the form field rules. Rules are evaluated as a
// whole and their failures aggregated; the caller decides accept/reject
// only after every rule has run.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

// FieldError is a single validation failure, addressed to a form field.
type FieldError struct {
	Field   string
	Message string
}

// messages maps "<field>.<tag>" to the text shown next to the form field.
var messages = map[string]string{
	"nama.required":      "Nama wajib diisi",
	"nisn.len":           "NISN harus 10 digit",
	"nik.len":            "NIK harus 16 digit",
	"nokk.len":           "No KK harus 16 digit",
	"tgl_masuk.required": "Tanggal masuk wajib diisi",
	"tingkat.required":   "Tingkat wajib diisi",
	"rombel.required":    "Rombel wajib diisi",
	"terdaftar.required": "Status wajib diisi",
}

// Validator evaluates form structs against their tag rules plus the
// enrollment date rules. The cutoff is data, not a literal, so tests can
// move it.
type Validator struct {
	validate *validator.Validate
	cutoff   time.Time
}

func New(cutoff time.Time) *Validator {
	v := validator.New()
	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v, cutoff: cutoff}
}

// Struct runs the tag rules on a form struct and translates every failure.
func (v *Validator) Struct(form any) []FieldError {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		msg, ok := messages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " tidak valid"
		}
		out = append(out, FieldError{Field: fe.Field(), Message: msg})
	}
	return out
}

// TglMasuk checks the enrollment date format and cutoff. It runs on empty
// input too, so a blank date reports both the required and the format
// failure, the same way the form behaved historically.
func (v *Validator) TglMasuk(value string) []FieldError {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return []FieldError{{Field: "tgl_masuk", Message: "Format tanggal tidak valid"}}
	}
	if t.After(v.cutoff) {
		return []FieldError{{
			Field:   "tgl_masuk",
			Message: "Tanggal masuk tidak boleh melebihi " + FormatTanggal(v.cutoff),
		}}
	}
	return nil
}

var bulan = [...]string{
	"", "Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatTanggal renders a date the way the forms word it, e.g.
// "04 Desember 2025".
func FormatTanggal(t time.Time) string {
	return fmt.Sprintf("%02d %s %d", t.Day(), bulan[t.Month()], t.Year())
}
