package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrValidasi adalah error ketika input dari pemanggil tidak valid
// (nilai negatif/nol, kategori tidak dikenal, tanggal wajib kosong).
type ErrValidasi struct {
	Field string
	Pesan string
}

func (e *ErrValidasi) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validasi gagal: %s", e.Pesan)
	}
	return fmt.Sprintf("validasi gagal pada %s: %s", e.Field, e.Pesan)
}

// Validasi membuat ErrValidasi untuk satu field.
func Validasi(field, pesan string) error {
	return &ErrValidasi{Field: field, Pesan: pesan}
}

// ErrTidakDitemukan adalah error ketika sebuah referensi id tidak ada
// di dalam koleksi yang diberikan. Dibedakan dari koleksi kosong yang
// sah (jumlah = 0) supaya pemanggil bisa mendeteksi data rusak.
type ErrTidakDitemukan struct {
	Entitas string
	ID      uint
}

func (e *ErrTidakDitemukan) Error() string {
	return fmt.Sprintf("%s dengan id %d tidak ditemukan", e.Entitas, e.ID)
}

// TidakDitemukan membuat ErrTidakDitemukan untuk satu entitas.
func TidakDitemukan(entitas string, id uint) error {
	return &ErrTidakDitemukan{Entitas: entitas, ID: id}
}

// IsValidasi melaporkan apakah err adalah (atau membungkus) ErrValidasi.
func IsValidasi(err error) bool {
	var ev *ErrValidasi
	return errors.As(err, &ev)
}

// IsTidakDitemukan melaporkan apakah err adalah (atau membungkus) ErrTidakDitemukan.
func IsTidakDitemukan(err error) bool {
	var en *ErrTidakDitemukan
	return errors.As(err, &en)
}

// TulisHTTP memetakan error bertipe ke status HTTP dan menulis respons JSON.
// ErrValidasi -> 400, ErrTidakDitemukan -> 404, selain itu 500.
func TulisHTTP(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case IsValidasi(err):
		status = http.StatusBadRequest
	case IsTidakDitemukan(err):
		status = http.StatusNotFound
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
