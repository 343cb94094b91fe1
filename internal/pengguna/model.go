package pengguna

import "gorm.io/gorm"

// Pengguna adalah akun yang boleh masuk ke aplikasi monitoring.
type Pengguna struct {
	gorm.Model
	Nama    string `json:"nama"`
	Email   string `json:"email" gorm:"unique;not null"`
	Sandi   string `json:"-" gorm:"not null"`
	IsAdmin bool   `json:"is_admin" gorm:"not null;default:false"`
}
