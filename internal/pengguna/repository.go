package pengguna

import (
	"errors"

	"gorm.io/gorm"

	"github.com/grahakarya/api-anggaran/internal/apperror"
)

// Repository membungkus akses data Pengguna.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Pengguna) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByEmail(email string) (*Pengguna, error) {
	var p Pengguna
	if err := r.DB.Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByID(id uint) (*Pengguna, error) {
	var p Pengguna
	if err := r.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.TidakDitemukan("pengguna", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(p *Pengguna) error {
	return r.DB.Save(p).Error
}
