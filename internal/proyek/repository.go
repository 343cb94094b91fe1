package proyek

import (
	"errors"

	"gorm.io/gorm"

	"github.com/grahakarya/api-anggaran/internal/apperror"
)

// Repository membungkus akses data Proyek.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *Proyek) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindAll() ([]Proyek, error) {
	var list []Proyek
	err := r.DB.Order("created_at DESC").Find(&list).Error
	return list, err
}

// FindByStatus mengambil proyek dengan status kontrak tertentu.
func (r *Repository) FindByStatus(status string) ([]Proyek, error) {
	var list []Proyek
	err := r.DB.Where("status_kontrak = ?", status).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Proyek, error) {
	var p Proyek
	if err := r.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.TidakDitemukan("proyek", id)
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(p *Proyek) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Delete(p *Proyek) error {
	return r.DB.Delete(p).Error
}
