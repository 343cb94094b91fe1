package jeniskontrak

import (
	"errors"

	"gorm.io/gorm"

	"github.com/grahakarya/api-anggaran/internal/apperror"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(j *JenisKontrak) error {
	return r.DB.Create(j).Error
}

func (r *Repository) FindAll() ([]JenisKontrak, error) {
	var list []JenisKontrak
	err := r.DB.Order("nama ASC").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*JenisKontrak, error) {
	var j JenisKontrak
	if err := r.DB.First(&j, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.TidakDitemukan("jenis kontrak", id)
		}
		return nil, err
	}
	return &j, nil
}

func (r *Repository) Update(j *JenisKontrak) error {
	return r.DB.Save(j).Error
}

func (r *Repository) Delete(j *JenisKontrak) error {
	return r.DB.Delete(j).Error
}
