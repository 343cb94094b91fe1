package jenisbiaya

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

func (r *Repository) Create(j *JenisBiaya) error {
	return r.DB.Create(j).Error
}

func (r *Repository) FindAll() ([]JenisBiaya, error) {
	var list []JenisBiaya
	err := r.DB.Order("nama_biaya ASC").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*JenisBiaya, error) {
	var j JenisBiaya
	if err := r.DB.First(&j, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.TidakDitemukan("jenis biaya", id)
		}
		return nil, err
	}
	return &j, nil
}

func (r *Repository) Update(j *JenisBiaya) error {
	return r.DB.Save(j).Error
}

func (r *Repository) Delete(j *JenisBiaya) error {
	return r.DB.Delete(j).Error
}
