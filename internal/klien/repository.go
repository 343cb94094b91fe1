package klien

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

func (r *Repository) Create(k *Klien) error {
	return r.DB.Create(k).Error
}

func (r *Repository) FindAll() ([]Klien, error) {
	var list []Klien
	err := r.DB.Order("nama ASC").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Klien, error) {
	var k Klien
	if err := r.DB.First(&k, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.TidakDitemukan("klien", id)
		}
		return nil, err
	}
	return &k, nil
}

func (r *Repository) Update(k *Klien) error {
	return r.DB.Save(k).Error
}

func (r *Repository) Delete(k *Klien) error {
	return r.DB.Delete(k).Error
}
