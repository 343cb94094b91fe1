package transaksi

import (
	"errors"

	"gorm.io/gorm"

	"github.com/grahakarya/api-anggaran/internal/apperror"
)

// Repository membungkus akses data Transaksi.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(t *Transaksi) error {
	return r.DB.Create(t).Error
}

func (r *Repository) FindAll() ([]Transaksi, error) {
	var list []Transaksi
	err := r.DB.Order("tanggal_transaksi DESC").Find(&list).Error
	return list, err
}

// FindByProyek mengambil transaksi milik satu proyek.
func (r *Repository) FindByProyek(proyekID uint) ([]Transaksi, error) {
	var list []Transaksi
	err := r.DB.
		Where("proyek_id = ?", proyekID).
		Order("tanggal_transaksi DESC").
		Find(&list).Error
	return list, err
}

// FindByBulan mengambil transaksi pada satu bulan realisasi (YYYY-MM).
func (r *Repository) FindByBulan(bulan string) ([]Transaksi, error) {
	var list []Transaksi
	err := r.DB.
		Where("bulan_realisasi = ?", bulan).
		Order("tanggal_transaksi DESC").
		Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Transaksi, error) {
	var t Transaksi
	if err := r.DB.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.TidakDitemukan("transaksi", id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *Repository) Update(t *Transaksi) error {
	return r.DB.Save(t).Error
}

func (r *Repository) Delete(t *Transaksi) error {
	return r.DB.Delete(t).Error
}
