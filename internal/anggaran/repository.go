package anggaran

import (
	"errors"

	"gorm.io/gorm"

	"github.com/grahakarya/api-anggaran/internal/apperror"
)

// Repository membungkus akses data ItemAnggaran.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB mengembalikan salinan repo dengan *gorm.DB lain (mis. transaksi).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

func (r *Repository) Create(item *ItemAnggaran) error {
	return r.DB.Create(item).Error
}

// CreateInBatch menyimpan banyak item sekaligus (diabaikan bila kosong).
func (r *Repository) CreateInBatch(items []*ItemAnggaran) error {
	if len(items) == 0 {
		return nil
	}
	return r.DB.Create(items).Error
}

func (r *Repository) FindAll() ([]ItemAnggaran, error) {
	var list []ItemAnggaran
	err := r.DB.Order("periode_bulan ASC, bulan_ke ASC").Find(&list).Error
	return list, err
}

// FindByProyek mengambil semua item (induk dan anak) milik satu proyek.
func (r *Repository) FindByProyek(proyekID uint) ([]ItemAnggaran, error) {
	var list []ItemAnggaran
	err := r.DB.
		Where("proyek_id = ?", proyekID).
		Order("periode_bulan ASC, bulan_ke ASC").
		Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*ItemAnggaran, error) {
	var item ItemAnggaran
	if err := r.DB.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.TidakDitemukan("item anggaran", id)
		}
		return nil, err
	}
	return &item, nil
}

// FindChildren mengambil anak-anak sebuah induk, urut bulan_ke.
func (r *Repository) FindChildren(parentID uint) ([]ItemAnggaran, error) {
	var list []ItemAnggaran
	err := r.DB.
		Where("parent_budget_id = ?", parentID).
		Order("bulan_ke ASC").
		Find(&list).Error
	return list, err
}

func (r *Repository) Update(item *ItemAnggaran) error {
	return r.DB.Save(item).Error
}

// DeleteWithChildren menghapus induk beserta seluruh anaknya.
func (r *Repository) DeleteWithChildren(parentID uint) error {
	if err := r.DB.Where("parent_budget_id = ?", parentID).Delete(&ItemAnggaran{}).Error; err != nil {
		return err
	}
	return r.DB.Delete(&ItemAnggaran{}, parentID).Error
}
