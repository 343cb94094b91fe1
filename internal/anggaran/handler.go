package anggaran

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/grahakarya/api-anggaran/internal/apperror"
	"github.com/grahakarya/api-anggaran/internal/proyek"
)

// Handler mengelola rute alokasi anggaran. Generate dan revisi berjalan
// dalam satu transaksi database supaya induk dan anak selalu konsisten.
type Handler struct {
	Repo       *Repository
	ProyekRepo *proyek.Repository
}

func NewHandler(repo *Repository, proyekRepo *proyek.Repository) *Handler {
	return &Handler{Repo: repo, ProyekRepo: proyekRepo}
}

// Create menangani POST /budget-items.
// Kategori monthly membuat induk + N anak secara atomik.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var dto AlokasiDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}

	p, err := h.ProyekRepo.FindByID(dto.ProyekID)
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}

	hasil, err := GenerateAlokasi(p, dto.JenisBiayaID, dto.KategoriAnggaran, dto.TotalAnggaran, dto.Deskripsi)
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Tidak bisa memulai transaksi", http.StatusInternalServerError)
		return
	}
	txRepo := h.Repo.WithDB(tx)

	if err := txRepo.Create(&hasil.Parent); err != nil {
		_ = tx.Rollback()
		log.Printf("gagal membuat induk alokasi: %v", err)
		http.Error(w, "Gagal membuat alokasi", http.StatusInternalServerError)
		return
	}

	anak := make([]*ItemAnggaran, 0, len(hasil.Children))
	for i := range hasil.Children {
		hasil.Children[i].ParentBudgetID = &hasil.Parent.ID
		anak = append(anak, &hasil.Children[i])
	}
	if err := txRepo.CreateInBatch(anak); err != nil {
		_ = tx.Rollback()
		log.Printf("gagal membuat anak alokasi: %v", err)
		http.Error(w, "Gagal membuat alokasi bulanan", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Gagal menyimpan alokasi", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"budget_item": hasil.Parent,
		"children":    hasil.Children,
	})
}

// List menangani GET /budget-items. Query param opsional `project_id`.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var (
		list []ItemAnggaran
		err  error
	)
	if pid := r.URL.Query().Get("project_id"); pid != "" {
		id, convErr := strconv.Atoi(pid)
		if convErr != nil {
			http.Error(w, "project_id tidak valid", http.StatusBadRequest)
			return
		}
		list, err = h.Repo.FindByProyek(uint(id))
	} else {
		list, err = h.Repo.FindAll()
	}
	if err != nil {
		http.Error(w, "Gagal mengambil item anggaran", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"budget_items": list})
}

// Get menangani GET /budget-items/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	item, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(item)
}

// Update menangani PUT /budget-items/{id} pada item induk: induk dan
// seluruh anak dihitung ulang dari total baru. Jumlah anak tidak
// berubah pada revisi (lihat RevisiAlokasi).
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	parent, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}
	children, err := h.Repo.FindChildren(parent.ID)
	if err != nil {
		http.Error(w, "Gagal mengambil anak alokasi", http.StatusInternalServerError)
		return
	}

	var dto AlokasiDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "JSON tidak valid", http.StatusBadRequest)
		return
	}

	hasil, err := RevisiAlokasi(*parent, children, dto.JenisBiayaID, dto.TotalAnggaran, dto.Deskripsi)
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Tidak bisa memulai transaksi", http.StatusInternalServerError)
		return
	}
	txRepo := h.Repo.WithDB(tx)

	if err := txRepo.Update(&hasil.Parent); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Gagal memperbarui induk alokasi", http.StatusInternalServerError)
		return
	}
	for i := range hasil.Children {
		if err := txRepo.Update(&hasil.Children[i]); err != nil {
			_ = tx.Rollback()
			http.Error(w, "Gagal memperbarui anak alokasi", http.StatusInternalServerError)
			return
		}
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Gagal menyimpan revisi", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"budget_item": hasil.Parent,
		"children":    hasil.Children,
	})
}

// Delete menangani DELETE /budget-items/{id}; induk dihapus beserta anak.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID tidak valid", http.StatusBadRequest)
		return
	}
	item, err := h.Repo.FindByID(uint(id))
	if err != nil {
		apperror.TulisHTTP(w, err)
		return
	}

	tx := h.Repo.DB.Begin()
	if tx.Error != nil {
		http.Error(w, "Tidak bisa memulai transaksi", http.StatusInternalServerError)
		return
	}
	if err := h.Repo.WithDB(tx).DeleteWithChildren(item.ID); err != nil {
		_ = tx.Rollback()
		http.Error(w, "Gagal menghapus item anggaran", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit().Error; err != nil {
		_ = tx.Rollback()
		http.Error(w, "Gagal menghapus item anggaran", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
