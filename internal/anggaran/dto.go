package anggaran

// AlokasiDTO adalah payload create/update alokasi anggaran.
type AlokasiDTO struct {
	ProyekID         uint    `json:"project_id"`
	JenisBiayaID     uint    `json:"cost_type_id"`
	KategoriAnggaran string  `json:"kategori_anggaran"`
	TotalAnggaran    float64 `json:"total_anggaran"`
	Deskripsi        string  `json:"deskripsi"`
}
