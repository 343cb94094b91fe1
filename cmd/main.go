package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/grahakarya/api-anggaran/internal/anggaran"
	"github.com/grahakarya/api-anggaran/internal/auth"
	"github.com/grahakarya/api-anggaran/internal/dasbor"
	"github.com/grahakarya/api-anggaran/internal/jenisbiaya"
	"github.com/grahakarya/api-anggaran/internal/jeniskontrak"
	"github.com/grahakarya/api-anggaran/internal/klien"
	"github.com/grahakarya/api-anggaran/internal/managementfee"
	"github.com/grahakarya/api-anggaran/internal/pengguna"
	"github.com/grahakarya/api-anggaran/internal/proyek"
	"github.com/grahakarya/api-anggaran/internal/transaksi"
	"github.com/grahakarya/api-anggaran/internal/utils/db"
)

func main() {
	database, err := db.Connect()
	if err != nil {
		log.Fatal("Gagal terhubung ke database:", err)
	}

	// AutoMigrate untuk semua model
	if err := database.AutoMigrate(
		&pengguna.Pengguna{},
		&klien.Klien{},
		&jenisbiaya.JenisBiaya{},
		&jeniskontrak.JenisKontrak{},
		&proyek.Proyek{},
		&anggaran.ItemAnggaran{},
		&transaksi.Transaksi{},
	); err != nil {
		log.Fatal("Gagal AutoMigrate:", err)
	}

	// Repositories
	penggunaRepo := pengguna.NewRepository(database)
	klienRepo := klien.NewRepository(database)
	jenisBiayaRepo := jenisbiaya.NewRepository(database)
	jenisKontrakRepo := jeniskontrak.NewRepository(database)
	proyekRepo := proyek.NewRepository(database)
	anggaranRepo := anggaran.NewRepository(database)
	transaksiRepo := transaksi.NewRepository(database)

	// Handlers
	penggunaHandler := pengguna.NewHandler(penggunaRepo)
	klienHandler := klien.NewHandler(klienRepo)
	jenisBiayaHandler := jenisbiaya.NewHandler(jenisBiayaRepo)
	jenisKontrakHandler := jeniskontrak.NewHandler(jenisKontrakRepo)
	proyekHandler := proyek.NewHandler(proyekRepo)
	anggaranHandler := anggaran.NewHandler(anggaranRepo, proyekRepo)
	transaksiHandler := transaksi.NewHandler(transaksiRepo, proyekRepo)
	feeHandler := managementfee.NewHandler(proyekRepo, transaksiRepo)
	dasborHandler := dasbor.NewHandler(proyekRepo, anggaranRepo, transaksiRepo)

	// Router
	r := mux.NewRouter()

	// Rute autentikasi (tanpa token)
	r.HandleFunc("/auth/register", penggunaHandler.Register).Methods("POST")
	r.HandleFunc("/auth/login", penggunaHandler.Login).Methods("POST")

	// Rute terproteksi
	api := r.NewRoute().Subrouter()
	api.Use(auth.Middleware)

	api.HandleFunc("/me", penggunaHandler.Me).Methods("GET")
	api.HandleFunc("/me", penggunaHandler.UpdateMe).Methods("PUT")

	// Rute proyek
	api.HandleFunc("/projects", proyekHandler.Create).Methods("POST")
	api.HandleFunc("/projects", proyekHandler.List).Methods("GET")
	api.HandleFunc("/projects/{id}", proyekHandler.Get).Methods("GET")
	api.HandleFunc("/projects/{id}", proyekHandler.Update).Methods("PUT")
	api.HandleFunc("/projects/{id}", proyekHandler.Delete).Methods("DELETE")
	api.HandleFunc("/projects/{id}/metrics", dasborHandler.ProyekMetrics).Methods("GET")
	api.HandleFunc("/projects/{id}/trend", dasborHandler.ProyekTren).Methods("GET")

	// Rute item anggaran
	api.HandleFunc("/budget-items", anggaranHandler.Create).Methods("POST")
	api.HandleFunc("/budget-items", anggaranHandler.List).Methods("GET")
	api.HandleFunc("/budget-items/{id}", anggaranHandler.Get).Methods("GET")
	api.HandleFunc("/budget-items/{id}", anggaranHandler.Update).Methods("PUT")
	api.HandleFunc("/budget-items/{id}", anggaranHandler.Delete).Methods("DELETE")

	// Rute transaksi
	api.HandleFunc("/transactions", transaksiHandler.Create).Methods("POST")
	api.HandleFunc("/transactions", transaksiHandler.List).Methods("GET")
	api.HandleFunc("/transactions/{id}", transaksiHandler.Get).Methods("GET")
	api.HandleFunc("/transactions/{id}", transaksiHandler.Update).Methods("PUT")
	api.HandleFunc("/transactions/{id}", transaksiHandler.Delete).Methods("DELETE")

	// Rute data master
	api.HandleFunc("/cost-types", jenisBiayaHandler.Create).Methods("POST")
	api.HandleFunc("/cost-types", jenisBiayaHandler.List).Methods("GET")
	api.HandleFunc("/cost-types/{id}", jenisBiayaHandler.Get).Methods("GET")
	api.HandleFunc("/cost-types/{id}", jenisBiayaHandler.Update).Methods("PUT")
	api.HandleFunc("/cost-types/{id}", jenisBiayaHandler.Delete).Methods("DELETE")

	api.HandleFunc("/contract-types", jenisKontrakHandler.Create).Methods("POST")
	api.HandleFunc("/contract-types", jenisKontrakHandler.List).Methods("GET")
	api.HandleFunc("/contract-types/{id}", jenisKontrakHandler.Get).Methods("GET")
	api.HandleFunc("/contract-types/{id}", jenisKontrakHandler.Update).Methods("PUT")
	api.HandleFunc("/contract-types/{id}", jenisKontrakHandler.Delete).Methods("DELETE")

	api.HandleFunc("/clients", klienHandler.Create).Methods("POST")
	api.HandleFunc("/clients", klienHandler.List).Methods("GET")
	api.HandleFunc("/clients/{id}", klienHandler.Get).Methods("GET")
	api.HandleFunc("/clients/{id}", klienHandler.Update).Methods("PUT")
	api.HandleFunc("/clients/{id}", klienHandler.Delete).Methods("DELETE")

	// Rute laporan
	api.HandleFunc("/dashboard/metrics", dasborHandler.Metrics).Methods("GET")
	api.HandleFunc("/dashboard/chart", dasborHandler.Chart).Methods("GET")
	api.HandleFunc("/management-fee", feeHandler.Laporan).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Server berjalan di http://localhost:%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
