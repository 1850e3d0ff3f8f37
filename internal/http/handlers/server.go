package handlers

import (
	"github.com/reev-boutik/produit/internal/rates"
	"github.com/reev-boutik/produit/internal/repo"
	"github.com/reev-boutik/produit/internal/scanlog"
	"github.com/reev-boutik/produit/internal/search"
)

var (
	productRepo  repo.ProductRepository
	priceRepo    repo.PriceHistoryRepository
	scanRepo     repo.ScanRepository
	userRepo     repo.UserRepository
	searchEngine *search.Engine
	ratesService *rates.Service
	scanService  *scanlog.Service
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetPriceHistoryRepo(r repo.PriceHistoryRepository) {
	priceRepo = r
}

func SetScanRepo(r repo.ScanRepository) {
	scanRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetSearchEngine(e *search.Engine) {
	searchEngine = e
}

func SetRatesService(s *rates.Service) {
	ratesService = s
}

func SetScanService(s *scanlog.Service) {
	scanService = s
}
