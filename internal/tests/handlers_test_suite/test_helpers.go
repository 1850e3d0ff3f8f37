package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"golang.org/x/crypto/bcrypt"

	api "github.com/reev-boutik/produit/internal/http"
	handler "github.com/reev-boutik/produit/internal/http/handlers"
	"github.com/reev-boutik/produit/internal/http/ratelimit"
	"github.com/reev-boutik/produit/internal/models"
	"github.com/reev-boutik/produit/internal/rates"
	"github.com/reev-boutik/produit/internal/repo"
	"github.com/reev-boutik/produit/internal/search"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	priceRepo   *repo.InMemoryPriceHistoryRepository
	scanRepo    *repo.InMemoryScanRepository
)

func init() {
	// Every httptest request arrives from the same address; a real
	// per-visitor limit would rate-limit the whole suite.
	ratelimit.Configure(10000, 10000)

	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)
	handler.SetSearchEngine(search.NewEngine(productRepo))

	priceRepo = repo.NewInMemoryPriceHistoryRepository()
	handler.SetPriceHistoryRepo(priceRepo)

	scanRepo = repo.NewInMemoryScanRepository()
	handler.SetScanRepo(scanRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})

	// An unreachable provider makes the rates service serve its
	// hardcoded fallback, which keeps the suite offline.
	handler.SetRatesService(rates.New(
		rates.WithURL("http://127.0.0.1:0"),
		rates.WithHTTPClient(&http.Client{Timeout: time.Second}),
	))
}

func clearAllProducts() {
	productRepo.Clear()
	priceRepo.Clear()
	scanRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.CredentialsRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func mustCreateProduct(r http.Handler, p handler.ProductRequest) models.Product {
	w := createProduct(r, p)
	if w.Code != http.StatusCreated {
		panic(fmt.Sprintf("seeding product %q failed with status %d: %s", p.Name, w.Code, w.Body.String()))
	}
	var created models.Product
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		panic(fmt.Sprintf("decoding created product: %v", err))
	}
	return created
}

func recordPrice(r http.Handler, productID string, p handler.PriceRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/api/products/"+productID+"/prices", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func searchProducts(r http.Handler, rawQuery string) (search.Result, int, error) {
	w := get(r, "/api/products/search?"+rawQuery)
	if w.Code != http.StatusOK {
		return search.Result{}, w.Code, nil
	}
	var result search.Result
	err := json.NewDecoder(w.Body).Decode(&result)
	return result, w.Code, err
}
