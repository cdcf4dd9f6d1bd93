package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/ventas-api/internal/application/dto"
	"github.com/tu-usuario/ventas-api/internal/application/ventas"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/domain/repository"
	"github.com/tu-usuario/ventas-api/internal/infrastructure/pdf"
	apphttp "github.com/tu-usuario/ventas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el handler de ventas
// ──────────────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[int64]*entity.User
}

func (f *memUserRepo) Create(u *entity.User) error {
	u.ID = int64(len(f.users) + 1)
	f.users[u.ID] = u
	return nil
}

func (f *memUserRepo) GetByID(id int64) (*entity.User, error) { return f.users[id], nil }

func (f *memUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *memUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

type memProductRepo struct {
	products map[int64]*entity.Product
}

func (f *memProductRepo) Create(p *entity.Product) error {
	p.ID = int64(len(f.products) + 1)
	f.products[p.ID] = p
	return nil
}

func (f *memProductRepo) GetByID(id int64) (*entity.Product, error) { return f.products[id], nil }

func (f *memProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *memProductRepo) Update(p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}

type memVentaRepo struct {
	ventas []*entity.Venta
	items  []*entity.VentaProducto
	nextID int64
}

func (f *memVentaRepo) CreateVenta(v *entity.Venta) error {
	f.nextID++
	v.ID = f.nextID
	f.ventas = append(f.ventas, v)
	return nil
}

func (f *memVentaRepo) CreateProductos(items []*entity.VentaProducto) error {
	for _, it := range items {
		f.nextID++
		it.ID = f.nextID
		f.items = append(f.items, it)
	}
	return nil
}

func (f *memVentaRepo) GetByID(id int64) (*entity.Venta, error) {
	for _, v := range f.ventas {
		if v.ID == id {
			return v, nil
		}
	}
	return nil, nil
}

func (f *memVentaRepo) GetProductos(ventaID int64) ([]*entity.VentaProducto, error) {
	var out []*entity.VentaProducto
	for _, it := range f.items {
		if it.VentaID == ventaID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *memVentaRepo) List() ([]*entity.Venta, error) { return f.ventas, nil }

type memTxRunner struct {
	ventaRepo   *memVentaRepo
	productRepo *memProductRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(
	ventaRepo repository.VentaRepository,
	productRepo repository.ProductRepository,
) error) error {
	nVentas, nItems := len(r.ventaRepo.ventas), len(r.ventaRepo.items)
	if err := fn(r.ventaRepo, r.productRepo); err != nil {
		r.ventaRepo.ventas = r.ventaRepo.ventas[:nVentas]
		r.ventaRepo.items = r.ventaRepo.items[:nItems]
		return err
	}
	return nil
}

// buildVentasApp arma una app Fiber con el handler de ventas sobre repos en
// memoria. Las rutas van sin middleware de auth: acá se prueba el handler.
func buildVentasApp() (*fiber.App, *memVentaRepo) {
	userRepo := &memUserRepo{users: map[int64]*entity.User{
		7: {ID: 7, Username: "maria", RoleID: 2, RoleName: entity.RoleUser},
	}}
	productRepo := &memProductRepo{products: map[int64]*entity.Product{
		1: {ID: 1, Name: "Widget", Price: decimal.RequireFromString("9.99"), CategoryID: 1},
	}}
	ventaRepo := &memVentaRepo{}
	runner := &memTxRunner{ventaRepo: ventaRepo, productRepo: productRepo}

	createUC := ventas.NewCreateVentaUseCase(runner, userRepo)
	queries := ventas.NewVentaQueries(ventaRepo, userRepo)
	handler := apphttp.NewVentaHandler(createUC, queries, pdf.NewReceiptGenerator("Ventas API"))

	app := fiber.New()
	app.Post("/api/ventas", handler.Create)
	app.Get("/api/ventas", handler.List)
	app.Get("/api/ventas/:id", handler.GetByID)
	app.Get("/api/ventas/:id/pdf", handler.Receipt)
	return app, ventaRepo
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests POST /api/ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestVentaCreate_Feliz(t *testing.T) {
	app, repo := buildVentasApp()

	resp := postJSON(t, app, "/api/ventas", `{
		"total": "19.98",
		"userId": 7,
		"productos": [{"productId": 1, "cantidad": 2, "precio": "9.99"}]
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "/api/ventas/1", resp.Header.Get("Location"),
		"Location debe apuntar a la venta creada")

	var out dto.VentaResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, int64(7), out.UserID)
	require.Len(t, out.Productos, 1)
	assert.Equal(t, "Widget", out.Productos[0].ProductName)
	assert.Equal(t, 2, out.Productos[0].Cantidad)

	require.Len(t, repo.ventas, 1)
	require.Len(t, repo.items, 1)
}

func TestVentaCreate_SinLineas_Retorna400(t *testing.T) {
	app, repo := buildVentasApp()

	resp := postJSON(t, app, "/api/ventas", `{"total": "10.00", "userId": 7, "productos": []}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "VALIDATION")
	assert.Empty(t, repo.ventas)
}

func TestVentaCreate_CantidadCero_Retorna400(t *testing.T) {
	app, _ := buildVentasApp()

	resp := postJSON(t, app, "/api/ventas", `{
		"total": "9.99",
		"userId": 7,
		"productos": [{"productId": 1, "cantidad": 0, "precio": "9.99"}]
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVentaCreate_UsuarioInexistente_Retorna404(t *testing.T) {
	app, _ := buildVentasApp()

	resp := postJSON(t, app, "/api/ventas", `{
		"total": "9.99",
		"userId": 99,
		"productos": [{"productId": 1, "cantidad": 1, "precio": "9.99"}]
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "USER_NOT_FOUND")
}

// Producto inexistente: 404 nombrando el ID ofensor y sin nada persistido.
func TestVentaCreate_ProductoInexistente_Retorna404(t *testing.T) {
	app, repo := buildVentasApp()

	resp := postJSON(t, app, "/api/ventas", `{
		"total": "14.99",
		"userId": 7,
		"productos": [
			{"productId": 1, "cantidad": 1, "precio": "9.99"},
			{"productId": 999, "cantidad": 1, "precio": "5.00"}
		]
	}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PRODUCT_NOT_FOUND")
	assert.Contains(t, string(body), "999", "el mensaje debe nombrar el producto ofensor")

	assert.Empty(t, repo.ventas, "la venta entera se revierte")
	assert.Empty(t, repo.items)
}

func TestVentaCreate_BodyInvalido_Retorna400(t *testing.T) {
	app, _ := buildVentasApp()

	resp := postJSON(t, app, "/api/ventas", `{esto no es json}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests GET /api/ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestVentaGetByID_NoExiste_Retorna404(t *testing.T) {
	app, _ := buildVentasApp()

	req := httptest.NewRequest(http.MethodGet, "/api/ventas/12345", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestVentaGetByID_IDInvalido_Retorna400(t *testing.T) {
	app, _ := buildVentasApp()

	req := httptest.NewRequest(http.MethodGet, "/api/ventas/abc", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVentaList_DevuelveCreadas(t *testing.T) {
	app, _ := buildVentasApp()

	resp := postJSON(t, app, "/api/ventas", `{
		"total": "19.98",
		"userId": 7,
		"productos": [{"productId": 1, "cantidad": 2, "precio": "9.99"}]
	}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/ventas", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer listResp.Body.Close()

	assert.Equal(t, http.StatusOK, listResp.StatusCode)

	var list []dto.VentaResponse
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&list))
	require.Len(t, list, 1)
	require.Len(t, list[0].Productos, 1)
	assert.Equal(t, "Widget", list[0].Productos[0].ProductName)
}

// El comprobante de una venta existente responde un PDF no vacío.
func TestVentaReceipt_DevuelvePDF(t *testing.T) {
	app, _ := buildVentasApp()

	resp := postJSON(t, app, "/api/ventas", `{
		"total": "19.98",
		"userId": 7,
		"productos": [{"productId": 1, "cantidad": 2, "precio": "9.99"}]
	}`)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/ventas/1/pdf", nil)
	pdfResp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer pdfResp.Body.Close()

	assert.Equal(t, http.StatusOK, pdfResp.StatusCode)
	assert.Equal(t, "application/pdf", pdfResp.Header.Get(fiber.HeaderContentType))

	body, _ := io.ReadAll(pdfResp.Body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "el cuerpo debe ser un PDF")
}
