package cartController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"studio/config"
	cartController "studio/controllers/cart"
	"studio/database"
	"studio/middleware"
	"studio/models"
	"studio/routers/cartRoutes"
	"studio/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))

	carts := store.NewCartStore(db)
	app := fiber.New()
	cartRoutes.SetupCartRoutes(app, cartController.New(carts))
	return app, db
}

func tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := middleware.GenerateJWT(email, "Test User")
	assert.NoError(t, err)
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, apiResponse) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	var out apiResponse
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func TestListEmptyEmailReturnsEmptyList(t *testing.T) {
	config.LoadConfig()
	app, db := setupApp(t)

	db.Create(&models.CartItem{Email: "a@example.com", CourseID: 1})

	resp, out := doJSON(t, app, "GET", "/carts", tokenFor(t, "a@example.com"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []models.CartItem
	assert.NoError(t, json.Unmarshal(out.Data, &items))
	assert.Empty(t, items)
}

func TestListForbiddenForOtherIdentity(t *testing.T) {
	config.LoadConfig()
	app, _ := setupApp(t)

	resp, _ := doJSON(t, app, "GET", "/carts?email=a@example.com", tokenFor(t, "b@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAddAndListOwnItems(t *testing.T) {
	config.LoadConfig()
	app, _ := setupApp(t)

	body := map[string]interface{}{
		"email":      "a@example.com",
		"courseId":   7,
		"courseName": "Cello Basics",
		"price":      30.0,
	}
	resp, _ := doJSON(t, app, "POST", "/carts", "", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, out := doJSON(t, app, "GET", "/carts?email=a@example.com", tokenFor(t, "a@example.com"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []models.CartItem
	assert.NoError(t, json.Unmarshal(out.Data, &items))
	assert.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].CourseID)
}

func TestRemoveOpenByDefault(t *testing.T) {
	config.LoadConfig()
	app, db := setupApp(t)

	item := models.CartItem{Email: "a@example.com", CourseID: 1}
	db.Create(&item)

	resp, _ := doJSON(t, app, "DELETE", fmt.Sprintf("/carts/%d", item.ID), "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var count int64
	db.Model(&models.CartItem{}).Where("id = ?", item.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRemoveOwnershipToggle(t *testing.T) {
	config.LoadConfig()
	config.AppConfig.RequireOwnerForCartDelete = true
	defer func() { config.AppConfig.RequireOwnerForCartDelete = false }()

	app, db := setupApp(t)

	item := models.CartItem{Email: "a@example.com", CourseID: 1}
	db.Create(&item)
	path := fmt.Sprintf("/carts/%d", item.ID)

	resp, _ := doJSON(t, app, "DELETE", path, "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", path, tokenFor(t, "b@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "DELETE", path, tokenFor(t, "a@example.com"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
