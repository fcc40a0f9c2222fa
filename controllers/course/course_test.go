package courseController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"studio/config"
	courseController "studio/controllers/course"
	"studio/database"
	"studio/middleware"
	"studio/models"
	"studio/routers/courseRoutes"
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

	users := store.NewUserStore(db)
	courses := store.NewCourseStore(db)
	carts := store.NewCartStore(db)

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app, courseController.New(courses, carts), users)
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

func TestSubmitForcesPendingStatus(t *testing.T) {
	config.LoadConfig()
	app, db := setupApp(t)

	db.Create(&models.User{Email: "teach@example.com", Role: models.RoleInstructor})

	body := map[string]interface{}{
		"name":            "Guitar Basics",
		"instructorName":  "Teach",
		"instructorEmail": "teach@example.com",
		"price":           49.99,
		"seats":           10,
		"status":          "approved",
	}

	resp, _ := doJSON(t, app, "POST", "/course", tokenFor(t, "teach@example.com"), body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var course models.Course
	db.Where("title = ?", "Guitar Basics").First(&course)
	assert.Equal(t, models.StatusPending, course.Status)
}

func TestSubmitRequiresInstructorRole(t *testing.T) {
	config.LoadConfig()
	app, db := setupApp(t)

	db.Create(&models.User{Email: "plain@example.com"})

	body := map[string]interface{}{
		"name":            "Drum Basics",
		"instructorName":  "Plain",
		"instructorEmail": "plain@example.com",
	}

	resp, _ := doJSON(t, app, "POST", "/course", tokenFor(t, "plain@example.com"), body)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/course", "", body)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPublishedExcludesPendingAndCountsCartLines(t *testing.T) {
	config.LoadConfig()
	app, db := setupApp(t)

	pending := models.Course{Title: "Hidden", Status: models.StatusPending}
	approved := models.Course{Title: "Visible", Status: models.StatusApproved}
	db.Create(&pending)
	db.Create(&approved)

	db.Create(&models.CartItem{Email: "a@example.com", CourseID: approved.ID})
	db.Create(&models.CartItem{Email: "b@example.com", CourseID: approved.ID})

	resp, out := doJSON(t, app, "GET", "/courses", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var courses []struct {
		Title           string `json:"name"`
		EnrollmentCount int64  `json:"enrollmentCount"`
	}
	assert.NoError(t, json.Unmarshal(out.Data, &courses))
	assert.Len(t, courses, 1)
	assert.Equal(t, "Visible", courses[0].Title)
	assert.Equal(t, int64(2), courses[0].EnrollmentCount)
}

func TestPendingQueueAdminOnly(t *testing.T) {
	config.LoadConfig()
	app, db := setupApp(t)

	db.Create(&models.User{Email: "plain@example.com"})
	db.Create(&models.User{Email: "boss@example.com", Role: models.RoleAdmin})
	db.Create(&models.Course{Title: "Waiting", Status: models.StatusPending})

	resp, _ := doJSON(t, app, "GET", "/courses/pending", tokenFor(t, "plain@example.com"), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, out := doJSON(t, app, "GET", "/courses/pending", tokenFor(t, "boss@example.com"), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var courses []models.Course
	assert.NoError(t, json.Unmarshal(out.Data, &courses))
	assert.Len(t, courses, 1)
}

func TestSetStatusAcceptsAnyString(t *testing.T) {
	config.LoadConfig()
	app, db := setupApp(t)

	course := models.Course{Title: "Odd", Status: models.StatusPending}
	db.Create(&course)

	body := map[string]string{"status": "archived"}
	resp, _ := doJSON(t, app, "PATCH", fmt.Sprintf("/courses/admin/%d", course.ID), "", body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.Course
	db.First(&updated, course.ID)
	assert.Equal(t, "archived", updated.Status)
}

func TestInstructorFilter(t *testing.T) {
	config.LoadConfig()
	app, db := setupApp(t)

	db.Create(&models.Course{Title: "A", InstructorEmail: "x@example.com"})
	db.Create(&models.Course{Title: "B", InstructorEmail: "y@example.com"})

	resp, out := doJSON(t, app, "GET", "/courses/instructor?email=x@example.com", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var courses []models.Course
	assert.NoError(t, json.Unmarshal(out.Data, &courses))
	assert.Len(t, courses, 1)
	assert.Equal(t, "A", courses[0].Title)

	// Without a filter every course comes back
	resp, out = doJSON(t, app, "GET", "/courses/instructor", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NoError(t, json.Unmarshal(out.Data, &courses))
	assert.Len(t, courses, 2)
}
