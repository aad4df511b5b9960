package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/meghk47/FindWorker/entity"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Worker{},
		&entity.BookingRequest{},
		&entity.Feedback{},
		&entity.Session{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// newTestContext builds a gin context carrying a JSON body plus the keys
// the auth middleware would normally set.
func newTestContext(t *testing.T, username, role string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}
	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	if username != "" {
		c.Set("username", username)
		c.Set("role", role)
	}
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return out
}

func seedTestWorker(t *testing.T, db *gorm.DB, name string) *entity.Worker {
	t.Helper()

	w := &entity.Worker{
		Name:         name,
		Category:     "Plumber",
		Experience:   "5 Yrs",
		Rate:         "₹200/hr",
		Phone:        "9988776655",
		Address:      "Satara Road",
		Availability: "10 AM - 5 PM",
		Rating:       "4.5",
	}
	if err := db.Create(w).Error; err != nil {
		t.Fatalf("failed to seed worker: %v", err)
	}
	return w
}
