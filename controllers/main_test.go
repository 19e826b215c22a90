package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/config"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/routes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeMailer struct {
	sentTo   []string
	resetURL string
}

func (f *fakeMailer) SendPasswordReset(to, resetURL string) error {
	f.sentTo = append(f.sentTo, to)
	f.resetURL = resetURL
	return nil
}

type testServer struct {
	db     *gorm.DB
	router *gin.Engine
	mailer *fakeMailer
	cfg    *config.AppConfig
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Report{}, &models.ForumPost{},
		&models.PostLike{}, &models.Comment{}, &models.Discussion{},
		&models.PollutionMeasurement{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	cfg := &config.AppConfig{
		Port:             "0",
		JWTSecret:        os.Getenv("JWT_SECRET"),
		UploadDir:        t.TempDir(),
		FrontendURL:      "http://localhost:3000",
		ResetTokenTTL:    15 * time.Minute,
		ClusterEps:       0.01,
		ClusterMinPoints: 3,
	}

	m := &fakeMailer{}
	router := gin.New()
	routes.SetupRoutes(router, db, cfg, m)

	return &testServer{db: db, router: router, mailer: m, cfg: cfg}
}

func (ts *testServer) request(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

// registerAndLogin creates an account with the given role and returns its id
// and a valid token.
func (ts *testServer) registerAndLogin(t *testing.T, username, email, password, role string) (uint, string) {
	t.Helper()

	w := ts.request(t, http.MethodPost, "/api/auth/register", map[string]interface{}{
		"username": username,
		"email":    email,
		"password": password,
		"role":     role,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("register returned %d: %s", w.Code, w.Body.String())
	}

	w = ts.request(t, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    email,
		"password": password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login returned %d: %s", w.Code, w.Body.String())
	}

	resp := decodeJSON(t, w)
	token, _ := resp["token"].(string)
	if token == "" {
		t.Fatal("login response carried no token")
	}
	id, _ := resp["id"].(float64)
	return uint(id), token
}
