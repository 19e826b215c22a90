package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/models"
	"github.com/Avotriniaina240/Urban-Pulse-Backend/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAuthTest(t *testing.T) (*gorm.DB, *models.User) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	user := &models.User{Username: "u", Email: "a@x.com", Password: "irrelevant", Role: models.RoleCitizen}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return db, user
}

func signToken(t *testing.T, secret string, userID uint, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     exp.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func authTestRouter(db *gorm.DB, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{AuthMiddleware(db)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": utils.GetUser(c).Username})
	})
	r.GET("/protected", handlers...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	db, _ := setupAuthTest(t)
	if w := doGet(authTestRouter(db), ""); w.Code != http.StatusUnauthorized {
		t.Errorf("missing header returned %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	db, _ := setupAuthTest(t)
	if w := doGet(authTestRouter(db), "not-a-bearer-token"); w.Code != http.StatusUnauthorized {
		t.Errorf("malformed header returned %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareBadSignature(t *testing.T) {
	db, user := setupAuthTest(t)
	token := signToken(t, "other-secret", user.ID, time.Now().Add(time.Hour))
	if w := doGet(authTestRouter(db), "Bearer "+token); w.Code != http.StatusForbidden {
		t.Errorf("bad signature returned %d, want 403", w.Code)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	db, user := setupAuthTest(t)
	token := signToken(t, "test-secret", user.ID, time.Now().Add(-time.Hour))
	if w := doGet(authTestRouter(db), "Bearer "+token); w.Code != http.StatusForbidden {
		t.Errorf("expired token returned %d, want 403", w.Code)
	}
}

func TestAuthMiddlewareUnknownUser(t *testing.T) {
	db, _ := setupAuthTest(t)
	token := signToken(t, "test-secret", 9999, time.Now().Add(time.Hour))
	if w := doGet(authTestRouter(db), "Bearer "+token); w.Code != http.StatusForbidden {
		t.Errorf("unknown user id returned %d, want 403", w.Code)
	}
}

func TestAuthMiddlewareAttachesUser(t *testing.T) {
	db, user := setupAuthTest(t)
	token := signToken(t, "test-secret", user.ID, time.Now().Add(time.Hour))
	w := doGet(authTestRouter(db), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("valid token returned %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireRolesAllowsListedRole(t *testing.T) {
	db, user := setupAuthTest(t)
	token := signToken(t, "test-secret", user.ID, time.Now().Add(time.Hour))
	r := authTestRouter(db, RequireRoles(models.RoleCitizen, models.RoleUrbanist))
	if w := doGet(r, "Bearer "+token); w.Code != http.StatusOK {
		t.Errorf("listed role returned %d, want 200", w.Code)
	}
}

func TestRequireRolesRejectsUnlistedRole(t *testing.T) {
	db, user := setupAuthTest(t)
	token := signToken(t, "test-secret", user.ID, time.Now().Add(time.Hour))
	r := authTestRouter(db, RequireRoles(models.RoleAdmin))
	if w := doGet(r, "Bearer "+token); w.Code != http.StatusForbidden {
		t.Errorf("unlisted role returned %d, want 403", w.Code)
	}
}

// The wildcard must admit any authenticated caller even when the allow-list
// also names roles the caller does not have.
func TestRequireRolesWildcardShortCircuits(t *testing.T) {
	db, user := setupAuthTest(t)
	token := signToken(t, "test-secret", user.ID, time.Now().Add(time.Hour))
	r := authTestRouter(db, RequireRoles(models.RoleAdmin, "*"))
	if w := doGet(r, "Bearer "+token); w.Code != http.StatusOK {
		t.Errorf("wildcard gate returned %d for citizen, want 200", w.Code)
	}
}
