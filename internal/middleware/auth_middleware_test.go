package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/yigit/campussphere/internal/app/models"
	"github.com/yigit/campussphere/internal/pkg/auth"
)

func newTestRouter(sessions *auth.SessionService, roles ...models.Role) *gin.Engine {
	gin.SetMode(gin.TestMode)
	m := NewAuthMiddleware(sessions)

	router := gin.New()
	group := router.Group("/", m.RequireAuth())
	if len(roles) > 0 {
		group.Use(m.RequireRoles(roles...))
	}
	group.GET("/secured", func(c *gin.Context) {
		principal := GetPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"userId": principal.UserID})
	})
	return router
}

func testSessions() *auth.SessionService {
	return auth.NewSessionService(auth.SessionConfig{
		SecretKey: "test-secret",
		TokenExp:  time.Hour,
	})
}

func TestRequireAuth_NoCookie(t *testing.T) {
	router := newTestRouter(testSessions())

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/secured", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error":"Authentication required"}`, recorder.Body.String())
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	sessions := testSessions()
	router := newTestRouter(sessions)

	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName(), Value: "garbage"})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRequireAuth_ValidCookie(t *testing.T) {
	sessions := testSessions()
	router := newTestRouter(sessions)

	token, err := sessions.IssueToken(7, "student", "s@campus.edu", "S")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName(), Value: token})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"userId":7}`, recorder.Body.String())
}

func TestRequireRoles_WrongRole(t *testing.T) {
	sessions := testSessions()
	router := newTestRouter(sessions, models.RoleAdmin)

	token, err := sessions.IssueToken(7, "student", "s@campus.edu", "S")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName(), Value: token})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.JSONEq(t, `{"error":"Insufficient permissions"}`, recorder.Body.String())
}

func TestRequireRoles_AllowedRole(t *testing.T) {
	sessions := testSessions()
	router := newTestRouter(sessions, models.RoleStudent, models.RoleAdmin)

	token, err := sessions.IssueToken(7, "student", "s@campus.edu", "S")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secured", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName(), Value: token})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
