package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dendisetiawann/kejora-frontend/libs"
	"github.com/dendisetiawann/kejora-frontend/models"
	"github.com/dendisetiawann/kejora-frontend/repositories"
	"github.com/dendisetiawann/kejora-frontend/services"
)

type emptyLister struct{}

func (emptyLister) ListOrders(ctx context.Context) ([]models.Order, error) {
	return nil, nil
}

func adminTestRouter(t *testing.T) (*gin.Engine, *repositories.TokenRepository, *services.NotificationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := repositories.NewTokenRepository(repositories.NewMemoryKV())
	api := libs.NewKejoraAPI("http://127.0.0.1:0", nil)
	notifications := services.NewNotificationService(emptyLister{}, time.Hour, time.Minute)
	auth := services.NewAuthService(api, tokens, notifications)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(sessionGinKey, "sess")
		c.Next()
	})
	router.Use(AdminMiddleware(auth, notifications))
	router.GET("/admin/orders", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router, tokens, notifications
}

func TestAdminMiddlewareRejectsWithoutToken(t *testing.T) {
	router, _, _ := adminTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["redirect"] != "/admin/login" {
		t.Fatalf("expected login redirect hint, got %v", body)
	}
}

func TestAdminMiddlewareBackgroundPollsCarryBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var mu sync.Mutex
	var auths []string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		auths = append(auths, r.Header.Get("Authorization"))
		mu.Unlock()
		w.Write([]byte(`[]`))
	}))
	defer upstream.Close()

	// Same wiring as SetupRoutes: the admin client resolves the token from
	// the session carried in the request context.
	tokens := repositories.NewTokenRepository(repositories.NewMemoryKV())
	api := libs.NewKejoraAPI(upstream.URL, func(ctx context.Context) string {
		sessionID := SessionFromContext(ctx)
		if sessionID == "" {
			return ""
		}
		token, err := tokens.Get(ctx, sessionID)
		if err != nil {
			return ""
		}
		return token
	})
	notifications := services.NewNotificationService(api, 5*time.Millisecond, time.Minute)
	auth := services.NewAuthService(api, tokens, notifications)
	tokens.Set(context.Background(), "sess", "tok-123")
	defer notifications.Stop("sess")

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(sessionGinKey, "sess")
		c.Next()
	})
	router.Use(AdminMiddleware(auth, notifications))
	router.GET("/admin/orders", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		mu.Lock()
		n := len(auths)
		mu.Unlock()
		if n >= 2 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("background poller never reached the upstream")
		}
		time.Sleep(5 * time.Millisecond)
	}

	mu.Lock()
	defer mu.Unlock()
	for i, got := range auths {
		if got != "Bearer tok-123" {
			t.Fatalf("background poll %d sent %q, want the session's bearer token", i, got)
		}
	}
}

func TestAdminMiddlewareStartsPollerWithToken(t *testing.T) {
	router, tokens, notifications := adminTestRouter(t)
	tokens.Set(context.Background(), "sess", "tok-123")
	defer notifications.Stop("sess")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/orders", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := notifications.Engine("sess"); !ok {
		t.Fatal("expected notification engine started on staff-area entry")
	}
}
