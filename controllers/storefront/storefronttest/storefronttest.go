// Package storefronttest wires a session registry, a session cookie and a gin
// engine for controller tests.
package storefronttest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/longpt2111/food-app/middleware"
	"github.com/longpt2111/food-app/models"
	"github.com/longpt2111/food-app/services"
	"github.com/longpt2111/food-app/session"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Catalog is an in-memory CatalogGateway.
type Catalog struct {
	mu      sync.Mutex
	Items   []models.FoodItem
	Err     error
	Created []models.FoodItemInput

	gate    chan struct{}
	started chan struct{}
}

// Hold makes FetchAll block until release is called or its context ends.
// Each blocked fetch is announced on started.
func (c *Catalog) Hold() (started <-chan struct{}, release func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gate = make(chan struct{})
	c.started = make(chan struct{}, 16)
	gate := c.gate
	var once sync.Once
	return c.started, func() { once.Do(func() { close(gate) }) }
}

func (c *Catalog) FetchAll(ctx context.Context) ([]models.FoodItem, error) {
	c.mu.Lock()
	gate, started := c.gate, c.started
	c.mu.Unlock()
	if gate != nil {
		select {
		case started <- struct{}{}:
		default:
		}
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	return append([]models.FoodItem(nil), c.Items...), nil
}

func (c *Catalog) Create(_ context.Context, input models.FoodItemInput) (string, error) {
	if !models.IsFoodCategory(input.Category) {
		return "", services.ErrUnknownCategory
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return "", c.Err
	}
	item := input.ToFoodItem()
	item.ID = "new-" + input.Title
	c.Items = append(c.Items, item)
	c.Created = append(c.Created, input)
	return item.ID, nil
}

// Mirror is an in-memory UserMirror.
type Mirror struct {
	mu    sync.Mutex
	users map[string]*models.UserProfile
}

func NewMirror() *Mirror {
	return &Mirror{users: make(map[string]*models.UserProfile)}
}

func (m *Mirror) Load(_ context.Context, id string) (*models.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *Mirror) Save(_ context.Context, id string, p *models.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[id] = p
	return nil
}

func (m *Mirror) Clear(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
	return nil
}

// Env is a gin engine with SessionMiddleware installed.
type Env struct {
	Router   *gin.Engine
	Registry *session.Registry
	Tokens   *services.JWTService
	Mirror   *Mirror
	Catalog  *Catalog
}

func NewEnv(t *testing.T, catalog *Catalog) *Env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if catalog == nil {
		catalog = &Catalog{}
	}

	mirror := NewMirror()
	registry := session.NewRegistry(mirror, catalog, zap.NewNop())
	t.Cleanup(registry.Shutdown)

	tokens, err := services.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.SessionMiddleware(registry, tokens, middleware.SessionCookie{}, zap.NewNop()))

	return &Env{Router: r, Registry: registry, Tokens: tokens, Mirror: mirror, Catalog: catalog}
}

// Open returns the session for id with its first menu load finished.
func (e *Env) Open(t *testing.T, id string) *session.Session {
	t.Helper()
	s := e.Registry.Open(context.Background(), id)
	<-s.MenuLoad().Done()
	return s
}

// SignIn opens the session for id and signs profile in.
func (e *Env) SignIn(t *testing.T, id string, profile *models.UserProfile) *session.Session {
	t.Helper()
	s := e.Open(t, id)
	require.NoError(t, s.SignIn(context.Background(), profile))
	return s
}

// Cookie is the session cookie that resolves to id.
func (e *Env) Cookie(t *testing.T, id string) *http.Cookie {
	t.Helper()
	token, err := e.Tokens.GenerateSessionToken(id)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookieName, Value: token}
}

// SessionID returns the session id carried by the last session cookie w set,
// or "" when it set none.
func (e *Env) SessionID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var id string
	for _, c := range w.Result().Cookies() {
		if c.Name != middleware.SessionCookieName {
			continue
		}
		claims, err := e.Tokens.VerifySessionToken(c.Value)
		require.NoError(t, err)
		id = claims.SessionID
	}
	return id
}

// Do serves req as session id and returns the recorded response.
func (e *Env) Do(t *testing.T, id string, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	req.AddCookie(e.Cookie(t, id))
	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}
