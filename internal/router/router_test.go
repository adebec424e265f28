package router

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gierkopolecacz/backend/internal/config"
	"gierkopolecacz/backend/internal/handler"
	"gierkopolecacz/backend/internal/hub"
	"gierkopolecacz/backend/internal/ingest"
	"gierkopolecacz/backend/internal/models"
	"gierkopolecacz/backend/internal/repository"
	"gierkopolecacz/backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryStore backs every service with maps.
type memoryStore struct {
	users       map[uint]*models.User
	games       map[uint]models.Game
	collections map[string][]uint
	recs        map[uuid.UUID]*models.Recommendation
	opinions    map[uuid.UUID]*models.Opinion
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:       map[uint]*models.User{},
		games:       map[uint]models.Game{},
		collections: map[string][]uint{},
		recs:        map[uuid.UUID]*models.Recommendation{},
		opinions:    map[uuid.UUID]*models.Opinion{},
	}
}

func collectionKey(c repository.Collection, userID uint) string {
	return fmt.Sprintf("%s:%d", c, userID)
}

// users

func (s *memoryStore) Create(_ context.Context, u *models.User) error {
	for _, existing := range s.users {
		if existing.Nickname == u.Nickname || existing.Email == u.Email {
			return repository.ErrConflict
		}
	}
	u.ID = uint(len(s.users) + 1)
	s.users[u.ID] = u
	return nil
}

func (s *memoryStore) FindByLogin(_ context.Context, login string) (*models.User, error) {
	for _, u := range s.users {
		if u.Nickname == login || u.Email == login {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *memoryStore) GetByIDUser(id uint) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

type userStore struct{ *memoryStore }

func (s userStore) GetByID(_ context.Context, id uint) (*models.User, error) {
	return s.GetByIDUser(id)
}

// games

type gameStore struct{ *memoryStore }

func (s gameStore) Top(_ context.Context, n int) ([]models.Game, error) {
	return s.all(), nil
}

func (s gameStore) List(_ context.Context, _ repository.GameFilter) ([]models.Game, int64, error) {
	games := s.all()
	return games, int64(len(games)), nil
}

func (s gameStore) SearchNames(_ context.Context, _ string, _ int) ([]string, error) {
	return []string{"Katan"}, nil
}

func (s gameStore) GetByID(_ context.Context, id uint) (*models.Game, error) {
	g, ok := s.games[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

func (s gameStore) FindMostSimilarGames(_ context.Context, tags []string, exclude []uint, limit int) ([]models.Game, error) {
	skip := map[uint]bool{}
	for _, id := range exclude {
		skip[id] = true
	}
	var out []models.Game
	for _, g := range s.all() {
		if !skip[g.ID] && len(g.Tags) > 0 {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *memoryStore) all() []models.Game {
	var out []models.Game
	for id := uint(1); id <= uint(len(s.games)); id++ {
		out = append(out, s.games[id])
	}
	return out
}

// collections

type collectionStore struct{ *memoryStore }

func (s collectionStore) Games(_ context.Context, c repository.Collection, userID uint) ([]models.Game, error) {
	out := []models.Game{}
	for _, id := range s.collections[collectionKey(c, userID)] {
		out = append(out, s.games[id])
	}
	return out, nil
}

func (s collectionStore) GameIDs(_ context.Context, c repository.Collection, userID uint) ([]uint, error) {
	return s.collections[collectionKey(c, userID)], nil
}

func (s collectionStore) Count(_ context.Context, c repository.Collection, userID uint) (int64, error) {
	return int64(len(s.collections[collectionKey(c, userID)])), nil
}

func (s collectionStore) Add(_ context.Context, c repository.Collection, userID uint, g *models.Game) error {
	key := collectionKey(c, userID)
	for _, id := range s.collections[key] {
		if id == g.ID {
			return nil
		}
	}
	s.collections[key] = append(s.collections[key], g.ID)
	return nil
}

func (s collectionStore) Remove(_ context.Context, c repository.Collection, userID, gameID uint) error {
	key := collectionKey(c, userID)
	var kept []uint
	for _, id := range s.collections[key] {
		if id != gameID {
			kept = append(kept, id)
		}
	}
	s.collections[key] = kept
	return nil
}

// recommendations

type recommendationStore struct{ *memoryStore }

func (s recommendationStore) Create(_ context.Context, rec *models.Recommendation) error {
	rec.ID = uuid.New()
	s.recs[rec.ID] = rec
	delete(s.collections, collectionKey(repository.Selected, rec.UserID))
	return nil
}

func (s recommendationStore) List(_ context.Context, userID uint, _, _ int) ([]models.Recommendation, int64, error) {
	var out []models.Recommendation
	for _, rec := range s.recs {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out, int64(len(out)), nil
}

func (s recommendationStore) Get(_ context.Context, userID uint, id uuid.UUID) (*models.Recommendation, error) {
	rec, ok := s.recs[id]
	if !ok || rec.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return rec, nil
}

func (s recommendationStore) CreateOpinion(_ context.Context, op *models.Opinion) error {
	if _, ok := s.opinions[op.RecommendationID]; ok {
		return repository.ErrConflict
	}
	s.opinions[op.RecommendationID] = op
	s.recs[op.RecommendationID].OpinionCreated = true
	return nil
}

func (s recommendationStore) Opinion(_ context.Context, userID uint, id uuid.UUID) (*models.Opinion, error) {
	op, ok := s.opinions[id]
	if !ok || op.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return op, nil
}

type stubImporter struct {
	running bool
	limits  []int
	ctx     context.Context
}

func (i *stubImporter) Start(ctx context.Context, limit int) error {
	if i.running {
		return ingest.ErrImportRunning
	}
	i.limits = append(i.limits, limit)
	i.ctx = ctx
	return nil
}

func (i *stubImporter) Running() bool { return i.running }

type testAPI struct {
	t        *testing.T
	store    *memoryStore
	importer *stubImporter
	handler  *handler.Handler
	engine   *gin.Engine
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)
	prev := config.AppConfig
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	t.Cleanup(func() { config.AppConfig = prev })

	store := newMemoryStore()
	users, games, collections, recs := userStore{store}, gameStore{store}, collectionStore{store}, recommendationStore{store}
	importer := &stubImporter{}

	h := &handler.Handler{
		Users:           service.NewUserService(users, collections),
		Games:           service.NewGameService(games, collections),
		Collections:     service.NewCollectionService(games, collections),
		Recommendations: service.NewRecommendationService(games, collections, recs),
		Importer:        importer,
		Hub:             hub.NewHub(),
		ImportLimit:     100,
	}
	return &testAPI{t: t, store: store, importer: importer, handler: h, engine: Setup(h, users)}
}

func (a *testAPI) addGame(id uint, name string, tags ...string) {
	g := models.Game{Name: name, Rank: int(id)}
	g.ID = id
	for _, tag := range tags {
		g.Tags = append(g.Tags, &models.Tag{Name: tag})
	}
	a.store.games[id] = g
}

func (a *testAPI) request(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testAPI) register(nickname string) string {
	a.t.Helper()
	w := a.request(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"nickname": nickname,
		"email":    nickname + "@example.com",
		"password": "password123",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	var resp handler.TokenResponse
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestPing(t *testing.T) {
	api := newTestAPI(t)
	w := api.request(http.MethodGet, "/ping", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestAuthFlow(t *testing.T) {
	api := newTestAPI(t)
	token := api.register("ala")

	w := api.request(http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"nickname": "ala", "email": "other@example.com", "password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.request(http.MethodPost, "/api/v1/auth/register", "", gin.H{"nickname": "ola", "email": "bad", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email must be a valid email address")

	w = api.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{"login": "ala@example.com", "password": "password123"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.request(http.MethodPost, "/api/v1/auth/login", "", gin.H{"login": "ala", "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.request(http.MethodGet, "/api/v1/users/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	profile := decode[handler.ProfileResponse](t, w)
	assert.Equal(t, "ala", profile.Nickname)
	assert.Zero(t, profile.SelectedCount)

	assert.Equal(t, http.StatusUnauthorized, api.request(http.MethodGet, "/api/v1/users/me", "", nil).Code)
}

func TestGames(t *testing.T) {
	api := newTestAPI(t)
	api.addGame(1, "Katan", "Ekonomiczna")
	api.addGame(2, "Gloomhaven", "Fantasy")
	token := api.register("ala")

	w := api.request(http.MethodPost, "/api/v1/selected-games/2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.request(http.MethodGet, "/api/v1/games?ordering=-rating", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	page := decode[handler.PaginatedGameResponse](t, w)
	require.Len(t, page.Data, 2)
	assert.False(t, page.Data[0].IsSelected)
	assert.True(t, page.Data[1].IsSelected)
	assert.Equal(t, int64(2), page.Meta.TotalItems)

	w = api.request(http.MethodGet, "/api/v1/games", "", nil)
	page = decode[handler.PaginatedGameResponse](t, w)
	assert.False(t, page.Data[1].IsSelected)

	assert.Equal(t, http.StatusBadRequest, api.request(http.MethodGet, "/api/v1/games?ordering=year", "", nil).Code)

	w = api.request(http.MethodGet, "/api/v1/games/2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	game := decode[handler.GameResponse](t, w)
	assert.Equal(t, []string{"Fantasy"}, game.Tags)

	assert.Equal(t, http.StatusNotFound, api.request(http.MethodGet, "/api/v1/games/9", "", nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.request(http.MethodGet, "/api/v1/games/abc", "", nil).Code)

	w = api.request(http.MethodGet, "/api/v1/games/search?q=kat", "", nil)
	assert.JSONEq(t, `["Katan"]`, w.Body.String())
	w = api.request(http.MethodGet, "/api/v1/games/search", "", nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = api.request(http.MethodGet, "/api/v1/games/tags", "", nil)
	tags := decode[handler.TagsResponse](t, w)
	assert.Len(t, tags.Categories, 35)
	assert.Len(t, tags.Mechanics, 36)

	w = api.request(http.MethodGet, "/api/v1/games/top", "", nil)
	assert.Len(t, decode[[]handler.GameResponse](t, w), 2)
}

func TestCollections(t *testing.T) {
	api := newTestAPI(t)
	api.addGame(1, "Katan", "Ekonomiczna")
	token := api.register("ala")

	assert.Equal(t, http.StatusNotFound, api.request(http.MethodPost, "/api/v1/owned-games/7", token, nil).Code)
	assert.Equal(t, http.StatusOK, api.request(http.MethodPost, "/api/v1/owned-games/1", token, nil).Code)
	assert.Equal(t, http.StatusOK, api.request(http.MethodPost, "/api/v1/owned-games/1", token, nil).Code)

	w := api.request(http.MethodGet, "/api/v1/owned-games", token, nil)
	assert.Len(t, decode[[]handler.GameResponse](t, w), 1)

	assert.Equal(t, http.StatusOK, api.request(http.MethodDelete, "/api/v1/owned-games/1", token, nil).Code)
	w = api.request(http.MethodGet, "/api/v1/owned-games", token, nil)
	assert.Empty(t, decode[[]handler.GameResponse](t, w))

	assert.Equal(t, http.StatusUnauthorized, api.request(http.MethodGet, "/api/v1/selected-games", "", nil).Code)
}

func TestRecommendationFlow(t *testing.T) {
	api := newTestAPI(t)
	api.addGame(1, "Gloomhaven", "Fantasy")
	api.addGame(2, "Brzdęk", "Fantasy")
	api.addGame(3, "Katan")
	token := api.register("ala")

	w := api.request(http.MethodPost, "/api/v1/recommendations", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.Equal(t, http.StatusOK, api.request(http.MethodPost, "/api/v1/selected-games/1", token, nil).Code)
	w = api.request(http.MethodPost, "/api/v1/recommendations", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	rec := decode[handler.RecommendationResponse](t, w)
	require.Len(t, rec.RecommendedGames, 1)
	assert.Equal(t, uint(2), rec.RecommendedGames[0].ID)
	assert.Equal(t, uint(1), rec.SelectedGames[0].ID)

	w = api.request(http.MethodGet, "/api/v1/selected-games", token, nil)
	assert.Empty(t, decode[[]handler.GameResponse](t, w))

	path := "/api/v1/recommendations/" + rec.ID.String()
	w = api.request(http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	other := api.register("ola")
	assert.Equal(t, http.StatusNotFound, api.request(http.MethodGet, path, other, nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.request(http.MethodGet, "/api/v1/recommendations/not-a-uuid", token, nil).Code)

	assert.Equal(t, http.StatusNotFound, api.request(http.MethodGet, path+"/opinion", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, api.request(http.MethodPost, path+"/opinion", token, gin.H{"rating": 11, "description": "x"}).Code)

	w = api.request(http.MethodPost, path+"/opinion", token, gin.H{"rating": 9, "description": "Trafione"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, http.StatusConflict, api.request(http.MethodPost, path+"/opinion", token, gin.H{"rating": 3, "description": "Znowu"}).Code)

	w = api.request(http.MethodGet, path+"/opinion", token, nil)
	assert.Equal(t, 9, decode[handler.OpinionResponse](t, w).Rating)

	w = api.request(http.MethodGet, "/api/v1/recommendations", token, nil)
	list := decode[handler.PaginatedRecommendationResponse](t, w)
	require.Len(t, list.Data, 1)
	assert.True(t, list.Data[0].OpinionCreated)
	assert.Equal(t, 20, list.Meta.PageSize)
}

func TestAdminImport(t *testing.T) {
	api := newTestAPI(t)
	userToken := api.register("ala")
	adminToken := api.register("admin")
	api.store.users[2].Role = models.RoleAdmin

	assert.Equal(t, http.StatusForbidden, api.request(http.MethodPost, "/api/v1/admin/import", userToken, nil).Code)

	w := api.request(http.MethodPost, "/api/v1/admin/import", adminToken, nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
	w = api.request(http.MethodPost, "/api/v1/admin/import?limit=5", adminToken, nil)
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, []int{100, 5}, api.importer.limits)
	assert.Equal(t, context.Background(), api.importer.ctx)

	serverCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	api.handler.ImportContext = serverCtx
	assert.Equal(t, http.StatusAccepted, api.request(http.MethodPost, "/api/v1/admin/import", adminToken, nil).Code)
	assert.Equal(t, serverCtx, api.importer.ctx)

	assert.Equal(t, http.StatusBadRequest, api.request(http.MethodPost, "/api/v1/admin/import?limit=-1", adminToken, nil).Code)

	api.importer.running = true
	assert.Equal(t, http.StatusConflict, api.request(http.MethodPost, "/api/v1/admin/import", adminToken, nil).Code)
	w = api.request(http.MethodGet, "/api/v1/admin/import", adminToken, nil)
	assert.JSONEq(t, `{"running":true}`, w.Body.String())
}
