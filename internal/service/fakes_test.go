package service

import (
	"context"
	"sort"

	"gierkopolecacz/backend/internal/models"
	"gierkopolecacz/backend/internal/repository"

	"github.com/google/uuid"
)

func game(id uint, rating float64, tags ...string) models.Game {
	g := models.Game{Name: "Gra", Rating: rating}
	g.ID = id
	for _, name := range tags {
		g.Tags = append(g.Tags, &models.Tag{Name: name})
	}
	return g
}

// fakeGames scores similarity the same way the SQL query does.
type fakeGames struct {
	games      map[uint]models.Game
	lastFilter repository.GameFilter
	lastTags   []string
	lastIgnore []uint
}

func newFakeGames(games ...models.Game) *fakeGames {
	f := &fakeGames{games: map[uint]models.Game{}}
	for _, g := range games {
		f.games[g.ID] = g
	}
	return f
}

func (f *fakeGames) sorted() []models.Game {
	out := make([]models.Game, 0, len(f.games))
	for _, g := range f.games {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeGames) Top(_ context.Context, n int) ([]models.Game, error) {
	out := f.sorted()
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (f *fakeGames) List(_ context.Context, filter repository.GameFilter) ([]models.Game, int64, error) {
	f.lastFilter = filter
	out := f.sorted()
	return out, int64(len(out)), nil
}

func (f *fakeGames) SearchNames(_ context.Context, _ string, limit int) ([]string, error) {
	return nil, nil
}

func (f *fakeGames) GetByID(_ context.Context, id uint) (*models.Game, error) {
	g, ok := f.games[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &g, nil
}

func (f *fakeGames) FindMostSimilarGames(_ context.Context, tags []string, exclude []uint, limit int) ([]models.Game, error) {
	f.lastTags = tags
	f.lastIgnore = exclude

	wanted := map[string]bool{}
	for _, t := range tags {
		wanted[t] = true
	}
	skip := map[uint]bool{}
	for _, id := range exclude {
		skip[id] = true
	}

	var out []models.Game
	for _, g := range f.sorted() {
		if skip[g.ID] {
			continue
		}
		n := 0
		for _, name := range g.TagNames() {
			if wanted[name] {
				n++
			}
		}
		if n > 0 {
			g.MatchingTags = n
			out = append(out, g)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchingTags != out[j].MatchingTags {
			return out[i].MatchingTags > out[j].MatchingTags
		}
		return out[i].Rating > out[j].Rating
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeCollections struct {
	items map[string]map[uint][]uint
}

func newFakeCollections() *fakeCollections {
	return &fakeCollections{items: map[string]map[uint][]uint{}}
}

func (f *fakeCollections) set(c repository.Collection, userID uint, ids ...uint) {
	if f.items[c.String()] == nil {
		f.items[c.String()] = map[uint][]uint{}
	}
	f.items[c.String()][userID] = ids
}

func (f *fakeCollections) GameIDs(_ context.Context, c repository.Collection, userID uint) ([]uint, error) {
	return f.items[c.String()][userID], nil
}

func (f *fakeCollections) Games(ctx context.Context, c repository.Collection, userID uint) ([]models.Game, error) {
	return nil, nil
}

func (f *fakeCollections) Count(_ context.Context, c repository.Collection, userID uint) (int64, error) {
	return int64(len(f.items[c.String()][userID])), nil
}

func (f *fakeCollections) Add(_ context.Context, c repository.Collection, userID uint, game *models.Game) error {
	for _, id := range f.items[c.String()][userID] {
		if id == game.ID {
			return nil
		}
	}
	f.set(c, userID, append(f.items[c.String()][userID], game.ID)...)
	return nil
}

func (f *fakeCollections) Remove(_ context.Context, c repository.Collection, userID, gameID uint) error {
	var kept []uint
	for _, id := range f.items[c.String()][userID] {
		if id != gameID {
			kept = append(kept, id)
		}
	}
	f.set(c, userID, kept...)
	return nil
}

// gameCollections resolves collection ids through a fakeGames catalog.
type gameCollections struct {
	*fakeCollections
	games *fakeGames
}

func (f gameCollections) Games(ctx context.Context, c repository.Collection, userID uint) ([]models.Game, error) {
	out := []models.Game{}
	for _, id := range f.items[c.String()][userID] {
		out = append(out, f.games.games[id])
	}
	return out, nil
}

type fakeRecommendations struct {
	created   []*models.Recommendation
	byID      map[uuid.UUID]*models.Recommendation
	opinions  []*models.Opinion
	onCreate  func(rec *models.Recommendation)
	opinionFn func(op *models.Opinion) error
}

func newFakeRecommendations() *fakeRecommendations {
	return &fakeRecommendations{byID: map[uuid.UUID]*models.Recommendation{}}
}

func (f *fakeRecommendations) Create(_ context.Context, rec *models.Recommendation) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	f.created = append(f.created, rec)
	f.byID[rec.ID] = rec
	if f.onCreate != nil {
		f.onCreate(rec)
	}
	return nil
}

func (f *fakeRecommendations) List(_ context.Context, userID uint, page, pageSize int) ([]models.Recommendation, int64, error) {
	return nil, 0, nil
}

func (f *fakeRecommendations) Get(_ context.Context, userID uint, id uuid.UUID) (*models.Recommendation, error) {
	rec, ok := f.byID[id]
	if !ok || rec.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return rec, nil
}

func (f *fakeRecommendations) CreateOpinion(_ context.Context, op *models.Opinion) error {
	if f.opinionFn != nil {
		if err := f.opinionFn(op); err != nil {
			return err
		}
	}
	f.opinions = append(f.opinions, op)
	f.byID[op.RecommendationID].OpinionCreated = true
	return nil
}

func (f *fakeRecommendations) Opinion(_ context.Context, userID uint, recommendationID uuid.UUID) (*models.Opinion, error) {
	for _, op := range f.opinions {
		if op.RecommendationID == recommendationID && op.UserID == userID {
			return op, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeUsers struct {
	users []*models.User
}

func (f *fakeUsers) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Nickname == user.Nickname || u.Email == user.Email {
			return repository.ErrConflict
		}
	}
	user.ID = uint(len(f.users) + 1)
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUsers) FindByLogin(_ context.Context, login string) (*models.User, error) {
	for _, u := range f.users {
		if u.Nickname == login || u.Email == login {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}
