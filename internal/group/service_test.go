package group

import (
	"context"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zogakzip/pkg/secret"
)

type mockPost struct {
	groupID   string
	createdAt time.Time
	likes     int
}

// mockStore is an in-memory Store for service tests
type mockStore struct {
	mu          sync.Mutex
	groups      map[string]*Group
	posts       []mockPost
	badgeWrites int
}

func newMockStore() *mockStore {
	return &mockStore{groups: make(map[string]*Group)}
}

func (m *mockStore) addPosts(groupID string, n int, createdAt time.Time, likes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := 0; i < n; i++ {
		m.posts = append(m.posts, mockPost{groupID: groupID, createdAt: createdAt, likes: likes})
	}
}

func cloneGroup(g *Group) *Group {
	cp := *g
	cp.Badges = append([]string(nil), g.Badges...)
	return &cp
}

func (m *mockStore) Create(ctx context.Context, g *Group) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	m.groups[g.ID] = cloneGroup(g)
	return nil
}

func (m *mockStore) GetByID(ctx context.Context, id string) (*Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	if !ok {
		return nil, nil
	}
	return cloneGroup(g), nil
}

func (m *mockStore) List(ctx context.Context, params ListParams) ([]*Group, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*Group
	for _, g := range m.groups {
		if params.Keyword != "" && !strings.Contains(strings.ToLower(g.Name), strings.ToLower(params.Keyword)) {
			continue
		}
		if params.IsPublic != nil && g.IsPublic != *params.IsPublic {
			continue
		}
		matched = append(matched, cloneGroup(g))
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch params.SortBy {
		case SortMostPosted:
			if a.PostCount != b.PostCount {
				return a.PostCount > b.PostCount
			}
		case SortMostLiked:
			if a.LikeCount != b.LikeCount {
				return a.LikeCount > b.LikeCount
			}
		case SortMostBadge:
			if len(a.Badges) != len(b.Badges) {
				return len(a.Badges) > len(b.Badges)
			}
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	total := len(matched)
	if params.Skip >= total {
		return nil, total, nil
	}
	end := params.Skip + params.Limit
	if end > total {
		end = total
	}
	return matched[params.Skip:end], total, nil
}

func (m *mockStore) Update(ctx context.Context, id string, req *UpdateGroupRequest) (*Group, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	if !ok {
		return nil, nil
	}
	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.ImageURL != nil {
		g.ImageURL = req.ImageURL
	}
	if req.Introduction != nil {
		g.Introduction = req.Introduction
	}
	if req.IsPublic != nil {
		g.IsPublic = *req.IsPublic
	}
	return cloneGroup(g), nil
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.groups[id]; !ok {
		return ErrGroupNotFound
	}
	delete(m.groups, id)
	return nil
}

func (m *mockStore) IncrementLikes(ctx context.Context, id string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	if !ok {
		return 0, ErrGroupNotFound
	}
	g.LikeCount++
	return g.LikeCount, nil
}

func (m *mockStore) UpdateBadges(ctx context.Context, id string, badges []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.groups[id]
	if !ok {
		return ErrGroupNotFound
	}
	g.Badges = append([]string(nil), badges...)
	m.badgeWrites++
	return nil
}

func (m *mockStore) CountPostsSince(ctx context.Context, groupID string, since time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, p := range m.posts {
		if p.groupID == groupID && !p.createdAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (m *mockStore) CountPosts(ctx context.Context, groupID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, p := range m.posts {
		if p.groupID == groupID {
			count++
		}
	}
	return count, nil
}

func (m *mockStore) HasPostWithLikes(ctx context.Context, groupID string, minLikes int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.posts {
		if p.groupID == groupID && p.likes >= minLikes {
			return true, nil
		}
	}
	return false, nil
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func createTestGroup(t *testing.T, svc *Service, name, password string, isPublic bool) *Group {
	t.Helper()
	g, err := svc.Create(context.Background(), &CreateGroupRequest{
		Name:     name,
		Password: password,
		IsPublic: boolPtr(isPublic),
	})
	require.NoError(t, err)
	return g
}

func TestCreateGroup(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)

	g := createTestGroup(t, svc, "family", "pw123", true)

	assert.NotEmpty(t, g.ID)
	assert.Equal(t, "family", g.Name)
	assert.True(t, g.IsPublic)
	assert.Equal(t, 0, g.LikeCount)
	assert.Equal(t, 0, g.PostCount)
	assert.Empty(t, g.Badges)
	assert.False(t, g.CreatedAt.IsZero())

	// Secret is stored hashed, never plaintext
	assert.NotEqual(t, "pw123", g.PasswordHash)
	assert.True(t, secret.Verify(g.PasswordHash, "pw123"))
}

func TestRefreshBadgesNewGroupEarnsNothing(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	g := createTestGroup(t, svc, "fresh", "", true)

	require.NoError(t, svc.RefreshBadges(context.Background(), g))

	assert.Empty(t, g.Badges)
	assert.Equal(t, 0, store.badgeWrites)
}

func TestRefreshBadgesWeeklyMemories(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	g := createTestGroup(t, svc, "active", "", true)

	// 7 posts inside the trailing window, but far from 20 total
	store.addPosts(g.ID, 7, time.Now().Add(-24*time.Hour), 0)

	require.NoError(t, svc.RefreshBadges(context.Background(), g))

	assert.Contains(t, g.Badges, BadgeWeeklyMemories)
	assert.NotContains(t, g.Badges, BadgeTwentyMemories)
	assert.Equal(t, 1, store.badgeWrites)
}

func TestRefreshBadgesTwentyMemories(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	g := createTestGroup(t, svc, "prolific", "", true)

	// 20 posts, all outside the weekly window
	store.addPosts(g.ID, 20, time.Now().AddDate(0, -2, 0), 0)

	require.NoError(t, svc.RefreshBadges(context.Background(), g))

	assert.Contains(t, g.Badges, BadgeTwentyMemories)
	assert.NotContains(t, g.Badges, BadgeWeeklyMemories)
}

func TestRefreshBadgesAnniversary(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	g := createTestGroup(t, svc, "old-timer", "", true)

	store.mu.Lock()
	store.groups[g.ID].CreatedAt = time.Now().AddDate(-1, -1, 0)
	store.mu.Unlock()
	g.CreatedAt = time.Now().AddDate(-1, -1, 0)

	require.NoError(t, svc.RefreshBadges(context.Background(), g))

	assert.Contains(t, g.Badges, BadgeAnniversary)
}

func TestRefreshBadgesLikeThresholds(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	g := createTestGroup(t, svc, "popular", "", true)

	g.LikeCount = 10000
	store.addPosts(g.ID, 1, time.Now(), 12345)

	require.NoError(t, svc.RefreshBadges(context.Background(), g))

	assert.Contains(t, g.Badges, BadgeGroupLikes10K)
	assert.Contains(t, g.Badges, BadgeMemoryLikes10K)
	// Two badges fired, still a single persist
	assert.Equal(t, 1, store.badgeWrites)
}

func TestRefreshBadgesIdempotent(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	g := createTestGroup(t, svc, "steady", "", true)
	store.addPosts(g.ID, 20, time.Now().AddDate(0, -2, 0), 0)

	require.NoError(t, svc.RefreshBadges(context.Background(), g))
	earned := append([]string(nil), g.Badges...)

	require.NoError(t, svc.RefreshBadges(context.Background(), g))
	require.NoError(t, svc.RefreshBadges(context.Background(), g))

	assert.Equal(t, earned, g.Badges)
	assert.Equal(t, 1, store.badgeWrites)
}

func TestGetDetailPasswordGating(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	private := createTestGroup(t, svc, "secret-club", "hunter2", false)
	public := createTestGroup(t, svc, "open-club", "hunter2", true)

	_, err := svc.GetDetail(ctx, "no-such-id", "")
	assert.ErrorIs(t, err, ErrGroupNotFound)

	_, err = svc.GetDetail(ctx, private.ID, "wrong")
	assert.ErrorIs(t, err, ErrWrongPassword)

	got, err := svc.GetDetail(ctx, private.ID, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, private.ID, got.ID)

	// Public groups never require a password on detail
	got, err = svc.GetDetail(ctx, public.ID, "")
	require.NoError(t, err)
	assert.Equal(t, public.ID, got.ID)
}

func TestUpdateGroup(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	g := createTestGroup(t, svc, "before", "pw", true)

	// Wrong password leaves the stored group unchanged
	_, err := svc.Update(ctx, g.ID, &UpdateGroupRequest{Password: "nope", Name: strPtr("after")})
	assert.ErrorIs(t, err, ErrWrongPassword)
	stored, _ := store.GetByID(ctx, g.ID)
	assert.Equal(t, "before", stored.Name)

	// Partial update touches only supplied fields
	updated, err := svc.Update(ctx, g.ID, &UpdateGroupRequest{Password: "pw", Name: strPtr("after")})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
	assert.True(t, updated.IsPublic)
}

func TestDeleteGroup(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	g := createTestGroup(t, svc, "doomed", "pw", true)

	assert.ErrorIs(t, svc.Delete(ctx, g.ID, "wrong"), ErrWrongPassword)
	assert.ErrorIs(t, svc.Delete(ctx, "missing", "pw"), ErrGroupNotFound)

	require.NoError(t, svc.Delete(ctx, g.ID, "pw"))
	stored, _ := store.GetByID(ctx, g.ID)
	assert.Nil(t, stored)
}

func TestVerifyPassword(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	public := createTestGroup(t, svc, "open", "pw", true)
	private := createTestGroup(t, svc, "closed", "pw", false)

	// Public groups pass with any password, including empty
	assert.NoError(t, svc.VerifyPassword(ctx, public.ID, ""))
	assert.NoError(t, svc.VerifyPassword(ctx, public.ID, "whatever"))

	assert.NoError(t, svc.VerifyPassword(ctx, private.ID, "pw"))
	assert.ErrorIs(t, svc.VerifyPassword(ctx, private.ID, "wrong"), ErrWrongPassword)
	assert.ErrorIs(t, svc.VerifyPassword(ctx, "missing", "pw"), ErrGroupNotFound)
}

func TestLikeGroupConcurrent(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	g := createTestGroup(t, svc, "liked", "", true)

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Like(ctx, g.ID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, _ := store.GetByID(ctx, g.ID)
	assert.Equal(t, n, stored.LikeCount)
}

func TestListGroups(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	createTestGroup(t, svc, "alpha memories", "", true)
	createTestGroup(t, svc, "beta memories", "", false)
	createTestGroup(t, svc, "gamma", "", true)

	_, _, err := svc.List(ctx, ListParams{SortBy: "mostRecent", Limit: 10})
	assert.ErrorIs(t, err, ErrInvalidSortKey)

	groups, total, err := svc.List(ctx, ListParams{Keyword: "MEMORIES", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, groups, 2)

	groups, total, err = svc.List(ctx, ListParams{IsPublic: boolPtr(true), Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	for _, g := range groups {
		assert.True(t, g.IsPublic)
	}
}

func TestListRefreshesBadges(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	ctx := context.Background()

	g := createTestGroup(t, svc, "earner", "", true)
	store.addPosts(g.ID, 20, time.Now().AddDate(0, -2, 0), 0)

	groups, _, err := svc.List(ctx, ListParams{Limit: 10})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Contains(t, groups[0].Badges, BadgeTwentyMemories)

	// The earned badge was persisted, not just decorated on the way out
	stored, _ := store.GetByID(ctx, g.ID)
	assert.Contains(t, stored.Badges, BadgeTwentyMemories)
}
