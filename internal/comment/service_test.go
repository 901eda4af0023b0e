package comment

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStore is an in-memory Store for service tests
type mockStore struct {
	mu            sync.Mutex
	comments      map[string]*Comment
	posts         map[string]bool
	commentCounts map[string]int
	seq           int
}

func newMockStore() *mockStore {
	return &mockStore{
		comments:      make(map[string]*Comment),
		posts:         make(map[string]bool),
		commentCounts: make(map[string]int),
	}
}

func (m *mockStore) addPost(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[id] = true
}

func (m *mockStore) Create(ctx context.Context, c *Comment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.CreatedAt.IsZero() {
		// Monotonic timestamps so ordering tests are deterministic
		m.seq++
		c.CreatedAt = time.Now().Add(time.Duration(m.seq) * time.Millisecond)
	}
	cp := *c
	m.comments[c.ID] = &cp
	return nil
}

func (m *mockStore) GetByID(ctx context.Context, id string) (*Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *mockStore) ListByPost(ctx context.Context, params ListParams) ([]*Comment, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched []*Comment
	for _, c := range m.comments {
		if c.PostID != params.PostID {
			continue
		}
		cp := *c
		matched = append(matched, &cp)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
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

func (m *mockStore) Update(ctx context.Context, id string, req *UpdateCommentRequest) (*Comment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.comments[id]
	if !ok {
		return nil, nil
	}
	if req.Nickname != nil {
		c.Nickname = *req.Nickname
	}
	if req.Content != nil {
		c.Content = *req.Content
	}
	cp := *c
	return &cp, nil
}

func (m *mockStore) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.comments[id]; !ok {
		return ErrCommentNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *mockStore) PostExists(ctx context.Context, postID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.posts[postID], nil
}

func (m *mockStore) AddToPostCommentCount(ctx context.Context, postID string, delta int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commentCounts[postID] += delta
	if m.commentCounts[postID] < 0 {
		m.commentCounts[postID] = 0
	}
	return nil
}

func strPtr(s string) *string { return &s }

func createTestComment(t *testing.T, svc *Service, postID, content string) *Comment {
	t.Helper()
	c, err := svc.Create(context.Background(), postID, &CreateCommentRequest{
		Nickname: "visitor",
		Content:  content,
		Password: "pw",
	})
	require.NoError(t, err)
	return c
}

func TestCreateComment(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	store.addPost("p1")

	c := createTestComment(t, svc, "p1", "nice memory")

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "p1", c.PostID)
	assert.NotEqual(t, "pw", c.PasswordHash)
	assert.False(t, c.CreatedAt.IsZero())

	// Parent counter maintained on create
	assert.Equal(t, 1, store.commentCounts["p1"])
}

func TestCreateCommentMissingPost(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)

	_, err := svc.Create(context.Background(), "nope", &CreateCommentRequest{
		Nickname: "visitor",
		Content:  "hello",
		Password: "pw",
	})
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.Empty(t, store.comments)
}

func TestListComments(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	store.addPost("p1")
	ctx := context.Background()

	first := createTestComment(t, svc, "p1", "first")
	second := createTestComment(t, svc, "p1", "second")
	third := createTestComment(t, svc, "p1", "third")

	_, _, err := svc.ListByPost(ctx, ListParams{PostID: "missing", Limit: 10})
	assert.ErrorIs(t, err, ErrPostNotFound)

	comments, total, err := svc.ListByPost(ctx, ListParams{PostID: "p1", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, comments, 2)

	// Newest first
	assert.Equal(t, third.ID, comments[0].ID)
	assert.Equal(t, second.ID, comments[1].ID)

	comments, _, err = svc.ListByPost(ctx, ListParams{PostID: "p1", Skip: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, first.ID, comments[0].ID)
}

func TestUpdateComment(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	store.addPost("p1")
	ctx := context.Background()

	c := createTestComment(t, svc, "p1", "original")

	_, err := svc.Update(ctx, c.ID, &UpdateCommentRequest{Password: "wrong", Content: strPtr("edited")})
	assert.ErrorIs(t, err, ErrWrongPassword)
	stored, _ := store.GetByID(ctx, c.ID)
	assert.Equal(t, "original", stored.Content)

	updated, err := svc.Update(ctx, c.ID, &UpdateCommentRequest{Password: "pw", Content: strPtr("edited")})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)
	assert.Equal(t, "visitor", updated.Nickname)

	_, err = svc.Update(ctx, "missing", &UpdateCommentRequest{Password: "pw"})
	assert.ErrorIs(t, err, ErrCommentNotFound)
}

func TestDeleteComment(t *testing.T) {
	store := newMockStore()
	svc := NewService(store)
	store.addPost("p1")
	ctx := context.Background()

	c := createTestComment(t, svc, "p1", "bye")
	require.Equal(t, 1, store.commentCounts["p1"])

	assert.ErrorIs(t, svc.Delete(ctx, c.ID, "wrong"), ErrWrongPassword)
	assert.ErrorIs(t, svc.Delete(ctx, "missing", "pw"), ErrCommentNotFound)

	require.NoError(t, svc.Delete(ctx, c.ID, "pw"))
	stored, _ := store.GetByID(ctx, c.ID)
	assert.Nil(t, stored)

	// Parent counter maintained on delete
	assert.Equal(t, 0, store.commentCounts["p1"])
}
