package ledger

import (
	"testing"

	"github.com/atharvabaodhankar/socio3-ledger/internal/events"
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of repositories.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) CreatePost(post *models.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetPostByID(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) GetAllPosts() ([]models.Post, error) {
	args := m.Called()
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPostsByAuthor(author string) ([]models.Post, error) {
	args := m.Called(author)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPostsByAuthors(authors []string) ([]models.Post, error) {
	args := m.Called(authors)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetPostCount() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// MockReportRepository is a mock implementation of repositories.ReportRepository
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) CreateReport(report *models.Report) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockReportRepository) HasReported(postID uint, reporter string) (bool, error) {
	args := m.Called(postID, reporter)
	return args.Bool(0), args.Error(1)
}

func (m *MockReportRepository) GetReportCount(postID uint) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReportRepository) GetReportsByPostID(postID uint) ([]models.Report, error) {
	args := m.Called(postID)
	return args.Get(0).([]models.Report), args.Error(1)
}

func TestCreatePost(t *testing.T) {
	posts := new(MockPostRepository)
	reports := new(MockReportRepository)
	bus := events.NewBus()

	var published []events.Event
	bus.Subscribe(func(e events.Event) {
		published = append(published, e)
	})

	posts.On("CreatePost", mock.AnythingOfType("*models.Post")).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Post).ID = 1
	}).Return(nil)

	registry := NewPostRegistry(posts, reports, bus)

	post, err := registry.CreatePost("0xAlice", "QmHash1")
	assert.NoError(t, err)
	assert.Equal(t, uint(1), post.ID)
	assert.Equal(t, "0xAlice", post.Author)
	assert.Equal(t, "QmHash1", post.IPFSHash)

	// The PostCreated event is the id-discovery contract
	assert.Len(t, published, 1)
	assert.Equal(t, events.PostCreated, published[0].Type)
	assert.Equal(t, uint(1), published[0].PostID)
	assert.Equal(t, "0xAlice", published[0].Actor)
	assert.Equal(t, "QmHash1", published[0].IPFSHash)

	posts.AssertExpectations(t)
}

func TestCreatePostEmptyContent(t *testing.T) {
	posts := new(MockPostRepository)
	reports := new(MockReportRepository)
	registry := NewPostRegistry(posts, reports, events.NewBus())

	post, err := registry.CreatePost("0xAlice", "")
	assert.ErrorIs(t, err, ErrEmptyContent)
	assert.Nil(t, post)
	posts.AssertNotCalled(t, "CreatePost", mock.Anything)
}

func TestGetPostNotFound(t *testing.T) {
	posts := new(MockPostRepository)
	reports := new(MockReportRepository)
	registry := NewPostRegistry(posts, reports, events.NewBus())

	posts.On("GetPostByID", uint(42)).Return(nil, nil)

	post, err := registry.GetPost(42)
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.Nil(t, post)
}

func TestReportPost(t *testing.T) {
	posts := new(MockPostRepository)
	reports := new(MockReportRepository)
	bus := events.NewBus()

	var published []events.Event
	bus.Subscribe(func(e events.Event) {
		published = append(published, e)
	})

	posts.On("GetPostByID", uint(1)).Return(&models.Post{ID: 1, Author: "0xAlice"}, nil)
	reports.On("HasReported", uint(1), "0xBob").Return(false, nil)
	reports.On("CreateReport", mock.AnythingOfType("*models.Report")).Return(nil)

	registry := NewPostRegistry(posts, reports, bus)

	err := registry.ReportPost(1, "0xBob", models.ReportTypeInappropriate, "bad")
	assert.NoError(t, err)

	reports.AssertCalled(t, "CreateReport", mock.MatchedBy(func(r *models.Report) bool {
		return r.PostID == 1 && r.Reporter == "0xBob" && r.ReportType == models.ReportTypeInappropriate && r.Reason == "bad"
	}))
	assert.Len(t, published, 1)
	assert.Equal(t, events.PostReported, published[0].Type)
}

func TestReportPostAlreadyReported(t *testing.T) {
	posts := new(MockPostRepository)
	reports := new(MockReportRepository)

	posts.On("GetPostByID", uint(1)).Return(&models.Post{ID: 1}, nil)
	reports.On("HasReported", uint(1), "0xBob").Return(true, nil)

	registry := NewPostRegistry(posts, reports, events.NewBus())

	err := registry.ReportPost(1, "0xBob", models.ReportTypeSpam, "spam")
	assert.ErrorIs(t, err, ErrAlreadyReported)
	reports.AssertNotCalled(t, "CreateReport", mock.Anything)
}

func TestReportPostNotFound(t *testing.T) {
	posts := new(MockPostRepository)
	reports := new(MockReportRepository)

	posts.On("GetPostByID", uint(99)).Return(nil, nil)

	registry := NewPostRegistry(posts, reports, events.NewBus())

	err := registry.ReportPost(99, "0xBob", models.ReportTypeSpam, "spam")
	assert.ErrorIs(t, err, ErrPostNotFound)
	reports.AssertNotCalled(t, "HasReported", mock.Anything, mock.Anything)
}

// Unknown ids answer with defaults instead of errors so callers polling a
// fresh ledger get usable zero values.
func TestReportReadsDefaultGracefully(t *testing.T) {
	posts := new(MockPostRepository)
	reports := new(MockReportRepository)

	reports.On("GetReportCount", uint(7)).Return(int64(0), nil)
	reports.On("HasReported", uint(7), "0xNobody").Return(false, nil)

	registry := NewPostRegistry(posts, reports, events.NewBus())

	count, err := registry.GetReportCount(7)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	reported, err := registry.HasReported(7, "0xNobody")
	assert.NoError(t, err)
	assert.False(t, reported)
}
