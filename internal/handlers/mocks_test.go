package handlers

import (
	"github.com/atharvabaodhankar/socio3-ledger/internal/ledger"
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockPostRegistry is a mock implementation of ledger.PostRegistry
type MockPostRegistry struct {
	mock.Mock
}

func (m *MockPostRegistry) CreatePost(author, ipfsHash string) (*models.Post, error) {
	args := m.Called(author, ipfsHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRegistry) GetPost(id uint) (*models.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRegistry) GetAllPosts() ([]models.Post, error) {
	args := m.Called()
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRegistry) GetPostsByAuthor(author string) ([]models.Post, error) {
	args := m.Called(author)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRegistry) GetPostsByAuthors(authors []string) ([]models.Post, error) {
	args := m.Called(authors)
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRegistry) ReportPost(postID uint, reporter string, reportType int, reason string) error {
	args := m.Called(postID, reporter, reportType, reason)
	return args.Error(0)
}

func (m *MockPostRegistry) GetReportCount(postID uint) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRegistry) HasReported(postID uint, reporter string) (bool, error) {
	args := m.Called(postID, reporter)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRegistry) GetReports(postID uint) ([]models.Report, error) {
	args := m.Called(postID)
	return args.Get(0).([]models.Report), args.Error(1)
}

// MockSocialGraph is a mock implementation of ledger.SocialGraph
type MockSocialGraph struct {
	mock.Mock
}

func (m *MockSocialGraph) FollowUser(follower, target string) error {
	args := m.Called(follower, target)
	return args.Error(0)
}

func (m *MockSocialGraph) UnfollowUser(follower, target string) error {
	args := m.Called(follower, target)
	return args.Error(0)
}

func (m *MockSocialGraph) IsFollowing(follower, target string) (bool, error) {
	args := m.Called(follower, target)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialGraph) GetFollowerCount(address string) (int64, error) {
	args := m.Called(address)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSocialGraph) GetFollowers(address string) ([]string, error) {
	args := m.Called(address)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSocialGraph) GetFollowing(address string) ([]string, error) {
	args := m.Called(address)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockSocialGraph) LikePost(postID uint, liker string) error {
	args := m.Called(postID, liker)
	return args.Error(0)
}

func (m *MockSocialGraph) UnlikePost(postID uint, liker string) error {
	args := m.Called(postID, liker)
	return args.Error(0)
}

func (m *MockSocialGraph) HasUserLiked(postID uint, liker string) (bool, error) {
	args := m.Called(postID, liker)
	return args.Bool(0), args.Error(1)
}

func (m *MockSocialGraph) GetLikesCount(postID uint) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSocialGraph) TipPost(postID uint, from, recipient string, amount int64) (*models.Tip, error) {
	args := m.Called(postID, from, recipient, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tip), args.Error(1)
}

func (m *MockSocialGraph) GetTipsAmount(postID uint) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSocialGraph) GetTotalTipsReceived(address string) (int64, error) {
	args := m.Called(address)
	return args.Get(0).(int64), args.Error(1)
}

// Ensure the mocks satisfy the ledger interfaces
var (
	_ ledger.PostRegistry = (*MockPostRegistry)(nil)
	_ ledger.SocialGraph  = (*MockSocialGraph)(nil)
)
