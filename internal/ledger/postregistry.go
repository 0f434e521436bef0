package ledger

import (
	"github.com/atharvabaodhankar/socio3-ledger/internal/events"
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/atharvabaodhankar/socio3-ledger/internal/repositories"
)

// PostRegistry owns the post ledger: minting, reads, and report accounting.
// Removal never happens here; it is a read-time classification (ShouldRemove).
type PostRegistry interface {
	CreatePost(author, ipfsHash string) (*models.Post, error)
	GetPost(id uint) (*models.Post, error)
	GetAllPosts() ([]models.Post, error)
	GetPostsByAuthor(author string) ([]models.Post, error)
	GetPostsByAuthors(authors []string) ([]models.Post, error)
	ReportPost(postID uint, reporter string, reportType int, reason string) error
	GetReportCount(postID uint) (int64, error)
	HasReported(postID uint, reporter string) (bool, error)
	GetReports(postID uint) ([]models.Report, error)
}

type postRegistry struct {
	posts   repositories.PostRepository
	reports repositories.ReportRepository
	bus     *events.Bus
}

// NewPostRegistry creates a PostRegistry backed by the given repositories
func NewPostRegistry(posts repositories.PostRepository, reports repositories.ReportRepository, bus *events.Bus) PostRegistry {
	return &postRegistry{posts: posts, reports: reports, bus: bus}
}

// CreatePost mints a new post with the next sequential id. The PostCreated
// event carries the minted id; consumers must take the id from there (or from
// the returned post) rather than assuming count+1.
func (s *postRegistry) CreatePost(author, ipfsHash string) (*models.Post, error) {
	if ipfsHash == "" {
		return nil, ErrEmptyContent
	}

	post := &models.Post{
		Author:   author,
		IPFSHash: ipfsHash,
	}
	if err := s.posts.CreatePost(post); err != nil {
		return nil, err
	}

	s.bus.Publish(events.Event{
		Type:      events.PostCreated,
		PostID:    post.ID,
		Actor:     author,
		IPFSHash:  ipfsHash,
		Timestamp: post.CreatedAt,
	})

	return post, nil
}

// GetPost retrieves a post by id, failing for ids outside the minted range
func (s *postRegistry) GetPost(id uint) (*models.Post, error) {
	post, err := s.posts.GetPostByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// GetAllPosts returns every post in creation order
func (s *postRegistry) GetAllPosts() ([]models.Post, error) {
	return s.posts.GetAllPosts()
}

// GetPostsByAuthor returns an author's posts in creation order; always a
// subsequence of GetAllPosts filtered by author
func (s *postRegistry) GetPostsByAuthor(author string) ([]models.Post, error) {
	return s.posts.GetPostsByAuthor(author)
}

// GetPostsByAuthors returns the merged creation-ordered posts of several authors
func (s *postRegistry) GetPostsByAuthors(authors []string) ([]models.Post, error) {
	return s.posts.GetPostsByAuthors(authors)
}

// ReportPost records one report per (post, reporter) pair and bumps the
// post's monotonic report counter. The report type and reason are stored for
// audit but never influence removal.
func (s *postRegistry) ReportPost(postID uint, reporter string, reportType int, reason string) error {
	post, err := s.posts.GetPostByID(postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	reported, err := s.reports.HasReported(postID, reporter)
	if err != nil {
		return err
	}
	if reported {
		return ErrAlreadyReported
	}

	report := &models.Report{
		PostID:     postID,
		Reporter:   reporter,
		ReportType: reportType,
		Reason:     reason,
	}
	if err := s.reports.CreateReport(report); err != nil {
		return err
	}

	s.bus.Publish(events.Event{
		Type:   events.PostReported,
		PostID: postID,
		Actor:  reporter,
	})

	return nil
}

// GetReportCount returns 0 for ids with no recorded activity instead of
// failing; callers polling before the ledger warms up rely on this.
func (s *postRegistry) GetReportCount(postID uint) (int64, error) {
	return s.reports.GetReportCount(postID)
}

// HasReported returns false for unknown ids or addresses, never an error
func (s *postRegistry) HasReported(postID uint, reporter string) (bool, error) {
	return s.reports.HasReported(postID, reporter)
}

// GetReports returns the audit trail of reports for a post
func (s *postRegistry) GetReports(postID uint) ([]models.Report, error) {
	return s.reports.GetReportsByPostID(postID)
}
