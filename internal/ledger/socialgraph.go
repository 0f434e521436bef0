package ledger

import (
	"fmt"

	"github.com/atharvabaodhankar/socio3-ledger/internal/events"
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/atharvabaodhankar/socio3-ledger/internal/repositories"
	"github.com/google/uuid"
)

// SocialGraph owns follow edges, like sets, and tip accounting. Post ids are
// never validated against the post ledger: the two ledgers are independent,
// and orphan likes/tips are representable by design.
type SocialGraph interface {
	FollowUser(follower, target string) error
	UnfollowUser(follower, target string) error
	IsFollowing(follower, target string) (bool, error)
	GetFollowerCount(address string) (int64, error)
	GetFollowers(address string) ([]string, error)
	GetFollowing(address string) ([]string, error)
	LikePost(postID uint, liker string) error
	UnlikePost(postID uint, liker string) error
	HasUserLiked(postID uint, liker string) (bool, error)
	GetLikesCount(postID uint) (int64, error)
	TipPost(postID uint, from, recipient string, amount int64) (*models.Tip, error)
	GetTipsAmount(postID uint) (int64, error)
	GetTotalTipsReceived(address string) (int64, error)
}

type socialGraph struct {
	follows repositories.FollowRepository
	likes   repositories.LikeRepository
	tips    repositories.TipRepository
	bus     *events.Bus
}

// NewSocialGraph creates a SocialGraph backed by the given repositories
func NewSocialGraph(follows repositories.FollowRepository, likes repositories.LikeRepository, tips repositories.TipRepository, bus *events.Bus) SocialGraph {
	return &socialGraph{follows: follows, likes: likes, tips: tips, bus: bus}
}

// FollowUser inserts a follow edge. Self-follows and duplicate edges fail.
func (s *socialGraph) FollowUser(follower, target string) error {
	if follower == target {
		return ErrSelfFollow
	}

	following, err := s.follows.IsFollowing(follower, target)
	if err != nil {
		return err
	}
	if following {
		return ErrAlreadyFollowing
	}

	if err := s.follows.CreateFollow(&models.Follow{Follower: follower, Following: target}); err != nil {
		return err
	}

	s.bus.Publish(events.Event{Type: events.Followed, Actor: follower, Target: target})
	return nil
}

// UnfollowUser removes a follow edge, failing when none exists
func (s *socialGraph) UnfollowUser(follower, target string) error {
	if err := s.follows.DeleteFollow(follower, target); err != nil {
		if err == repositories.ErrFollowNotFound {
			return ErrNotFollowing
		}
		return err
	}

	s.bus.Publish(events.Event{Type: events.Unfollowed, Actor: follower, Target: target})
	return nil
}

func (s *socialGraph) IsFollowing(follower, target string) (bool, error) {
	return s.follows.IsFollowing(follower, target)
}

func (s *socialGraph) GetFollowerCount(address string) (int64, error) {
	return s.follows.GetFollowersCount(address)
}

func (s *socialGraph) GetFollowers(address string) ([]string, error) {
	return s.follows.GetFollowers(address)
}

func (s *socialGraph) GetFollowing(address string) ([]string, error) {
	return s.follows.GetFollowing(address)
}

// LikePost inserts a like. The post id is not checked against the post
// ledger; a like on an unminted id simply sits there until the id exists.
func (s *socialGraph) LikePost(postID uint, liker string) error {
	liked, err := s.likes.HasUserLiked(postID, liker)
	if err != nil {
		return err
	}
	if liked {
		return ErrAlreadyLiked
	}

	if err := s.likes.CreateLike(&models.Like{PostID: postID, Liker: liker}); err != nil {
		return err
	}

	s.bus.Publish(events.Event{Type: events.Liked, PostID: postID, Actor: liker})
	return nil
}

// UnlikePost removes a like, failing when none exists. A like/unlike pair
// always returns the count to its prior value.
func (s *socialGraph) UnlikePost(postID uint, liker string) error {
	if err := s.likes.DeleteLike(postID, liker); err != nil {
		if err == repositories.ErrLikeNotFound {
			return ErrNotLiked
		}
		return err
	}

	s.bus.Publish(events.Event{Type: events.Unliked, PostID: postID, Actor: liker})
	return nil
}

func (s *socialGraph) HasUserLiked(postID uint, liker string) (bool, error) {
	return s.likes.HasUserLiked(postID, liker)
}

func (s *socialGraph) GetLikesCount(postID uint) (int64, error) {
	return s.likes.GetLikesCount(postID)
}

// TipPost settles a tip from the caller to a caller-supplied recipient. The
// recipient is NOT checked against the post's author; the calling layer owns
// that trust boundary. The transfer and both accumulator updates commit
// atomically or not at all.
func (s *socialGraph) TipPost(postID uint, from, recipient string, amount int64) (*models.Tip, error) {
	if amount <= 0 {
		return nil, ErrZeroValue
	}

	tip := &models.Tip{
		TxRef:     uuid.NewString(),
		PostID:    postID,
		From:      from,
		Recipient: recipient,
		Amount:    amount,
	}
	if err := s.tips.Transfer(tip); err != nil {
		if err == repositories.ErrInsufficientFunds || err == repositories.ErrAccountNotFound {
			return nil, fmt.Errorf("%w: %v", ErrTransferFailed, err)
		}
		return nil, err
	}

	s.bus.Publish(events.Event{
		Type:   events.Tipped,
		PostID: postID,
		Actor:  from,
		Target: recipient,
		Amount: amount,
	})

	return tip, nil
}

func (s *socialGraph) GetTipsAmount(postID uint) (int64, error) {
	return s.tips.GetTipsAmount(postID)
}

func (s *socialGraph) GetTotalTipsReceived(address string) (int64, error) {
	return s.tips.GetTotalTipsReceived(address)
}
