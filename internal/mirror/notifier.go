package mirror

import (
	"fmt"
	"log"

	"github.com/atharvabaodhankar/socio3-ledger/internal/events"
	"github.com/atharvabaodhankar/socio3-ledger/internal/models"
	"github.com/atharvabaodhankar/socio3-ledger/internal/repositories"
)

// Notifier turns ledger events into notification rows. Like and report
// notifications need the post's author, so events against ids the post ledger
// does not know are skipped.
type Notifier struct {
	notifications repositories.NotificationRepository
	posts         repositories.PostRepository
}

// NewNotifier creates a Notifier
func NewNotifier(notifications repositories.NotificationRepository, posts repositories.PostRepository) *Notifier {
	return &Notifier{notifications: notifications, posts: posts}
}

// HandleEvent creates the notification for one ledger event, if any. Errors
// are logged and swallowed; notifications are best effort.
func (n *Notifier) HandleEvent(e events.Event) {
	var notif *models.Notification

	switch e.Type {
	case events.Followed:
		notif = &models.Notification{
			Type:             "follow",
			ActorAddress:     e.Actor,
			RecipientAddress: e.Target,
			Message:          fmt.Sprintf("%s started following you", e.Actor),
		}
	case events.Liked:
		author, ok := n.postAuthor(e.PostID)
		if !ok || author == e.Actor {
			return
		}
		notif = &models.Notification{
			Type:             "like",
			ActorAddress:     e.Actor,
			RecipientAddress: author,
			PostID:           e.PostID,
			Message:          fmt.Sprintf("%s liked your post", e.Actor),
		}
	case events.Tipped:
		notif = &models.Notification{
			Type:             "tip",
			ActorAddress:     e.Actor,
			RecipientAddress: e.Target,
			PostID:           e.PostID,
			Amount:           e.Amount,
			Message:          fmt.Sprintf("%s tipped you %d on post %d", e.Actor, e.Amount, e.PostID),
		}
	default:
		return
	}

	if err := n.notifications.CreateNotification(notif); err != nil {
		log.Printf("notifier: failed to record %s notification: %v", e.Type, err)
	}
}

func (n *Notifier) postAuthor(postID uint) (string, bool) {
	post, err := n.posts.GetPostByID(postID)
	if err != nil || post == nil {
		return "", false
	}
	return post.Author, true
}
