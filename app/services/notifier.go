package services

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"student-results/app/models"
)

// DefaultNotificationTTL is how long a notification stays visible.
const DefaultNotificationTTL = 3 * time.Second

// Notifier keeps the feed of recent change notifications, oldest first.
type Notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items []models.Notification
}

// NewNotifier returns a notifier whose messages expire after ttl. A
// non-positive ttl uses DefaultNotificationTTL.
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	return &Notifier{ttl: ttl, now: time.Now}
}

// Push records a message and returns the stored notification.
func (n *Notifier) Push(message string) models.Notification {
	now := n.now()
	item := models.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		CreatedAt: now,
		ExpiresAt: now.Add(n.ttl),
	}
	n.mu.Lock()
	n.items = append(n.items, item)
	n.mu.Unlock()
	return item
}

// Active returns the notifications that have not expired at now.
func (n *Notifier) Active(now time.Time) []models.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	active := make([]models.Notification, 0, len(n.items))
	for _, item := range n.items {
		if !item.Expired(now) {
			active = append(active, item)
		}
	}
	return active
}

// Prune drops expired notifications and returns how many were removed.
func (n *Notifier) Prune(now time.Time) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	before := len(n.items)
	n.items = slices.DeleteFunc(n.items, func(item models.Notification) bool {
		return item.Expired(now)
	})
	return before - len(n.items)
}

// Len returns the number of stored notifications, expired or not.
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.items)
}
