package domain

import (
	"context"

	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
)

// ProfileUpdate is the explicit record of mutable profile fields.
// Nil fields are left untouched by an update.
type ProfileUpdate struct {
	Username       *string
	FullName       *string
	PhotoURL       *string
	Goals          []string
	Interests      []string
	KnowledgeLevel *string
}

// NewPost is the explicit record for post creation
type NewPost struct {
	UserID      string
	CommunityID string
	Content     string
	MediaURLs   []string
}

// ProfileRepository is the data-access interface for user profiles.
// GetByID resolves to nil (no error) when the user row or the whole
// users table is missing: a soft miss, not a failure.
type ProfileRepository interface {
	GetByID(ctx context.Context, userID string) (*entity.Profile, error)
	Update(ctx context.Context, userID string, update *ProfileUpdate) (*entity.Profile, error)
}

// CommunityRepository is the data-access interface for communities.
// List degrades to an empty slice when the table is not provisioned.
// Join treats a duplicate membership as a successful no-op.
type CommunityRepository interface {
	List(ctx context.Context) ([]*entity.Community, error)
	Join(ctx context.Context, userID, communityID string) error
}

// PostRepository is the data-access interface for posts and reactions.
// Like treats a duplicate reaction as a successful no-op.
type PostRepository interface {
	Create(ctx context.Context, post *NewPost) (*entity.Post, error)
	GetDetail(ctx context.Context, postID string) (*entity.Post, error)
	Like(ctx context.Context, postID, userID string, isLike bool) error
	Comment(ctx context.Context, postID, userID, content, parentID string) (*entity.Comment, error)
}

// FeedRepository produces the personalized feed via the remote-procedure
// collaborator. An unprovisioned endpoint degrades to an empty list.
type FeedRepository interface {
	UserFeed(ctx context.Context, userID string, limit int) ([]*entity.Post, error)
}

// LearningRepository is the data-access interface for courses and progress
type LearningRepository interface {
	CoursesWithLessons(ctx context.Context) ([]*entity.Course, error)
	CompleteLesson(ctx context.Context, userID, lessonID string) error
}

// PortfolioRepository is the data-access interface for simulated portfolios
type PortfolioRepository interface {
	Get(ctx context.Context, userID string) (*entity.Portfolio, error)
	AddInvestment(ctx context.Context, userID, symbol string, amount float64) error
}

// ModerationRepository records user blocks
type ModerationRepository interface {
	BlockUser(ctx context.Context, userID, blockedUserID string) error
}

// ObjectStore is the binary object-storage collaborator
type ObjectStore interface {
	// UploadAvatar stores avatar bytes at the deterministic per-user path
	// and returns the provider-assigned descriptor
	UploadAvatar(ctx context.Context, userID string, contentType string, data []byte) (*entity.ObjectRef, error)
}
