package supabase

import (
	"context"
	"errors"
	"fmt"

	"github.com/pubnicaragua/investi-documentacion2/internal/domain"
	"github.com/pubnicaragua/investi-documentacion2/internal/domain/entity"
)

// profileRecord is the wire record for the users table
type profileRecord struct {
	ID             string   `json:"id,omitempty"`
	Email          string   `json:"email,omitempty"`
	Nombre         string   `json:"nombre,omitempty"`
	Username       string   `json:"username,omitempty"`
	PhotoURL       string   `json:"photo_url,omitempty"`
	Metas          []string `json:"metas,omitempty"`
	Intereses      []string `json:"intereses,omitempty"`
	NivelFinanzas  string   `json:"nivel_finanzas,omitempty"`
	CreatedAt      string   `json:"created_at,omitempty"`
}

func (r *profileRecord) toEntity() *entity.Profile {
	return &entity.Profile{
		ID:             r.ID,
		Email:          r.Email,
		FullName:       r.Nombre,
		Username:       r.Username,
		PhotoURL:       r.PhotoURL,
		Goals:          r.Metas,
		Interests:      r.Intereses,
		KnowledgeLevel: r.NivelFinanzas,
		CreatedAt:      parseTimestamp(r.CreatedAt),
	}
}

// profileRepository implements domain.ProfileRepository over the users table
type profileRepository struct {
	client *Client
}

// NewProfileRepository creates a ProfileRepository backed by the BaaS
func NewProfileRepository(client *Client) domain.ProfileRepository {
	return &profileRepository{client: client}
}

// GetByID fetches one profile. A missing row and a missing users table
// both resolve to (nil, nil): callers render the anonymous state instead
// of failing the whole screen.
func (r *profileRepository) GetByID(ctx context.Context, userID string) (*entity.Profile, error) {
	body, err := r.client.Request(ctx, "GET", "/users", &RequestOptions{
		Params: map[string]interface{}{
			"select": "*",
			"id":     "eq." + userID,
		},
		Headers: map[string]string{"Accept": "application/vnd.pgrst.object+json"},
	})
	if err != nil {
		switch KindOf(err) {
		case KindNotFound, KindUnavailable:
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	var row profileRecord
	decodeJSON(body, &row)
	if row.ID == "" {
		return nil, nil
	}
	return row.toEntity(), nil
}

// Update patches the given fields and returns the stored representation
func (r *profileRepository) Update(ctx context.Context, userID string, update *domain.ProfileUpdate) (*entity.Profile, error) {
	patch := map[string]interface{}{}
	if update.Username != nil {
		patch["username"] = *update.Username
	}
	if update.FullName != nil {
		patch["nombre"] = *update.FullName
	}
	if update.PhotoURL != nil {
		patch["photo_url"] = *update.PhotoURL
	}
	if update.Goals != nil {
		patch["metas"] = update.Goals
	}
	if update.Interests != nil {
		patch["intereses"] = update.Interests
	}
	if update.KnowledgeLevel != nil {
		patch["nivel_finanzas"] = *update.KnowledgeLevel
	}
	if len(patch) == 0 {
		return r.GetByID(ctx, userID)
	}

	body, err := r.client.Request(ctx, "PATCH", "/users", &RequestOptions{
		Params:  map[string]interface{}{"id": "eq." + userID},
		Body:    patch,
		Headers: map[string]string{"Prefer": "return=representation"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	var rows []profileRecord
	decodeJSON(body, &rows)
	if len(rows) == 0 {
		return r.GetByID(ctx, userID)
	}
	return rows[0].toEntity(), nil
}

// communityRecord is the wire record for the communities table
type communityRecord struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	MemberCount int    `json:"member_count,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (r *communityRecord) toEntity() *entity.Community {
	return &entity.Community{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		MemberCount: r.MemberCount,
		CreatedAt:   parseTimestamp(r.CreatedAt),
	}
}

// communityRepository implements domain.CommunityRepository
type communityRepository struct {
	client *Client
}

// NewCommunityRepository creates a CommunityRepository backed by the BaaS
func NewCommunityRepository(client *Client) domain.CommunityRepository {
	return &communityRepository{client: client}
}

// List returns all communities ordered by popularity. A project without
// the communities table gets an empty list, not an error.
func (r *communityRepository) List(ctx context.Context) ([]*entity.Community, error) {
	body, err := r.client.Request(ctx, "GET", "/communities", &RequestOptions{
		Params: map[string]interface{}{
			"select": "*",
			"order":  "created_at.desc",
		},
	})
	if err != nil {
		if KindOf(err) == KindUnavailable {
			return []*entity.Community{}, nil
		}
		return nil, fmt.Errorf("failed to list communities: %w", err)
	}

	var rows []communityRecord
	decodeJSON(body, &rows)

	communities := make([]*entity.Community, len(rows))
	for i := range rows {
		communities[i] = rows[i].toEntity()
	}
	return communities, nil
}

// Join records a membership. Joining a community twice is a no-op.
func (r *communityRepository) Join(ctx context.Context, userID, communityID string) error {
	_, err := r.client.Request(ctx, "POST", "/user_communities", &RequestOptions{
		Body: map[string]interface{}{
			"user_id":      userID,
			"community_id": communityID,
		},
	})
	if err != nil {
		if KindOf(err) == KindConflict {
			return nil
		}
		return fmt.Errorf("failed to join community: %w", err)
	}
	return nil
}

// postRecord is the wire record for the posts table
type postRecord struct {
	ID           string          `json:"id,omitempty"`
	UserID       string          `json:"user_id,omitempty"`
	CommunityID  string          `json:"community_id,omitempty"`
	Contenido    string          `json:"contenido,omitempty"`
	MediaURL     []string        `json:"media_url,omitempty"`
	LikesCount   int             `json:"likes_count,omitempty"`
	CommentCount int             `json:"comment_count,omitempty"`
	CreatedAt    string          `json:"created_at,omitempty"`
	Author       *profileRecord  `json:"users,omitempty"`
	Comments     []commentRecord `json:"post_comments,omitempty"`
}

func (r *postRecord) toEntity() *entity.Post {
	post := &entity.Post{
		ID:           r.ID,
		UserID:       r.UserID,
		CommunityID:  r.CommunityID,
		Content:      r.Contenido,
		MediaURLs:    r.MediaURL,
		LikesCount:   r.LikesCount,
		CommentCount: r.CommentCount,
		CreatedAt:    parseTimestamp(r.CreatedAt),
	}
	if r.Author != nil {
		post.AuthorName = r.Author.Nombre
		post.AuthorPhoto = r.Author.PhotoURL
	}
	for i := range r.Comments {
		post.Comments = append(post.Comments, *r.Comments[i].toEntity())
	}
	return post
}

// commentRecord is the wire record for the post_comments table
type commentRecord struct {
	ID        string `json:"id,omitempty"`
	PostID    string `json:"post_id,omitempty"`
	UserID    string `json:"user_id,omitempty"`
	ParentID  string `json:"parent_comment_id,omitempty"`
	Contenido string `json:"contenido,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (r *commentRecord) toEntity() *entity.Comment {
	return &entity.Comment{
		ID:        r.ID,
		PostID:    r.PostID,
		UserID:    r.UserID,
		ParentID:  r.ParentID,
		Content:   r.Contenido,
		CreatedAt: parseTimestamp(r.CreatedAt),
	}
}

// postRepository implements domain.PostRepository
type postRepository struct {
	client *Client
}

// NewPostRepository creates a PostRepository backed by the BaaS
func NewPostRepository(client *Client) domain.PostRepository {
	return &postRepository{client: client}
}

// Create inserts a post and returns the stored representation
func (r *postRepository) Create(ctx context.Context, post *domain.NewPost) (*entity.Post, error) {
	record := map[string]interface{}{
		"user_id":   post.UserID,
		"contenido": post.Content,
	}
	if post.CommunityID != "" {
		record["community_id"] = post.CommunityID
	}
	if len(post.MediaURLs) > 0 {
		record["media_url"] = post.MediaURLs
	}

	body, err := r.client.Request(ctx, "POST", "/posts", &RequestOptions{
		Body:    []map[string]interface{}{record},
		Headers: map[string]string{"Prefer": "return=representation"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	var rows []postRecord
	decodeJSON(body, &rows)
	if len(rows) == 0 {
		return nil, domain.NewInternalError(errors.New("post created without representation"))
	}
	return rows[0].toEntity(), nil
}

// GetDetail fetches one post with its author and comments embedded
func (r *postRepository) GetDetail(ctx context.Context, postID string) (*entity.Post, error) {
	body, err := r.client.Request(ctx, "GET", "/posts", &RequestOptions{
		Params: map[string]interface{}{
			"select": "*,users(nombre,photo_url),post_comments(*)",
			"id":     "eq." + postID,
		},
		Headers: map[string]string{"Accept": "application/vnd.pgrst.object+json"},
	})
	if err != nil {
		if KindOf(err) == KindNotFound {
			return nil, domain.NewNotFoundError("Post", postID)
		}
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	var row postRecord
	decodeJSON(body, &row)
	if row.ID == "" {
		return nil, domain.NewNotFoundError("Post", postID)
	}
	return row.toEntity(), nil
}

// Like records a reaction. Reacting twice is a no-op.
func (r *postRepository) Like(ctx context.Context, postID, userID string, isLike bool) error {
	_, err := r.client.Request(ctx, "POST", "/post_likes", &RequestOptions{
		Body: map[string]interface{}{
			"post_id": postID,
			"user_id": userID,
			"is_like": isLike,
		},
	})
	if err != nil {
		if KindOf(err) == KindConflict {
			return nil
		}
		return fmt.Errorf("failed to like post: %w", err)
	}
	return nil
}

// Comment inserts a reply and returns the stored representation
func (r *postRepository) Comment(ctx context.Context, postID, userID, content, parentID string) (*entity.Comment, error) {
	record := map[string]interface{}{
		"post_id":   postID,
		"user_id":   userID,
		"contenido": content,
	}
	if parentID != "" {
		record["parent_comment_id"] = parentID
	}

	body, err := r.client.Request(ctx, "POST", "/post_comments", &RequestOptions{
		Body:    []map[string]interface{}{record},
		Headers: map[string]string{"Prefer": "return=representation"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to comment on post: %w", err)
	}

	var rows []commentRecord
	decodeJSON(body, &rows)
	if len(rows) == 0 {
		return nil, domain.NewInternalError(errors.New("comment created without representation"))
	}
	return rows[0].toEntity(), nil
}

// feedRepository implements domain.FeedRepository over the feed RPC
type feedRepository struct {
	client *Client
}

// NewFeedRepository creates a FeedRepository backed by the BaaS.
// When the feed RPC is not provisioned the feed is simply empty.
func NewFeedRepository(client *Client) domain.FeedRepository {
	return &feedRepository{client: client}
}

// UserFeed returns the personalized feed for a user
func (r *feedRepository) UserFeed(ctx context.Context, userID string, limit int) ([]*entity.Post, error) {
	body, err := r.client.Request(ctx, "POST", "/rpc/get_user_feed", &RequestOptions{
		Body: map[string]interface{}{
			"p_user":  userID,
			"p_limit": limit,
		},
	})
	if err != nil {
		if KindOf(err) == KindUnavailable {
			return []*entity.Post{}, nil
		}
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	var rows []postRecord
	decodeJSON(body, &rows)

	posts := make([]*entity.Post, len(rows))
	for i := range rows {
		posts[i] = rows[i].toEntity()
	}
	return posts, nil
}

// courseRecord is the wire record for courses with embedded modules
type courseRecord struct {
	ID          string         `json:"id,omitempty"`
	Title       string         `json:"title,omitempty"`
	Description string         `json:"description,omitempty"`
	Modules     []moduleRecord `json:"course_modules,omitempty"`
}

type moduleRecord struct {
	ID      string         `json:"id,omitempty"`
	Title   string         `json:"title,omitempty"`
	Orden   int            `json:"orden,omitempty"`
	Lessons []lessonRecord `json:"lessons,omitempty"`
}

type lessonRecord struct {
	ID    string `json:"id,omitempty"`
	Title string `json:"title,omitempty"`
	Orden int    `json:"orden,omitempty"`
}

func (r *courseRecord) toEntity() *entity.Course {
	course := &entity.Course{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
	}
	for _, m := range r.Modules {
		module := entity.CourseModule{ID: m.ID, Title: m.Title, Order: m.Orden}
		for _, l := range m.Lessons {
			module.Lessons = append(module.Lessons, entity.Lesson{ID: l.ID, Title: l.Title, Order: l.Orden})
		}
		course.Modules = append(course.Modules, module)
	}
	return course
}

// learningRepository implements domain.LearningRepository
type learningRepository struct {
	client *Client
}

// NewLearningRepository creates a LearningRepository backed by the BaaS
func NewLearningRepository(client *Client) domain.LearningRepository {
	return &learningRepository{client: client}
}

// CoursesWithLessons returns the full course catalog with modules and
// lessons embedded. An unprovisioned catalog degrades to an empty list.
func (r *learningRepository) CoursesWithLessons(ctx context.Context) ([]*entity.Course, error) {
	body, err := r.client.Request(ctx, "GET", "/courses", &RequestOptions{
		Params: map[string]interface{}{
			"select": "*,course_modules(*,lessons(*))",
			"order":  "title.asc",
		},
	})
	if err != nil {
		if KindOf(err) == KindUnavailable {
			return []*entity.Course{}, nil
		}
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}

	var rows []courseRecord
	decodeJSON(body, &rows)

	courses := make([]*entity.Course, len(rows))
	for i := range rows {
		courses[i] = rows[i].toEntity()
	}
	return courses, nil
}

// CompleteLesson records lesson completion. Completing twice is a no-op.
func (r *learningRepository) CompleteLesson(ctx context.Context, userID, lessonID string) error {
	_, err := r.client.Request(ctx, "POST", "/lesson_progress", &RequestOptions{
		Body: map[string]interface{}{
			"user_id":   userID,
			"lesson_id": lessonID,
			"completed": true,
		},
	})
	if err != nil {
		if KindOf(err) == KindConflict {
			return nil
		}
		return fmt.Errorf("failed to record lesson progress: %w", err)
	}
	return nil
}

// portfolioRecord is the wire record for simulated portfolios
type portfolioRecord struct {
	ID          string             `json:"id,omitempty"`
	UserID      string             `json:"user_id,omitempty"`
	Investments []investmentRecord `json:"investments,omitempty"`
}

type investmentRecord struct {
	ID        string  `json:"id,omitempty"`
	Symbol    string  `json:"symbol,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	CreatedAt string  `json:"created_at,omitempty"`
}

func (r *portfolioRecord) toEntity() *entity.Portfolio {
	p := &entity.Portfolio{ID: r.ID, UserID: r.UserID}
	for _, inv := range r.Investments {
		p.Investments = append(p.Investments, entity.Investment{
			ID:        inv.ID,
			Symbol:    inv.Symbol,
			Amount:    inv.Amount,
			CreatedAt: parseTimestamp(inv.CreatedAt),
		})
	}
	return p
}

// portfolioRepository implements domain.PortfolioRepository
type portfolioRepository struct {
	client *Client
}

// NewPortfolioRepository creates a PortfolioRepository backed by the BaaS
func NewPortfolioRepository(client *Client) domain.PortfolioRepository {
	return &portfolioRepository{client: client}
}

// Get fetches a user's portfolio with investments embedded. A user
// without a portfolio yet gets an empty one.
func (r *portfolioRepository) Get(ctx context.Context, userID string) (*entity.Portfolio, error) {
	body, err := r.client.Request(ctx, "GET", "/portfolios", &RequestOptions{
		Params: map[string]interface{}{
			"select":  "*,investments(*)",
			"user_id": "eq." + userID,
		},
		Headers: map[string]string{"Accept": "application/vnd.pgrst.object+json"},
	})
	if err != nil {
		switch KindOf(err) {
		case KindNotFound, KindUnavailable:
			return &entity.Portfolio{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to fetch portfolio: %w", err)
	}

	var row portfolioRecord
	decodeJSON(body, &row)
	if row.ID == "" {
		return &entity.Portfolio{UserID: userID}, nil
	}
	return row.toEntity(), nil
}

// AddInvestment ensures the portfolio exists and records one position
func (r *portfolioRepository) AddInvestment(ctx context.Context, userID, symbol string, amount float64) error {
	portfolio, err := r.Get(ctx, userID)
	if err != nil {
		return err
	}

	portfolioID := portfolio.ID
	if portfolioID == "" {
		body, err := r.client.Request(ctx, "POST", "/portfolios", &RequestOptions{
			Body:    []map[string]interface{}{{"user_id": userID}},
			Headers: map[string]string{"Prefer": "return=representation"},
		})
		if err != nil {
			return fmt.Errorf("failed to create portfolio: %w", err)
		}
		var rows []portfolioRecord
		decodeJSON(body, &rows)
		if len(rows) == 0 {
			return domain.NewInternalError(errors.New("portfolio created without representation"))
		}
		portfolioID = rows[0].ID
	}

	_, err = r.client.Request(ctx, "POST", "/investments", &RequestOptions{
		Body: map[string]interface{}{
			"portfolio_id": portfolioID,
			"symbol":       symbol,
			"amount":       amount,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to add investment: %w", err)
	}
	return nil
}

// moderationRepository implements domain.ModerationRepository
type moderationRepository struct {
	client *Client
}

// NewModerationRepository creates a ModerationRepository backed by the BaaS
func NewModerationRepository(client *Client) domain.ModerationRepository {
	return &moderationRepository{client: client}
}

// BlockUser records a block. Blocking the same user twice is a no-op.
func (r *moderationRepository) BlockUser(ctx context.Context, userID, blockedUserID string) error {
	_, err := r.client.Request(ctx, "POST", "/user_blocks", &RequestOptions{
		Body: map[string]interface{}{
			"user_id":         userID,
			"blocked_user_id": blockedUserID,
		},
	})
	if err != nil {
		if KindOf(err) == KindConflict {
			return nil
		}
		return fmt.Errorf("failed to block user: %w", err)
	}
	return nil
}
