package entity

import "time"

// Profile is an application user as stored in the users table
type Profile struct {
	ID             string
	Email          string
	Username       string
	FullName       string
	PhotoURL       string
	Goals          []string
	Interests      []string
	KnowledgeLevel string
	CreatedAt      time.Time
}

// Onboarded reports whether the profile completed the onboarding sequence
func (p *Profile) Onboarded() bool {
	return len(p.Goals) > 0 && len(p.Interests) > 0 && p.KnowledgeLevel != ""
}

// Community is a topic community users can join
type Community struct {
	ID          string
	Name        string
	Description string
	ImageURL    string
	MemberCount int
	CreatedAt   time.Time
}

// Post is a feed entry
type Post struct {
	ID           string
	UserID       string
	CommunityID  string
	Content      string
	MediaURLs    []string
	LikesCount   int
	CommentCount int
	AuthorName   string
	AuthorPhoto  string
	Comments     []Comment
	CreatedAt    time.Time
}

// Comment is a reply on a post
type Comment struct {
	ID        string
	PostID    string
	UserID    string
	ParentID  string
	Content   string
	CreatedAt time.Time
}

// Course groups lessons into modules
type Course struct {
	ID          string
	Title       string
	Description string
	Modules     []CourseModule
}

// CourseModule is an ordered section of a course
type CourseModule struct {
	ID      string
	Title   string
	Order   int
	Lessons []Lesson
}

// Lesson is a single course unit
type Lesson struct {
	ID    string
	Title string
	Order int
}

// Portfolio is a user's simulated portfolio with its investments
type Portfolio struct {
	ID          string
	UserID      string
	Investments []Investment
}

// Investment is one simulated position
type Investment struct {
	ID        string
	Symbol    string
	Amount    float64
	CreatedAt time.Time
}

// ObjectRef is the provider-assigned descriptor of an uploaded object
type ObjectRef struct {
	Key string
	ID  string
}
