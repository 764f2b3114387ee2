// Package seed fills a development database with fake users, follows,
// posts, comments and likes. It is meant for local use and tests only.
package seed

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vibestudio/internal/cache"
	"vibestudio/internal/middleware"
	"vibestudio/internal/models"
	"vibestudio/internal/repository"
	"vibestudio/internal/storage"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded account.
const DefaultPassword = "password123"

// Options controls how much data Run creates.
type Options struct {
	Users           int
	PostsPerUser    int
	FollowsPerUser  int
	CommentsPerPost int
	// LikePercent is the chance, 0-100, that a given user likes a given post.
	LikePercent int
	MaxDays     int
	Clean       bool
	// FastHash uses the minimum bcrypt cost.
	FastHash bool
	// Seed makes the generated data reproducible when non-zero.
	Seed int64
}

// DefaultOptions is what cmd/seed runs with when no flags are given.
func DefaultOptions() Options {
	return Options{
		Users:           20,
		PostsPerUser:    3,
		FollowsPerUser:  5,
		CommentsPerPost: 4,
		LikePercent:     30,
		MaxDays:         30,
		Clean:           true,
	}
}

// Summary counts what a run created.
type Summary struct {
	Users    int
	Follows  int
	Posts    int
	Comments int
	Likes    int
}

// Seeder writes through the same repositories the API uses.
type Seeder struct {
	db       *gorm.DB
	faker    *gofakeit.Faker
	opts     Options
	users    repository.UserRepository
	follows  repository.FollowRepository
	posts    repository.PostRepository
	comments repository.CommentRepository
	cache    *cache.Store
	now      func() time.Time
}

func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeder{
		db:       db,
		faker:    gofakeit.New(seed),
		opts:     opts,
		users:    repository.NewUserRepository(db),
		follows:  repository.NewFollowRepository(db),
		posts:    repository.NewPostRepository(db),
		comments: repository.NewCommentRepository(db),
		now:      time.Now,
	}
}

// WithCache makes Run bump the feed version of store once it has written,
// so a running API stops serving listings cached before the seed.
func (s *Seeder) WithCache(store *cache.Store) *Seeder {
	s.cache = store
	return s
}

// Run optionally clears the social tables and then populates them.
// Cached feeds are invalidated even when a later step fails.
func (s *Seeder) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	defer s.cache.InvalidateFeeds(ctx)

	if s.opts.Clean {
		if err := s.ClearAll(); err != nil {
			return sum, fmt.Errorf("failed to clear data: %w", err)
		}
	}

	users, err := s.createUsers(ctx)
	if err != nil {
		return sum, fmt.Errorf("failed to create users: %w", err)
	}
	sum.Users = len(users)
	middleware.Logger.Info("seeded users", "count", sum.Users)

	if sum.Follows, err = s.createFollows(ctx, users); err != nil {
		return sum, fmt.Errorf("failed to create follows: %w", err)
	}

	posts, err := s.createPosts(ctx, users)
	if err != nil {
		return sum, fmt.Errorf("failed to create posts: %w", err)
	}
	sum.Posts = len(posts)

	if sum.Comments, err = s.createComments(ctx, users, posts); err != nil {
		return sum, fmt.Errorf("failed to create comments: %w", err)
	}
	if sum.Likes, err = s.createLikes(ctx, users, posts); err != nil {
		return sum, fmt.Errorf("failed to add likes: %w", err)
	}

	middleware.Logger.Info("seeding complete",
		"follows", sum.Follows,
		"posts", sum.Posts,
		"comments", sum.Comments,
		"likes", sum.Likes,
	)
	return sum, nil
}

// ClearAll removes every row the seeder can create, children first.
func (s *Seeder) ClearAll() error {
	tx := s.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []any{&models.Like{}, &models.Comment{}, &models.Follow{}, &models.Post{}, &models.User{}} {
		if err := tx.Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createUsers(ctx context.Context) ([]*models.User, error) {
	cost := bcrypt.DefaultCost
	if s.opts.FastHash {
		cost = bcrypt.MinCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), cost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, s.opts.Users)
	for i := 0; i < s.opts.Users; i++ {
		username := strings.ToLower(fmt.Sprintf("%s%d", s.faker.Username(), i))
		user := &models.User{
			Name:     s.faker.Name(),
			Username: username,
			Email:    strings.ToLower(fmt.Sprintf("%s@%s", username, s.faker.DomainName())),
			Password: string(hash),
		}
		if err := s.users.Create(ctx, user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (s *Seeder) createFollows(ctx context.Context, users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}
	per := min(s.opts.FollowsPerUser, len(users)-1)

	total := 0
	for i, u := range users {
		// Walk forward from a random offset so every edge is distinct and never a self-follow.
		start := s.faker.Number(1, len(users)-1)
		for k := 0; k < per; k++ {
			target := users[(i+start+k)%len(users)]
			if target.ID == u.ID {
				continue
			}
			if err := s.follows.Follow(ctx, u.ID, target.ID); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

func (s *Seeder) createPosts(ctx context.Context, users []*models.User) ([]*models.Post, error) {
	maxDays := s.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 30
	}

	posts := make([]*models.Post, 0, len(users)*s.opts.PostsPerUser)
	for _, u := range users {
		for i := 0; i < s.opts.PostsPerUser; i++ {
			post := &models.Post{
				UserID:    u.ID,
				Image:     storage.PlaceholderURL,
				Caption:   s.caption(),
				CreatedAt: s.pastTime(maxDays),
			}
			if err := s.posts.Create(ctx, post); err != nil {
				return nil, err
			}
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (s *Seeder) createComments(ctx context.Context, users []*models.User, posts []*models.Post) (int, error) {
	if len(users) == 0 {
		return 0, nil
	}
	total := 0
	for _, p := range posts {
		n := s.faker.Number(0, s.opts.CommentsPerPost)
		for i := 0; i < n; i++ {
			author := users[s.faker.Number(0, len(users)-1)]
			c := &models.Comment{
				PostID:    p.ID,
				UserID:    author.ID,
				Content:   s.faker.Sentence(s.faker.Number(3, 12)),
				CreatedAt: p.CreatedAt.Add(time.Duration(i+1) * time.Minute),
			}
			if err := s.comments.Create(ctx, c); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, nil
}

func (s *Seeder) createLikes(ctx context.Context, users []*models.User, posts []*models.Post) (int, error) {
	total := 0
	for _, p := range posts {
		for _, u := range users {
			if s.faker.Number(1, 100) > s.opts.LikePercent {
				continue
			}
			liked, _, err := s.posts.ToggleLike(ctx, p.ID, u.ID)
			if err != nil {
				return total, err
			}
			if liked {
				total++
			}
		}
	}
	return total, nil
}

func (s *Seeder) caption() string {
	caption := s.faker.Sentence(s.faker.Number(4, 16))
	if s.faker.Bool() {
		caption += " #" + strings.ToLower(s.faker.Word())
	}
	if len(caption) > models.MaxCaptionLength {
		caption = caption[:models.MaxCaptionLength]
	}
	return caption
}

func (s *Seeder) pastTime(maxDays int) time.Time {
	back := time.Duration(s.faker.Number(0, maxDays-1))*24*time.Hour +
		time.Duration(s.faker.Number(0, 23))*time.Hour +
		time.Duration(s.faker.Number(0, 59))*time.Minute
	return s.now().Add(-back)
}
