// Command main runs the database seeder for Vibestudio.
package main

import (
	"context"
	"flag"
	"log"

	"vibestudio/internal/cache"
	"vibestudio/internal/config"
	"vibestudio/internal/database"
	"vibestudio/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	defaults := seed.DefaultOptions()

	numUsers := flag.Int("users", defaults.Users, "Number of users to create")
	postsPerUser := flag.Int("posts", defaults.PostsPerUser, "Posts per user")
	followsPerUser := flag.Int("follows", defaults.FollowsPerUser, "Users each user follows")
	commentsPerPost := flag.Int("comments", defaults.CommentsPerPost, "Maximum comments per post")
	likePercent := flag.Int("like-percent", defaults.LikePercent, "Chance (0-100) that a user likes a post")
	shouldClean := flag.Bool("clean", defaults.Clean, "Clean database before seeding")
	fast := flag.Bool("fast", false, "Hash passwords with the minimum bcrypt cost")
	randSeed := flag.Int64("seed", 0, "Random seed for reproducible data (0 = time based)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Redis is optional here too; without it there is nothing to invalidate.
	rdb := cache.InitRedis(cfg.RedisURL)
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	s := seed.NewSeeder(db, seed.Options{
		Users:           *numUsers,
		PostsPerUser:    *postsPerUser,
		FollowsPerUser:  *followsPerUser,
		CommentsPerPost: *commentsPerPost,
		LikePercent:     *likePercent,
		MaxDays:         defaults.MaxDays,
		Clean:           *shouldClean,
		FastHash:        *fast,
		Seed:            *randSeed,
	}).WithCache(cache.NewStore(rdb))

	sum, err := s.Run(context.Background())
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded %d users, %d follows, %d posts, %d comments, %d likes",
		sum.Users, sum.Follows, sum.Posts, sum.Comments, sum.Likes)
	log.Printf("All seeded users have the password: %s", seed.DefaultPassword)
}
