package seed

import (
	"context"
	"testing"

	"vibestudio/internal/cache"
	"vibestudio/internal/database"
	"vibestudio/internal/models"
	"vibestudio/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func smallOptions() Options {
	return Options{
		Users:           6,
		PostsPerUser:    2,
		FollowsPerUser:  3,
		CommentsPerPost: 2,
		LikePercent:     50,
		MaxDays:         7,
		Clean:           true,
		FastHash:        true,
		Seed:            42,
	}
}

func count(t *testing.T, db *gorm.DB, model any) int {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return int(n)
}

func TestSeeder_Run(t *testing.T) {
	db := openDB(t)

	sum, err := NewSeeder(db, smallOptions()).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, sum.Users)
	assert.Equal(t, 12, sum.Posts)
	assert.Equal(t, sum.Users, count(t, db, &models.User{}))
	assert.Equal(t, sum.Posts, count(t, db, &models.Post{}))
	assert.Equal(t, sum.Follows, count(t, db, &models.Follow{}))
	assert.Equal(t, sum.Comments, count(t, db, &models.Comment{}))
	assert.Equal(t, sum.Likes, count(t, db, &models.Like{}))
	assert.LessOrEqual(t, sum.Comments, sum.Posts*2)

	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).Where("follower_id = followee_id").Count(&selfFollows).Error)
	assert.Zero(t, selfFollows)

	var post models.Post
	require.NoError(t, db.First(&post).Error)
	assert.Equal(t, storage.PlaceholderURL, post.Image)
	assert.NotEmpty(t, post.Caption)
	assert.LessOrEqual(t, len(post.Caption), models.MaxCaptionLength)

	var user models.User
	require.NoError(t, db.First(&user).Error)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(DefaultPassword)))
}

func TestSeeder_CleanReplacesData(t *testing.T) {
	db := openDB(t)
	opts := smallOptions()

	_, err := NewSeeder(db, opts).Run(context.Background())
	require.NoError(t, err)

	opts.Seed = 7
	sum, err := NewSeeder(db, opts).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, sum.Users, count(t, db, &models.User{}))
	assert.Equal(t, sum.Likes, count(t, db, &models.Like{}))
}

func TestSeeder_SingleUserHasNoFollows(t *testing.T) {
	db := openDB(t)
	opts := smallOptions()
	opts.Users = 1

	sum, err := NewSeeder(db, opts).Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.Follows)
	assert.Equal(t, 2, sum.Posts)
}

func TestSeeder_InvalidatesCachedFeeds(t *testing.T) {
	db := openDB(t)
	mr := miniredis.RunT(t)
	store := cache.NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	before, err := store.Version(ctx)
	require.NoError(t, err)

	_, err = NewSeeder(db, smallOptions()).WithCache(store).Run(ctx)
	require.NoError(t, err)

	after, err := store.Version(ctx)
	require.NoError(t, err)
	assert.Greater(t, after, before)
}

func TestSeeder_WithoutCache(t *testing.T) {
	db := openDB(t)

	_, err := NewSeeder(db, smallOptions()).WithCache(cache.NewStore(nil)).Run(context.Background())
	assert.NoError(t, err)
}
