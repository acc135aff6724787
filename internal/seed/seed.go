// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/DylanDHubert/hotmess/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
	Seed        int64
}

// Run populates the database with a realistic social mesh: users, posts,
// follow edges, likes, shares, comments, conversations and messages.
func Run(db *gorm.DB, opts Options) error {
	if opts.NumUsers < 2 {
		opts.NumUsers = 2
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = opts.NumUsers * 3
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	faker := gofakeit.New(opts.Seed)
	rng := rand.New(rand.NewSource(opts.Seed))

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("clean failed: %w", err)
		}
	}

	users, err := seedUsers(db, faker, opts.NumUsers)
	if err != nil {
		return err
	}
	posts, err := seedPosts(db, faker, rng, users, opts.NumPosts)
	if err != nil {
		return err
	}
	if err := seedFollowMesh(db, rng, users); err != nil {
		return err
	}
	if err := seedEngagement(db, faker, rng, users, posts); err != nil {
		return err
	}
	if err := seedConversations(db, faker, rng, users); err != nil {
		return err
	}

	log.Printf("Seeded %d users and %d posts", len(users), len(posts))
	return nil
}

func clean(db *gorm.DB) error {
	// Delete in dependency order so foreign keys never dangle.
	for _, table := range []string{"messages", "conversations", "comments", "likes", "shares", "follows", "posts", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedUsers(db *gorm.DB, faker *gofakeit.Faker, n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		username := strings.ToLower(faker.Username())
		user := &models.User{
			Username: fmt.Sprintf("%s%d", username, i),
			Email:    fmt.Sprintf("%d.%s", i, faker.Email()),
			Bio:      faker.Sentence(8),
			Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s%d", username, i),
		}
		if err := user.SetPassword("password123"); err != nil {
			return nil, err
		}
		if err := db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

func seedPosts(db *gorm.DB, faker *gofakeit.Faker, rng *rand.Rand, users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[rng.Intn(len(users))]
		post := &models.Post{
			UserID:  author.ID,
			Content: faker.Paragraph(1, 2, 12, " "),
		}
		if rng.Intn(4) == 0 {
			post.ImageURL = fmt.Sprintf("https://picsum.photos/seed/%d/800/600", i)
		}
		if err := db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("create post: %w", err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// seedFollowMesh gives every user a handful of outgoing follows. Self-follows
// and duplicates are skipped rather than retried.
func seedFollowMesh(db *gorm.DB, rng *rand.Rand, users []*models.User) error {
	for _, follower := range users {
		target := 2 + rng.Intn(4)
		for i := 0; i < target; i++ {
			followee := users[rng.Intn(len(users))]
			if followee.ID == follower.ID {
				continue
			}
			edge := &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
			if err := db.Where(models.Follow{FollowerID: edge.FollowerID, FolloweeID: edge.FolloweeID}).
				FirstOrCreate(edge).Error; err != nil {
				return fmt.Errorf("create follow: %w", err)
			}
		}
	}
	return nil
}

func seedEngagement(db *gorm.DB, faker *gofakeit.Faker, rng *rand.Rand, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		for _, user := range users {
			if rng.Intn(3) == 0 {
				like := &models.Like{UserID: user.ID, PostID: post.ID}
				if err := db.Where(models.Like{UserID: user.ID, PostID: post.ID}).FirstOrCreate(like).Error; err != nil {
					return fmt.Errorf("create like: %w", err)
				}
			}
			if rng.Intn(8) == 0 {
				share := &models.Share{UserID: user.ID, PostID: post.ID}
				if err := db.Where(models.Share{UserID: user.ID, PostID: post.ID}).FirstOrCreate(share).Error; err != nil {
					return fmt.Errorf("create share: %w", err)
				}
			}
			if rng.Intn(6) == 0 {
				comment := &models.Comment{
					UserID:  user.ID,
					PostID:  post.ID,
					Content: faker.Sentence(6 + rng.Intn(10)),
				}
				if err := db.Create(comment).Error; err != nil {
					return fmt.Errorf("create comment: %w", err)
				}
			}
		}
	}
	return nil
}

func seedConversations(db *gorm.DB, faker *gofakeit.Faker, rng *rand.Rand, users []*models.User) error {
	for i := 0; i+1 < len(users); i += 2 {
		a, b := users[i], users[i+1]
		conv := &models.Conversation{UserAID: a.ID, UserBID: b.ID}
		if err := db.Create(conv).Error; err != nil {
			return fmt.Errorf("create conversation: %w", err)
		}

		count := 3 + rng.Intn(8)
		for m := 0; m < count; m++ {
			sender, receiver := a, b
			if rng.Intn(2) == 0 {
				sender, receiver = b, a
			}
			msg := &models.Message{
				ConversationID: conv.ID,
				SenderID:       sender.ID,
				ReceiverID:     receiver.ID,
				Content:        faker.Sentence(4 + rng.Intn(12)),
				// Leave the tail of the thread unread so unread badges
				// show up in development.
				IsRead: m < count-2,
			}
			if msg.IsRead {
				at := time.Now().Add(-time.Duration(count-m) * time.Minute)
				msg.ReadAt = &at
			}
			if err := db.Create(msg).Error; err != nil {
				return fmt.Errorf("create message: %w", err)
			}
		}
	}
	return nil
}
