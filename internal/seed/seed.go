// Package seed provides helpers to create demo data for development
// environments. Not for production use.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"liberty/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumGroups   int
	ShouldClean bool
}

// Seeder builds demo entities and persists them to the database.
type Seeder struct {
	db   *gorm.DB
	rand *rand.Rand
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:   db,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Seed populates the database with demo data.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("🌱 Seeding %d users, %d posts, %d groups...", opts.NumUsers, opts.NumPosts, opts.NumGroups)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			log.Println("⚠️  Warning: could not clear all existing data, continuing anyway...")
		}
	}

	users, err := s.createUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d demo users created", len(users))

	if err := s.createPosts(users, opts.NumPosts); err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", opts.NumPosts)

	if err := s.createGroups(users, opts.NumGroups); err != nil {
		return fmt.Errorf("failed to create groups: %w", err)
	}
	log.Printf("✓ %d groups created", opts.NumGroups)

	if err := s.createSocialGraph(users); err != nil {
		return fmt.Errorf("failed to create social graph: %w", err)
	}
	log.Println("✓ connections and follows created")

	log.Println("🎉 Seeding completed successfully!")
	return nil
}

// ClearAll truncates all seeded tables.
func (s *Seeder) ClearAll() error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE follows, connections, group_memberships, groups, posts, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

func (s *Seeder) createUsers(n int) ([]*models.User, error) {
	// One hash reused for every demo account keeps seeding fast.
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		dob := gofakeit.DateRange(
			time.Date(1960, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC),
		)
		user := &models.User{
			Email:       fmt.Sprintf("%d.%s", i, gofakeit.Email()),
			Password:    string(hashed),
			Username:    fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			FirstName:   gofakeit.FirstName(),
			LastName:    gofakeit.LastName(),
			DateOfBirth: &dob,
			Gender:      gofakeit.Gender(),
			Private:     s.rand.Intn(5) == 0,
		}
		users = append(users, user)
	}
	if err := s.db.Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Seeder) createPosts(users []*models.User, n int) error {
	if len(users) == 0 {
		return nil
	}
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rand.Intn(len(users))]
		// Spread created_at over the last 90 days so feed pages look natural.
		age := time.Duration(s.rand.Intn(90*24)) * time.Hour
		posts = append(posts, &models.Post{
			Content:   gofakeit.Paragraph(1, 3, 8, " "),
			AuthorID:  author.ID,
			CreatedAt: time.Now().Add(-age),
		})
	}
	return s.db.Create(&posts).Error
}

func (s *Seeder) createGroups(users []*models.User, n int) error {
	if len(users) == 0 {
		return nil
	}
	for i := 0; i < n; i++ {
		creator := users[s.rand.Intn(len(users))]
		groupType := models.GroupTypePublic
		if s.rand.Intn(3) == 0 {
			groupType = models.GroupTypePrivate
		}
		group := &models.Group{
			Name:            fmt.Sprintf("%s %s", gofakeit.HackerAdjective(), gofakeit.HackerNoun()),
			GroupType:       groupType,
			CreatedByUserID: creator.ID,
		}
		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(group).Error; err != nil {
				return err
			}
			membership := models.GroupMembership{
				GroupID: group.ID,
				UserID:  creator.ID,
				Role:    models.GroupMembershipRoleAdmin,
			}
			if err := tx.Create(&membership).Error; err != nil {
				return err
			}
			// A few extra members per group
			for j := 0; j < s.rand.Intn(4); j++ {
				member := users[s.rand.Intn(len(users))]
				if member.ID == creator.ID {
					continue
				}
				m := models.GroupMembership{
					GroupID: group.ID,
					UserID:  member.ID,
					Role:    models.GroupMembershipRoleMember,
				}
				if err := tx.Where(&m).FirstOrCreate(&m).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) createSocialGraph(users []*models.User) error {
	if len(users) < 2 {
		return nil
	}
	for _, user := range users {
		// Each user connects with up to 3 others and follows up to 5.
		for i := 0; i < s.rand.Intn(4); i++ {
			other := users[s.rand.Intn(len(users))]
			if other.ID == user.ID {
				continue
			}
			status := models.ConnectionStatusPending
			if s.rand.Intn(2) == 0 {
				status = models.ConnectionStatusAccepted
			}
			conn := models.Connection{
				RequesterID: user.ID,
				AddresseeID: other.ID,
				Status:      status,
			}
			if err := s.db.Where(
				"(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
				user.ID, other.ID, other.ID, user.ID,
			).FirstOrCreate(&conn).Error; err != nil {
				return err
			}
		}
		for i := 0; i < s.rand.Intn(6); i++ {
			other := users[s.rand.Intn(len(users))]
			if other.ID == user.ID {
				continue
			}
			follow := models.Follow{FollowerID: user.ID, FolloweeID: other.ID}
			if err := s.db.Where(&follow).FirstOrCreate(&follow).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
