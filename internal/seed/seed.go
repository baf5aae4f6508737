package seed

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/virally/virally-backend/internal/repository"
	"github.com/virally/virally-backend/internal/types"
)

// SeedData creates demo data for development environments.
func SeedData(repos *repository.Repositories) {
	ctx := context.Background()

	if existing, _ := repos.UserRepo.FindByEmail(ctx, "ava@virally.app"); existing != nil {
		log.Println("[Seed] Data already exists, skipping...")
		return
	}

	log.Println("[Seed] 🌱 Creating demo data...")

	password, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// Ava owns the workspace
	ava := &repository.User{
		Email:    "ava@virally.app",
		Password: string(password),
		Name:     "Ava Chen",
	}
	repos.UserRepo.Create(ctx, ava)

	// Ben edits content
	ben := &repository.User{
		Email:    "ben@virally.app",
		Password: string(password),
		Name:     "Ben Torres",
	}
	repos.UserRepo.Create(ctx, ben)

	// Mia only views
	mia := &repository.User{
		Email:    "mia@virally.app",
		Password: string(password),
		Name:     "Mia Park",
	}
	repos.UserRepo.Create(ctx, mia)

	log.Println("[Seed] ✅ Created 3 users (ava, ben, mia / password123)")

	// Ava's workspace. The owner is derived from owner_id, so only
	// Ben and Mia get membership rows.
	workspace := &repository.Workspace{
		OwnerID:     ava.ID,
		Name:        "Ava Cooks",
		Niche:       "home cooking and meal prep",
		Description: stringPtr("Short-form cooking content across TikTok and YouTube"),
	}
	repos.WorkspaceRepo.Create(ctx, workspace)

	repos.WorkspaceRepo.AddMember(ctx, &repository.WorkspaceMember{
		WorkspaceID: workspace.ID,
		UserID:      ben.ID,
		Role:        "editor",
		InvitedBy:   &ava.ID,
	})
	repos.WorkspaceRepo.AddMember(ctx, &repository.WorkspaceMember{
		WorkspaceID: workspace.ID,
		UserID:      mia.ID,
		Role:        "viewer",
		InvitedBy:   &ava.ID,
	})

	log.Printf("[Seed] ✅ Created workspace %q (owner: Ava, editor: Ben, viewer: Mia)", workspace.Name)

	// A pending invitation
	repos.InvitationRepo.Create(ctx, &repository.Invitation{
		WorkspaceID: workspace.ID,
		Email:       "leo@virally.app",
		Role:        "editor",
		InvitedBy:   ava.ID,
		Status:      "pending",
		ExpiresAt:   time.Now().Add(14 * 24 * time.Hour),
	})

	// Content pipeline
	tomorrow := time.Now().Add(24 * time.Hour)
	nextWeek := time.Now().Add(7 * 24 * time.Hour)

	event := &repository.CalendarEvent{
		WorkspaceID: workspace.ID,
		Title:       "5-minute weeknight ramen",
		Description: stringPtr("Upgrade instant ramen with pantry staples"),
		Platform:    types.PlatformTikTok,
		Status:      types.StatusScheduled,
		ScheduledAt: &tomorrow,
		CreatedBy:   ava.ID,
	}
	repos.CalendarRepo.Create(ctx, event)

	repos.CalendarRepo.Create(ctx, &repository.CalendarEvent{
		WorkspaceID: workspace.ID,
		Title:       "Meal prep for busy weeks",
		Platform:    types.PlatformYouTube,
		Status:      types.StatusScripting,
		ScheduledAt: &nextWeek,
		CreatedBy:   ben.ID,
	})

	repos.IdeaRepo.Create(ctx, &repository.Idea{
		WorkspaceID: workspace.ID,
		Title:       "One-pan breakfast ideas",
		Notes:       stringPtr("Viewers keep asking for faster mornings"),
		Source:      stringPtr("comment section"),
		Status:      types.IdeaNew,
		CreatedBy:   ben.ID,
	})
	repos.IdeaRepo.Create(ctx, &repository.Idea{
		WorkspaceID: workspace.ID,
		Title:       "Grocery haul under $50",
		Status:      types.IdeaApproved,
		CreatedBy:   ava.ID,
	})

	repos.ScriptRepo.Create(ctx, &repository.Script{
		WorkspaceID: workspace.ID,
		Title:       "Weeknight ramen script",
		Hook:        stringPtr("You're 5 minutes away from restaurant ramen."),
		Content:     "Open on boiling water. Add the upgrade trio: scallions, egg, chili crisp...",
		Status:      types.ScriptDraft,
		EventID:     &event.ID,
		CreatedBy:   ben.ID,
	})

	// A week of analytics
	for i := 0; i < 7; i++ {
		day := time.Now().AddDate(0, 0, -i)
		repos.AnalyticsRepo.Create(ctx, &repository.AnalyticsEntry{
			WorkspaceID: workspace.ID,
			Platform:    types.PlatformTikTok,
			MetricDate:  day,
			Views:       int64(12000 - i*900),
			Likes:       int64(1500 - i*100),
			Comments:    int64(140 - i*10),
			Shares:      int64(220 - i*15),
			Followers:   int64(45000 - i*200),
			Revenue:     decimal.NewFromFloat(38.50 - float64(i)*2.25),
			CreatedBy:   ava.ID,
		})
	}

	log.Println("[Seed] ✅ Demo content created")
}

func stringPtr(s string) *string {
	return &s
}
