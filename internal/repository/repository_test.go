package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/lshigami/SigmaLearn/internal/database"
	"github.com/lshigami/SigmaLearn/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("AutoMigrate: %v", err)
	}
	return db
}

func TestClientTokenSaveReplaces(t *testing.T) {
	repo := NewClientTokenRepository(newTestDB(t))

	if err := repo.Save(&model.ClientToken{ClientID: "c1", UserID: "u1", Token: "t1"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Save(&model.ClientToken{ClientID: "c1", UserID: "u2", Token: "t2"}); err != nil {
		t.Fatalf("Save again: %v", err)
	}
	got, err := repo.FindByClientID("c1")
	if err != nil {
		t.Fatalf("FindByClientID: %v", err)
	}
	if got.UserID != "u2" || got.Token != "t2" {
		t.Fatalf("token=%+v", got)
	}

	if err := repo.Delete("c1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByClientID("c1"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("after delete err=%v", err)
	}
}

func TestClientTokenDeleteExpired(t *testing.T) {
	repo := NewClientTokenRepository(newTestDB(t))
	now := time.Now().UTC()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	_ = repo.Save(&model.ClientToken{ClientID: "old", UserID: "u", Token: "a", ExpiresAt: &past})
	_ = repo.Save(&model.ClientToken{ClientID: "new", UserID: "u", Token: "b", ExpiresAt: &future})
	_ = repo.Save(&model.ClientToken{ClientID: "forever", UserID: "u", Token: "c"})

	n, err := repo.DeleteExpired(now)
	if err != nil {
		t.Fatalf("DeleteExpired: %v", err)
	}
	if n != 1 {
		t.Fatalf("deleted=%d", n)
	}
	if _, err := repo.FindByClientID("new"); err != nil {
		t.Fatalf("unexpired token removed: %v", err)
	}
	if _, err := repo.FindByClientID("forever"); err != nil {
		t.Fatalf("token without expiry removed: %v", err)
	}
}

func TestUserProfileUpsert(t *testing.T) {
	repo := NewUserProfileRepository(newTestDB(t))
	if err := repo.Upsert(&model.UserProfile{ExternalID: "user_1", Email: "a@x.io", Name: "A"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(&model.UserProfile{ExternalID: "user_1", Email: "b@x.io", Name: "B"}); err != nil {
		t.Fatalf("Upsert again: %v", err)
	}
	got, err := repo.FindByExternalID("user_1")
	if err != nil {
		t.Fatalf("FindByExternalID: %v", err)
	}
	if got.Email != "b@x.io" || got.Name != "B" {
		t.Fatalf("profile=%+v", got)
	}
}
