// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/danielhkuo/bayroumeter/db"
	"github.com/danielhkuo/bayroumeter/models"
	"github.com/danielhkuo/bayroumeter/testutil"
)

func TestCastVote(t *testing.T) {
	repo, conn := testutil.SetupTestRepo(t)
	registry := NewVoteRegistry(repo, nil)
	fixed := time.Date(2025, 3, 14, 9, 26, 53, 0, time.FixedZone("CET", 3600))
	registry.now = func() time.Time { return fixed }

	userID := testutil.CreateTestUser(t, conn, "alice", "alice@x.com")

	vote, err := registry.CastVote(context.Background(), " "+userID+" ", " Oui ")
	if err != nil {
		t.Fatalf("CastVote failed: %v", err)
	}

	if vote.ID == "" {
		t.Error("Expected a generated vote ID")
	}
	if vote.UserID != userID {
		t.Errorf("Expected userId %s, got %s", userID, vote.UserID)
	}
	if vote.Choice != models.ChoiceOui {
		t.Errorf("Expected trimmed choice Oui, got %q", vote.Choice)
	}
	if !vote.CreatedAt.Equal(fixed) || vote.CreatedAt.Location() != time.UTC {
		t.Errorf("Expected createdAt %v in UTC, got %v", fixed.UTC(), vote.CreatedAt)
	}

	stored, err := repo.FindVoteByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("Vote was not stored: %v", err)
	}
	if stored.ID != vote.ID {
		t.Errorf("Expected stored vote %s, got %s", vote.ID, stored.ID)
	}
}

func TestCastVoteChoices(t *testing.T) {
	testCases := []struct {
		choice string
		valid  bool
	}{
		{"Oui", true},
		{"Non", true},
		{"  Non\t", true},
		{"oui", false},
		{"NON", false},
		{"Peut-être", false},
		{"", false},
		{"   ", false},
		{"Oui Non", false},
	}

	for _, tc := range testCases {
		t.Run("choice="+tc.choice, func(t *testing.T) {
			repo, conn := testutil.SetupTestRepo(t)
			registry := NewVoteRegistry(repo, nil)
			userID := testutil.CreateTestUser(t, conn, "voter", "voter@x.com")

			_, err := registry.CastVote(context.Background(), userID, tc.choice)
			if tc.valid {
				if err != nil {
					t.Errorf("Expected %q to be accepted, got %v", tc.choice, err)
				}
				return
			}

			assertKind(t, err, KindValidation)
			if MessageOf(err) != MsgInvalidChoice {
				t.Errorf("Expected message %q, got %q", MsgInvalidChoice, MessageOf(err))
			}
			if n := testutil.CountRows(t, conn, "votes"); n != 0 {
				t.Errorf("Expected no vote written, got %d", n)
			}
		})
	}
}

func TestCastVoteMissingUserID(t *testing.T) {
	repo, _ := testutil.SetupTestRepo(t)
	registry := NewVoteRegistry(repo, nil)

	for _, userID := range []string{"", "   "} {
		// Invalid choice too: the userId check must win
		_, err := registry.CastVote(context.Background(), userID, "Maybe")
		assertKind(t, err, KindValidation)
		if MessageOf(err) != MsgMissingUserID {
			t.Errorf("Expected message %q, got %q", MsgMissingUserID, MessageOf(err))
		}
	}
}

func TestCastVoteUnknownUser(t *testing.T) {
	repo, conn := testutil.SetupTestRepo(t)
	registry := NewVoteRegistry(repo, nil)

	_, err := registry.CastVote(context.Background(), "no-such-user", "Oui")
	assertKind(t, err, KindNotFound)

	if n := testutil.CountRows(t, conn, "votes"); n != 0 {
		t.Errorf("Expected no vote written, got %d", n)
	}
}

func TestCastVoteOnce(t *testing.T) {
	repo, conn := testutil.SetupTestRepo(t)
	registry := NewVoteRegistry(repo, nil)
	ctx := context.Background()

	userID := testutil.CreateTestUser(t, conn, "alice", "alice@x.com")

	if _, err := registry.CastVote(ctx, userID, "Oui"); err != nil {
		t.Fatalf("First vote failed: %v", err)
	}

	for _, choice := range []string{"Oui", "Non"} {
		_, err := registry.CastVote(ctx, userID, choice)
		assertKind(t, err, KindConflict)
		if MessageOf(err) != MsgAlreadyVoted {
			t.Errorf("Expected message %q, got %q", MsgAlreadyVoted, MessageOf(err))
		}
	}

	if n := testutil.CountRows(t, conn, "votes"); n != 1 {
		t.Errorf("Expected exactly 1 vote, got %d", n)
	}
}

func TestCastVoteValidationOrder(t *testing.T) {
	// Unknown user with an invalid choice: the choice check comes first
	repo := &stubRepo{
		findUserByID: func(context.Context, string) (models.User, error) {
			t.Fatal("store must not be consulted for an invalid choice")
			return models.User{}, nil
		},
	}
	_, err := NewVoteRegistry(repo, nil).CastVote(context.Background(), "ghost", "Blanc")
	assertKind(t, err, KindValidation)

	// Unknown user who somehow has a vote: not found wins over conflict
	repo = &stubRepo{
		findUserByID: func(context.Context, string) (models.User, error) { return models.User{}, db.ErrNotFound },
		findVoteByUserID: func(context.Context, string) (models.Vote, error) {
			return models.Vote{ID: "v1"}, nil
		},
	}
	_, err = NewVoteRegistry(repo, nil).CastVote(context.Background(), "ghost", "Oui")
	assertKind(t, err, KindNotFound)
}

func TestCastVoteLostRace(t *testing.T) {
	repo := &stubRepo{
		findUserByID:     func(context.Context, string) (models.User, error) { return models.User{ID: "u1"}, nil },
		findVoteByUserID: func(context.Context, string) (models.Vote, error) { return models.Vote{}, db.ErrNotFound },
		insertVote:       func(context.Context, models.Vote) error { return db.ErrDuplicate },
	}

	_, err := NewVoteRegistry(repo, nil).CastVote(context.Background(), "u1", "Non")
	assertKind(t, err, KindConflict)
}

func TestCastVoteStoreFailure(t *testing.T) {
	repo := &stubRepo{
		findUserByID:     func(context.Context, string) (models.User, error) { return models.User{ID: "u1"}, nil },
		findVoteByUserID: func(context.Context, string) (models.Vote, error) { return models.Vote{}, errStoreDown },
	}

	_, err := NewVoteRegistry(repo, nil).CastVote(context.Background(), "u1", "Non")
	assertKind(t, err, KindInternal)
	if !errors.Is(err, errStoreDown) {
		t.Error("Expected the store error to be wrapped")
	}
}

// TestConcurrentVotesSameUser verifies that racing votes for one user
// produce exactly one stored vote
func TestConcurrentVotesSameUser(t *testing.T) {
	repo, conn := testutil.SetupTestRepo(t)
	registry := NewVoteRegistry(repo, nil)
	userID := testutil.CreateTestUser(t, conn, "racer", "racer@x.com")

	numAttempts := 8
	var successCount, conflictCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numAttempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			choice := models.Choices[i%2]
			_, err := registry.CastVote(context.Background(), userID, choice)
			switch {
			case err == nil:
				successCount.Add(1)
			case KindOf(err) == KindConflict:
				conflictCount.Add(1)
			default:
				t.Errorf("Unexpected error: %v", err)
			}
		}(i)
	}

	wg.Wait()

	if successCount.Load() != 1 {
		t.Errorf("Expected exactly 1 success, got %d", successCount.Load())
	}
	if conflictCount.Load() != int32(numAttempts-1) {
		t.Errorf("Expected %d conflicts, got %d", numAttempts-1, conflictCount.Load())
	}
	if n := testutil.CountRows(t, conn, "votes"); n != 1 {
		t.Errorf("Expected 1 vote in database, got %d", n)
	}
}

func TestListAllVotes(t *testing.T) {
	repo, conn := testutil.SetupTestRepo(t)
	lister := NewVoteLister(repo)

	votes, err := lister.ListAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if votes == nil || len(votes) != 0 {
		t.Errorf("Expected empty non-nil list, got %#v", votes)
	}

	u1 := testutil.CreateTestUser(t, conn, "a", "a@x.com")
	u2 := testutil.CreateTestUser(t, conn, "b", "b@x.com")
	v1 := testutil.CreateTestVote(t, conn, u1, "Oui")
	v2 := testutil.CreateTestVote(t, conn, u2, "Non")

	votes, err = lister.ListAll(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(votes) != 2 {
		t.Fatalf("Expected 2 votes, got %d", len(votes))
	}

	byID := map[string]models.Vote{}
	for _, v := range votes {
		byID[v.ID] = v
	}
	if byID[v1].UserID != u1 || byID[v1].Choice != "Oui" {
		t.Errorf("Unexpected vote %s: %#v", v1, byID[v1])
	}
	if byID[v2].UserID != u2 || byID[v2].Choice != "Non" {
		t.Errorf("Unexpected vote %s: %#v", v2, byID[v2])
	}
	if byID[v1].CreatedAt.IsZero() {
		t.Error("Expected createdAt to be populated")
	}
}

func TestListAllVotesStoreFailure(t *testing.T) {
	repo := &stubRepo{
		listVotes: func(context.Context) ([]models.Vote, error) { return nil, errStoreDown },
	}

	_, err := NewVoteLister(repo).ListAll(context.Background())
	assertKind(t, err, KindInternal)
}
