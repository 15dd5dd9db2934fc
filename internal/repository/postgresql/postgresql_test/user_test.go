package postgresql_test

import (
	"context"
	"sync"
	"testing"

	"github.com/hrflo/hrflo-backend/internal/domain/job"
	"github.com/hrflo/hrflo-backend/internal/domain/user"
	"github.com/hrflo/hrflo-backend/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLive(t *testing.T) *TestDatabaseSetup {
	t.Helper()

	setup, err := NewTestDatabase()
	require.NoError(t, err)
	if setup == nil {
		t.Skip("TEST_DATABASE_URL not set")
	}
	t.Cleanup(setup.Close)

	require.NoError(t, setup.TruncateAllTables(context.Background()))
	return setup
}

func createUser(t *testing.T, repo user.UserRepository, email string, position *string) user.User {
	t.Helper()

	created, err := repo.Create(context.Background(), user.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZa",
		Role:         user.RoleEmployee,
		Position:     position,
	})
	require.NoError(t, err)
	return created
}

func TestLiveUserRepository_DuplicateEmail(t *testing.T) {
	setup := setupLive(t)
	repo := postgresql.NewUserRepository(setup.DB)

	first := createUser(t, repo, "dup@example.com", nil)

	_, err := repo.Create(context.Background(), user.User{
		Email:        "dup@example.com",
		PasswordHash: "other-hash",
		Role:         user.RoleEmployee,
	})
	assert.ErrorIs(t, err, user.ErrUserEmailExists)

	stored, err := repo.GetByEmail(context.Background(), "dup@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.PasswordHash, stored.PasswordHash)
}

func TestLiveUserRepository_ConcurrentPromotionsSerialize(t *testing.T) {
	setup := setupLive(t)
	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(setup.DB)
	initial := "Engineer"
	u := createUser(t, userRepo, "promote@example.com", &initial)

	positions := []string{"Senior Engineer", "Staff Engineer"}
	olds := make([]*string, len(positions))

	var wg sync.WaitGroup
	for i, pos := range positions {
		wg.Add(1)
		go func(i int, pos string) {
			defer wg.Done()
			err := postgresql.WithTransaction(ctx, setup.DB, func(txCtx context.Context) error {
				old, err := userRepo.GetPositionForUpdate(txCtx, u.ID)
				if err != nil {
					return err
				}
				olds[i] = old
				return userRepo.UpdatePosition(txCtx, u.ID, pos)
			})
			assert.NoError(t, err)
		}(i, pos)
	}
	wg.Wait()

	// One of the promotions must have observed the other's new position.
	require.NotNil(t, olds[0])
	require.NotNil(t, olds[1])
	seen := []string{*olds[0], *olds[1]}
	assert.Contains(t, seen, initial)
	assert.NotEqual(t, *olds[0], *olds[1])
}

func TestLiveJobRepository_OpenListingExcludesClosed(t *testing.T) {
	setup := setupLive(t)
	ctx := context.Background()
	repo := postgresql.NewJobRepository(setup.DB)

	open, err := repo.Create(ctx, job.JobPosting{Title: "Open role", EmploymentType: job.EmploymentTypeFullTime, Status: job.StatusOpen})
	require.NoError(t, err)
	_, err = repo.Create(ctx, job.JobPosting{Title: "Closed role", EmploymentType: job.EmploymentTypeContract, Status: job.StatusClosed})
	require.NoError(t, err)

	jobs, err := repo.ListByStatus(ctx, job.StatusOpen)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, open.ID, jobs[0].ID)
}

func TestLiveCandidateRepository_ReusedAcrossApplications(t *testing.T) {
	setup := setupLive(t)
	ctx := context.Background()
	jobRepo := postgresql.NewJobRepository(setup.DB)
	candidateRepo := postgresql.NewCandidateRepository(setup.DB)
	applicationRepo := postgresql.NewApplicationRepository(setup.DB)

	var jobIDs []string
	for _, title := range []string{"First", "Second"} {
		j, err := jobRepo.Create(ctx, job.JobPosting{Title: title, EmploymentType: job.EmploymentTypePartTime, Status: job.StatusOpen})
		require.NoError(t, err)
		jobIDs = append(jobIDs, j.ID)
	}

	var candidateIDs []string
	for i, jobID := range jobIDs {
		name := []string{"Jane", "Janet"}[i]
		c, _, err := candidateRepo.Upsert(ctx, name, "jane@example.com", nil)
		require.NoError(t, err)
		_, err = applicationRepo.Create(ctx, jobID, c.ID)
		require.NoError(t, err)
		candidateIDs = append(candidateIDs, c.ID)
		assert.Equal(t, "Jane", c.Name)
	}

	assert.Equal(t, candidateIDs[0], candidateIDs[1])
	for _, jobID := range jobIDs {
		applicants, err := applicationRepo.ListByJob(ctx, jobID)
		require.NoError(t, err)
		assert.Len(t, applicants, 1)
	}
}
