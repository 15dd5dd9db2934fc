package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hrflo/hrflo-backend/internal/domain/job"
	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()

	var runs atomic.Int32
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}

	// Stopping twice is harmless.
	s.Stop()
}

func TestScheduler_RunOnceContinuesAfterFailure(t *testing.T) {
	s := NewScheduler()

	var second bool
	s.AddJob("fails", time.Minute, func(ctx context.Context) error { return errors.New("boom") })
	s.AddJob("second", time.Minute, func(ctx context.Context) error {
		second = true
		return nil
	})

	s.RunOnce(context.Background())
	assert.True(t, second)
}

type closingJobs struct {
	job.JobService
	calls  int
	closed int64
}

func (c *closingJobs) CloseExpiredJobs(ctx context.Context) (int64, error) {
	c.calls++
	return c.closed, nil
}

func TestRecruitmentJobs_Register(t *testing.T) {
	svc := &closingJobs{closed: 3}
	s := NewScheduler()

	jobs := NewRecruitmentJobs(svc, 0)
	jobs.RegisterJobs(s)

	assert.Len(t, s.jobs, 1)
	assert.Equal(t, "close_expired_job_postings", s.jobs[0].Name)
	assert.Equal(t, time.Hour, s.jobs[0].Interval)

	s.RunOnce(context.Background())
	assert.Equal(t, 1, svc.calls)
}
