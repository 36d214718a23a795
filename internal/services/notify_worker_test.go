package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataquad/recruitops/internal/models"
)

func TestNotifyWorkerDeliversEnqueuedJobs(t *testing.T) {
	reqRepo := newMemReqRepo(&models.Requirement{
		JobID:        "JOB-1",
		JobTitle:     "Go Developer",
		RecruiterIDs: models.NewStringSet([]string{"U1"}),
	})
	userRepo := newMemUserRepo()
	userRepo.addUser("U1", "Asha", "asha@dataquad.com", models.RoleEmployee)

	transport := &captureTransport{}
	worker := NewNotifyWorker(reqRepo, NewMailerService(userRepo, transport), 2, 16)

	worker.Start(context.Background())
	worker.Enqueue("JOB-1")

	require.Eventually(t, func() bool {
		return len(transport.sentMails()) == 1
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "asha@dataquad.com", transport.sentMails()[0].to)

	worker.Stop()
}

func TestNotifyWorkerUnknownJobIsDropped(t *testing.T) {
	transport := &captureTransport{}
	worker := NewNotifyWorker(newMemReqRepo(), NewMailerService(newMemUserRepo(), transport), 1, 16)

	worker.Start(context.Background())
	worker.Enqueue("JOB-MISSING")

	time.Sleep(50 * time.Millisecond)
	worker.Stop()
	assert.Empty(t, transport.sentMails())
}

func TestNotifyWorkerQueueSize(t *testing.T) {
	mailer := NewMailerService(newMemUserRepo(), &captureTransport{})

	worker := NewNotifyWorker(newMemReqRepo(), mailer, 1, 5).(*notifyWorker)
	assert.Equal(t, 5, cap(worker.queue))

	// Non-positive sizes fall back to the default capacity.
	fallback := NewNotifyWorker(newMemReqRepo(), mailer, 1, 0).(*notifyWorker)
	assert.Equal(t, 100, cap(fallback.queue))
}

func TestNotifyWorkerEnqueueAfterStopDoesNotBlock(t *testing.T) {
	worker := NewNotifyWorker(newMemReqRepo(), NewMailerService(newMemUserRepo(), &captureTransport{}), 1, 16)
	worker.Start(context.Background())
	worker.Stop()

	done := make(chan struct{})
	go func() {
		worker.Enqueue("JOB-1")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked after Stop")
	}
}
