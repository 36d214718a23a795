package services

import (
	"context"
	"log"
	"sync"

	"dataquad/recruitops/internal/repositories"
)

// NotifyWorker delivers assignment notifications off the request path. A
// mutation enqueues a job id after its write; the worker looks the
// requirement up and mails its recruiters. Delivery problems never reach the
// caller of the mutation.
type NotifyWorker interface {
	Start(ctx context.Context)
	Stop()
	Enqueue(jobID string)
}

type notifyWorker struct {
	reqRepo     repositories.RequirementRepository
	mailer      MailerService
	queue       chan string
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewNotifyWorker(
	reqRepo repositories.RequirementRepository,
	mailer MailerService,
	concurrency int,
	queueSize int,
) NotifyWorker {
	if queueSize <= 0 {
		queueSize = 100
	}
	return &notifyWorker{
		reqRepo:     reqRepo,
		mailer:      mailer,
		queue:       make(chan string, queueSize),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

func (w *notifyWorker) Start(ctx context.Context) {
	log.Printf("🚀 Starting notification worker with %d senders", w.concurrency)
	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.drain(ctx, i+1)
	}
}

func (w *notifyWorker) Stop() {
	log.Println("🛑 Stopping notification worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Notification worker stopped")
}

func (w *notifyWorker) Enqueue(jobID string) {
	select {
	case w.queue <- jobID:
	case <-w.stopChan:
		log.Printf("⚠️  Notification worker stopped, dropping notification for job %s", jobID)
	}
}

func (w *notifyWorker) drain(ctx context.Context, senderID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			return
		case <-ctx.Done():
			return
		case jobID := <-w.queue:
			req, err := w.reqRepo.FindByID(jobID)
			if err != nil {
				log.Printf("❌ Sender #%d cannot load job %s for notification: %v", senderID, jobID, err)
				continue
			}
			w.mailer.NotifyRecruiters(req)
		}
	}
}
