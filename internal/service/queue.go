package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bloodlink/internal/model"
	"bloodlink/internal/repository"
)

// QueueStats counts a day's entries by status.
type QueueStats struct {
	Total      int `json:"total"`
	Waiting    int `json:"waiting"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
}

// QueueDay is one day's queue in queue-number order.
type QueueDay struct {
	Queue []model.QueueEntry `json:"queue"`
	Stats QueueStats         `json:"stats"`
}

// EnqueueInput books a donor into a hospital's queue for a day.
type EnqueueInput struct {
	HospitalID      string `json:"hospital_id"`
	DonorID         string `json:"donor_id"`
	AppointmentDate string `json:"appointment_date"`
}

// EnqueueResult is the stored entry and its assigned number.
type EnqueueResult struct {
	QueueEntry  *model.QueueEntry `json:"queue_entry"`
	QueueNumber int               `json:"queue_number"`
}

// QueueService runs the appointment queue: waiting, in_progress, completed.
// Transitions are not guarded; the last write wins.
type QueueService interface {
	// Day lists a day's queue. An empty date means today in the service timezone.
	Day(ctx context.Context, hospitalID, date string) (*QueueDay, error)
	Enqueue(ctx context.Context, in EnqueueInput) (*EnqueueResult, error)
	// UpdateStatus stamps check_in_time on in_progress and completed_time on completed.
	UpdateStatus(ctx context.Context, id, status string) (*model.QueueEntry, error)
}

type queueService struct {
	queue repository.QueueRepository
	loc   *time.Location
	now   func() time.Time
}

// NewQueueService constructs a QueueService; loc decides what "today" is.
func NewQueueService(queue repository.QueueRepository, loc *time.Location) QueueService {
	if loc == nil {
		loc = time.UTC
	}
	return &queueService{queue: queue, loc: loc, now: time.Now}
}

var queueStatuses = map[string]bool{
	model.QueueWaiting:    true,
	model.QueueInProgress: true,
	model.QueueCompleted:  true,
}

func (s *queueService) resolveDate(date string) (string, error) {
	if date == "" {
		return s.now().In(s.loc).Format(dateLayout), nil
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", invalid("date must be YYYY-MM-DD")
	}
	return date, nil
}

func (s *queueService) Day(ctx context.Context, hospitalID, date string) (*QueueDay, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}
	entries, err := s.queue.ListDay(ctx, hospitalID, day)
	if err != nil {
		return nil, err
	}

	stats := QueueStats{Total: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case model.QueueWaiting:
			stats.Waiting++
		case model.QueueInProgress:
			stats.InProgress++
		case model.QueueCompleted:
			stats.Completed++
		}
	}
	return &QueueDay{Queue: entries, Stats: stats}, nil
}

func (s *queueService) Enqueue(ctx context.Context, in EnqueueInput) (*EnqueueResult, error) {
	if in.HospitalID == "" {
		return nil, invalid("hospital_id is required")
	}
	if in.DonorID == "" {
		return nil, invalid("donor_id is required")
	}
	day, err := s.resolveDate(in.AppointmentDate)
	if err != nil {
		return nil, err
	}

	e, err := s.queue.Enqueue(ctx, &model.QueueEntry{
		ID:              uuid.New().String(),
		HospitalID:      in.HospitalID,
		DonorID:         in.DonorID,
		AppointmentDate: day,
		Status:          model.QueueWaiting,
		CreatedAt:       s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	return &EnqueueResult{QueueEntry: e, QueueNumber: e.QueueNumber}, nil
}

func (s *queueService) UpdateStatus(ctx context.Context, id, status string) (*model.QueueEntry, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	if !queueStatuses[status] {
		return nil, ErrInvalidStatus
	}

	var checkIn, completed *time.Time
	now := s.now().UTC()
	switch status {
	case model.QueueInProgress:
		checkIn = &now
	case model.QueueCompleted:
		completed = &now
	}

	e, err := s.queue.UpdateStatus(ctx, id, status, checkIn, completed)
	if err != nil {
		return nil, notFound("queue entry", err)
	}
	return e, nil
}
