package service

import (
	"context"
	"fmt"
	"time"

	"hospital-operations-api/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	// Redis key prefix for the monthly bill sequence
	billSeqKeyPrefix = "bill:seq:"

	// Counters outlive their month slightly so late writes still sequence
	billSeqTTL = 45 * 24 * time.Hour

	seqSyncTimeout = 5 * time.Second
)

// BillSequenceService issues monotonic per-month bill sequence numbers.
//
// The original count-then-format scheme raced under concurrent bill
// creation; here Redis INCR is the single atomic source of the next
// number. At startup the counter is seeded from Postgres so a flushed
// Redis resumes where the store left off; SETNX keeps a live counter
// from being clobbered.
type BillSequenceService struct {
	db          *gorm.DB
	redisClient *redis.Client
	log         *logrus.Logger
	billRepo    repository.BillRepository
}

func NewBillSequenceService(
	db *gorm.DB,
	redisClient *redis.Client,
	log *logrus.Logger,
	billRepo repository.BillRepository,
) *BillSequenceService {
	return &BillSequenceService{
		db:          db,
		redisClient: redisClient,
		log:         log,
		billRepo:    billRepo,
	}
}

// SyncFromDatabase seeds the current month's counter from the bill
// count in Postgres. Called once at startup.
func (s *BillSequenceService) SyncFromDatabase(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, seqSyncTimeout)
	defer cancel()

	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	count, err := s.billRepo.CountCreatedBetween(s.db.WithContext(ctx), from, to)
	if err != nil {
		return fmt.Errorf("failed to count bills for sequence seed: %w", err)
	}

	key := s.key(now)
	set, err := s.redisClient.SetNX(ctx, key, count, billSeqTTL).Result()
	if err != nil {
		return fmt.Errorf("failed to seed bill sequence: %w", err)
	}
	if set {
		s.log.Infof("Bill sequence %s seeded at %d", key, count)
	}
	return nil
}

// Next atomically reserves the next sequence number for the month of now
func (s *BillSequenceService) Next(ctx context.Context, now time.Time) (int64, error) {
	key := s.key(now)
	seq, err := s.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if seq == 1 {
		// First number of a fresh month: give the counter its TTL
		if err := s.redisClient.Expire(ctx, key, billSeqTTL).Err(); err != nil {
			s.log.Warnf("Failed to set TTL on %s (non-fatal): %+v", key, err)
		}
	}
	return seq, nil
}

func (s *BillSequenceService) key(t time.Time) string {
	return billSeqKeyPrefix + t.UTC().Format("0601")
}

// FormatBillNumber renders a sequence number as BILL-YYMM-NNNN
func FormatBillNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("BILL-%s-%04d", t.UTC().Format("0601"), seq)
}
