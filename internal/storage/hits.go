package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/amaumene/appredirect/internal/domain"
	"github.com/timshannon/bolthold"
	bolt "go.etcd.io/bbolt"
)

// RedirectHit is the persisted counter for one app/environment pair.
type RedirectHit struct {
	AppName     string `boltholdIndex:"AppName"`
	Environment string
	Count       int64
	LastSeen    time.Time
}

type hitRepository struct {
	store *bolthold.Store
}

func NewHitRepository(store *bolthold.Store) domain.HitRepository {
	return &hitRepository{store: store}
}

func (r *hitRepository) Record(ctx context.Context, appName, environment string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := appName + "/" + environment

	// Read-modify-write inside one transaction so concurrent redirects
	// for the same pair never lose increments.
	return r.store.Bolt().Update(func(tx *bolt.Tx) error {
		var hit RedirectHit
		err := r.store.TxGet(tx, key, &hit)
		if err != nil && err != bolthold.ErrNotFound {
			return fmt.Errorf("getting hit counter: %w", err)
		}

		hit.AppName = appName
		hit.Environment = environment
		hit.Count++
		hit.LastSeen = time.Now()

		if err := r.store.TxUpsert(tx, key, &hit); err != nil {
			return fmt.Errorf("upserting hit counter: %w", err)
		}
		return nil
	})
}

func (r *hitRepository) Summaries(ctx context.Context) ([]domain.HitSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var hits []RedirectHit
	err := r.store.Find(&hits, bolthold.Where("AppName").Ne("").SortBy("AppName", "Environment"))
	if err != nil {
		return nil, fmt.Errorf("finding hit counters: %w", err)
	}

	summaries := make([]domain.HitSummary, 0, len(hits))
	for _, hit := range hits {
		summaries = append(summaries, domain.HitSummary{
			AppName:     hit.AppName,
			Environment: hit.Environment,
			Count:       hit.Count,
			LastSeen:    hit.LastSeen,
		})
	}
	return summaries, nil
}
