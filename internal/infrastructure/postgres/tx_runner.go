package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/malithvisio/magcin-api/internal/application/usecase"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner corre un callback dentro de una transacción de pgx, con todos los
// repositorios atados a la misma tx. Rollback automático si fn o el commit
// fallan.
type TxRunner struct {
	pool *pgxpool.Pool
}

func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

func (t *TxRunner) Run(ctx context.Context, fn func(usecase.TxRepos) error) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	repos := usecase.TxRepos{
		Users:        NewUserRepository(tx),
		Packages:     NewPackageRepository(tx),
		Destinations: NewDestinationRepository(tx),
		Activities:   NewActivityRepository(tx),
		Blogs:        NewBlogRepository(tx),
		Testimonials: NewTestimonialRepository(tx),
		Team:         NewTeamRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
