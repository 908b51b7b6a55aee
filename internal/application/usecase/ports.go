package usecase

import (
	"context"

	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

// TxRepos repositorios atados a una misma transacción. El incremento de
// cuota y el insert del contenido comparten tx para revertirse juntos.
type TxRepos struct {
	Users        repository.UserRepository
	Packages     repository.PackageRepository
	Destinations repository.DestinationRepository
	Activities   repository.ActivityRepository
	Blogs        repository.BlogRepository
	Testimonials repository.TestimonialRepository
	Team         repository.TeamRepository
}

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
type TxRunner interface {
	Run(ctx context.Context, fn func(TxRepos) error) error
}
