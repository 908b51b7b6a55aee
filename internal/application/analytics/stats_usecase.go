// Package analytics contiene los casos de uso de reportes del dashboard:
// agregados de reservas y contenido, y el feed de actividad reciente.
package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

const recentFeedSize = 10 // tamaño fijo del feed de actividad reciente

// StatsUseCase genera el resumen del dashboard para un root user.
//
// Fuente de datos: StatsRepository (consultas read-only alcanzadas por
// root_user_id). No accede directo a las tablas; delega todo en el repo.
type StatsUseCase struct {
	statsRepo repository.StatsRepository
}

// NewStatsUseCase construye el caso de uso.
func NewStatsUseCase(statsRepo repository.StatsRepository) *StatsUseCase {
	return &StatsUseCase{statsRepo: statsRepo}
}

// GetStats construye el DashboardStatsDTO del root user. Dos consultas en
// paralelo (agregados de reservas y conteos de contenido). Un tenant sin
// datos recibe todos los campos en cero: el repo usa COALESCE y aquí se
// poblan los kinds faltantes.
func (uc *StatsUseCase) GetStats(ctx context.Context, rootUserID string) (*dto.DashboardStatsDTO, error) {
	type bookingResult struct {
		stats repository.BookingStats
		err   error
	}
	type contentResult struct {
		counts []repository.ContentCount
		err    error
	}

	bookingCh := make(chan bookingResult, 1)
	contentCh := make(chan contentResult, 1)

	go func() {
		s, err := uc.statsRepo.GetBookingStats(ctx, rootUserID)
		bookingCh <- bookingResult{s, err}
	}()
	go func() {
		c, err := uc.statsRepo.GetContentCounts(ctx, rootUserID)
		contentCh <- contentResult{c, err}
	}()

	booking := <-bookingCh
	content := <-contentCh

	if booking.err != nil {
		return nil, fmt.Errorf("stats: agregados de reservas: %w", booking.err)
	}
	if content.err != nil {
		return nil, fmt.Errorf("stats: conteos de contenido: %w", content.err)
	}

	// Forma fija: todos los kinds presentes aunque no tengan filas.
	byKind := make(map[domain.ResourceKind]repository.ContentCount, len(content.counts))
	for _, c := range content.counts {
		byKind[c.Kind] = c
	}
	counts := make([]dto.ContentCountDTO, 0, len(domain.AllKinds()))
	for _, kind := range domain.AllKinds() {
		c := byKind[kind]
		counts = append(counts, dto.ContentCountDTO{
			Kind:      string(kind),
			Total:     c.Total,
			Published: c.Published,
			Draft:     c.Draft,
		})
	}

	return &dto.DashboardStatsDTO{
		TotalBookings:     booking.stats.TotalBookings,
		TotalRevenue:      booking.stats.TotalRevenue,
		PendingBookings:   booking.stats.PendingBookings,
		ConfirmedBookings: booking.stats.ConfirmedBookings,
		CompletedBookings: booking.stats.CompletedBookings,
		CancelledBookings: booking.stats.CancelledBookings,
		PaidBookings:      booking.stats.PaidBookings,
		PendingPayments:   booking.stats.PendingPayments,
		ContentCounts:     counts,
	}, nil
}

// RecentActivity arma el feed de actividad: top-N por kind consultado en
// paralelo, mezclado, reordenado por recencia y truncado a 10.
func (uc *StatsUseCase) RecentActivity(ctx context.Context, rootUserID string) (*dto.RecentActivityDTO, error) {
	type result struct {
		items []repository.RecentItem
		err   error
	}

	kinds := domain.AllKinds()
	ch := make(chan result, len(kinds)+1)
	for _, kind := range kinds {
		k := kind
		go func() {
			items, err := uc.statsRepo.GetRecentContent(ctx, rootUserID, k, recentFeedSize)
			ch <- result{items, err}
		}()
	}
	go func() {
		items, err := uc.statsRepo.GetRecentBookings(ctx, rootUserID, recentFeedSize)
		ch <- result{items, err}
	}()

	var merged []repository.RecentItem
	for i := 0; i < len(kinds)+1; i++ {
		r := <-ch
		if r.err != nil {
			return nil, fmt.Errorf("stats: actividad reciente: %w", r.err)
		}
		merged = append(merged, r.items...)
	}

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > recentFeedSize {
		merged = merged[:recentFeedSize]
	}

	items := make([]dto.RecentItemDTO, 0, len(merged))
	for _, it := range merged {
		items = append(items, dto.RecentItemDTO{
			Kind:      it.Kind,
			ID:        it.ID,
			Title:     it.Title,
			CreatedAt: it.CreatedAt,
		})
	}
	return &dto.RecentActivityDTO{Items: items}, nil
}
