package analytics_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malithvisio/magcin-api/internal/application/analytics"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fake de StatsRepository: respuestas enlatadas por root user.
// ─────────────────────────────────────────────────────────────────────────────

type fakeStatsRepo struct {
	bookingStats repository.BookingStats
	counts       []repository.ContentCount
	recent       map[domain.ResourceKind][]repository.RecentItem
	bookings     []repository.RecentItem
	err          error
}

func (f *fakeStatsRepo) GetBookingStats(_ context.Context, _ string) (repository.BookingStats, error) {
	return f.bookingStats, f.err
}

func (f *fakeStatsRepo) GetContentCounts(_ context.Context, _ string) ([]repository.ContentCount, error) {
	return f.counts, f.err
}

func (f *fakeStatsRepo) GetRecentContent(_ context.Context, _ string, kind domain.ResourceKind, limit int) ([]repository.RecentItem, error) {
	items := f.recent[kind]
	if len(items) > limit {
		items = items[:limit]
	}
	return items, f.err
}

func (f *fakeStatsRepo) GetRecentBookings(_ context.Context, _ string, limit int) ([]repository.RecentItem, error) {
	items := f.bookings
	if len(items) > limit {
		items = items[:limit]
	}
	return items, f.err
}

// ─────────────────────────────────────────────────────────────────────────────
// GetStats
// ─────────────────────────────────────────────────────────────────────────────

// Un tenant sin datos recibe el DTO completo en cero: todos los kinds
// presentes, nunca un mapa parcial.
func TestGetStats_TenantVacio_FormaFijaEnCero(t *testing.T) {
	uc := analytics.NewStatsUseCase(&fakeStatsRepo{})

	stats, err := uc.GetStats(context.Background(), "root-1")
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalBookings)
	assert.True(t, stats.TotalRevenue.IsZero())
	require.Len(t, stats.ContentCounts, len(domain.AllKinds()))
	for _, c := range stats.ContentCounts {
		assert.Equal(t, 0, c.Total, "kind %s", c.Kind)
		assert.Equal(t, 0, c.Published, "kind %s", c.Kind)
		assert.Equal(t, 0, c.Draft, "kind %s", c.Kind)
	}
}

// Los conteos que el repo sí devuelve se colocan en su kind y el resto
// queda en cero.
func TestGetStats_ConteosParciales(t *testing.T) {
	repo := &fakeStatsRepo{
		bookingStats: repository.BookingStats{
			TotalBookings:     7,
			TotalRevenue:      decimal.RequireFromString("1250.50"),
			PendingBookings:   2,
			ConfirmedBookings: 3,
			CompletedBookings: 1,
			CancelledBookings: 1,
			PaidBookings:      4,
			PendingPayments:   3,
		},
		counts: []repository.ContentCount{
			{Kind: domain.KindPackages, Total: 5, Published: 3, Draft: 2},
			{Kind: domain.KindBlogs, Total: 2, Published: 2},
		},
	}
	uc := analytics.NewStatsUseCase(repo)

	stats, err := uc.GetStats(context.Background(), "root-1")
	require.NoError(t, err)

	assert.Equal(t, 7, stats.TotalBookings)
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("1250.50")))
	assert.Equal(t, 2, stats.PendingBookings)
	assert.Equal(t, 4, stats.PaidBookings)

	byKind := make(map[string][3]int)
	for _, c := range stats.ContentCounts {
		byKind[c.Kind] = [3]int{c.Total, c.Published, c.Draft}
	}
	assert.Equal(t, [3]int{5, 3, 2}, byKind[string(domain.KindPackages)])
	assert.Equal(t, [3]int{2, 2, 0}, byKind[string(domain.KindBlogs)])
	assert.Equal(t, [3]int{0, 0, 0}, byKind[string(domain.KindDestinations)])
}

func TestGetStats_ErrorDelRepo(t *testing.T) {
	uc := analytics.NewStatsUseCase(&fakeStatsRepo{err: errors.New("conexión caída")})

	_, err := uc.GetStats(context.Background(), "root-1")
	assert.Error(t, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// RecentActivity
// ─────────────────────────────────────────────────────────────────────────────

func item(kind, id string, minutesAgo int) repository.RecentItem {
	return repository.RecentItem{
		Kind:      kind,
		ID:        id,
		Title:     id,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).Add(-time.Duration(minutesAgo) * time.Minute),
	}
}

// El feed mezcla contenido y reservas, ordena por recencia y trunca a 10.
func TestRecentActivity_MezclaYTrunca(t *testing.T) {
	repo := &fakeStatsRepo{
		recent: map[domain.ResourceKind][]repository.RecentItem{
			domain.KindPackages: {
				item("packages", "pkg-a", 1),
				item("packages", "pkg-b", 30),
				item("packages", "pkg-c", 60),
				item("packages", "pkg-d", 90),
			},
			domain.KindBlogs: {
				item("blogs", "blog-a", 5),
				item("blogs", "blog-b", 45),
				item("blogs", "blog-c", 120),
			},
			domain.KindDestinations: {
				item("destinations", "dest-a", 10),
				item("destinations", "dest-b", 50),
			},
		},
		bookings: []repository.RecentItem{
			item("bookings", "bk-a", 2),
			item("bookings", "bk-b", 20),
			item("bookings", "bk-c", 200),
		},
	}
	uc := analytics.NewStatsUseCase(repo)

	feed, err := uc.RecentActivity(context.Background(), "root-1")
	require.NoError(t, err)

	// 12 elementos en total, el feed conserva los 10 más recientes.
	require.Len(t, feed.Items, 10)
	for i := 1; i < len(feed.Items); i++ {
		assert.False(t, feed.Items[i].CreatedAt.After(feed.Items[i-1].CreatedAt),
			"el feed debe ir de más reciente a más antiguo")
	}
	assert.Equal(t, "pkg-a", feed.Items[0].ID)
	assert.Equal(t, "bk-a", feed.Items[1].ID)

	// Los dos más antiguos quedan fuera.
	ids := make(map[string]bool)
	for _, it := range feed.Items {
		ids[it.ID] = true
	}
	assert.False(t, ids["bk-c"])
	assert.False(t, ids["blog-c"])
}

func TestRecentActivity_TenantVacio(t *testing.T) {
	uc := analytics.NewStatsUseCase(&fakeStatsRepo{})

	feed, err := uc.RecentActivity(context.Background(), "root-1")
	require.NoError(t, err)
	assert.Empty(t, feed.Items)
}

func TestRecentActivity_ErrorDelRepo(t *testing.T) {
	uc := analytics.NewStatsUseCase(&fakeStatsRepo{err: errors.New("timeout")})

	_, err := uc.RecentActivity(context.Background(), "root-1")
	assert.Error(t, err)
}
