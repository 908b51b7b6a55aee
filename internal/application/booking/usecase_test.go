package booking_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malithvisio/magcin-api/internal/application/booking"
	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

// ─────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: reservas, paquetes y cuentas. El filtrado por scope se
// reduce a comparar RootUserID, suficiente para el contrato del caso de uso.
// ─────────────────────────────────────────────────────────────────────────────

type memBookings struct {
	items map[string]*entity.Booking
}

func newMemBookings() *memBookings {
	return &memBookings{items: map[string]*entity.Booking{}}
}

func (m *memBookings) Create(_ context.Context, b *entity.Booking) error {
	cp := *b
	m.items[b.ID] = &cp
	return nil
}

func (m *memBookings) GetByID(_ context.Context, scope domain.Scope, id string) (*entity.Booking, error) {
	b, ok := m.items[id]
	if !ok || b.RootUserID != scope.RootUserID() {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (m *memBookings) GetByBookingCode(_ context.Context, scope domain.Scope, code string) (*entity.Booking, error) {
	for _, b := range m.items {
		if b.BookingID == code && b.RootUserID == scope.RootUserID() {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memBookings) List(_ context.Context, scope domain.Scope, status string, _, _ int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range m.items {
		if b.RootUserID != scope.RootUserID() {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memBookings) Update(_ context.Context, scope domain.Scope, b *entity.Booking) error {
	cur, ok := m.items[b.ID]
	if !ok || cur.RootUserID != scope.RootUserID() {
		return domain.ErrNotFound
	}
	cp := *b
	m.items[b.ID] = &cp
	return nil
}

func (m *memBookings) Delete(_ context.Context, scope domain.Scope, id string) error {
	cur, ok := m.items[id]
	if !ok || cur.RootUserID != scope.RootUserID() {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type stubPackages struct {
	repository.PackageRepository
	pkgs map[string]*entity.TourPackage
}

func (s *stubPackages) GetByID(_ context.Context, scope domain.Scope, id string) (*entity.TourPackage, error) {
	p, ok := s.pkgs[id]
	if !ok || p.RootUserID != scope.RootUserID() {
		return nil, nil
	}
	return p, nil
}

type stubUsers struct {
	repository.UserRepository
	users map[string]*entity.User
}

func (s *stubUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	return s.users[id], nil
}

type stubVoucher struct {
	last booking.VoucherData
}

func (s *stubVoucher) GenerateVoucher(data booking.VoucherData) ([]byte, error) {
	s.last = data
	return []byte("%PDF-fake"), nil
}

func fixture() (*booking.UseCase, *memBookings, *stubVoucher) {
	bookings := newMemBookings()
	packages := &stubPackages{pkgs: map[string]*entity.TourPackage{
		"pkg-1": {
			ID:         "pkg-1",
			RootUserID: "root-1",
			Name:       "Eje Cafetero 4 días",
			Price:      decimal.RequireFromString("350.00"),
			Published:  true,
		},
		"pkg-draft": {
			ID:         "pkg-draft",
			RootUserID: "root-1",
			Published:  false,
		},
	}}
	users := &stubUsers{users: map[string]*entity.User{
		"root-1": {
			ID:         "root-1",
			Name:       "Magcin Tours",
			Role:       domain.RoleRootUser,
			IsRootUser: true,
			IsActive:   true,
		},
	}}
	voucher := &stubVoucher{}
	return booking.NewUseCase(bookings, packages, users, voucher), bookings, voucher
}

func rootCtx() domain.TenantContext {
	return domain.TenantContext{
		UserID:     "root-1",
		RootUserID: "root-1",
		Role:       domain.RoleRootUser,
		Plan:       domain.PlanFree,
	}
}

func createReq() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		PackageID:     "pkg-1",
		RootUserID:    "root-1",
		CustomerName:  "Laura Gómez",
		CustomerEmail: "laura@example.com",
		TravelDate:    time.Date(2026, 11, 15, 0, 0, 0, 0, time.UTC),
		GuestCount:    3,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Create (alta pública)
// ─────────────────────────────────────────────────────────────────────────────

// El total es precio del paquete por número de huéspedes, el código tiene
// forma BK-XXXXXXXX y la reserva nace pending/pending.
func TestCreate_ReservaPublica(t *testing.T) {
	uc, _, _ := fixture()

	resp, err := uc.Create(context.Background(), createReq())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^BK-[0-9A-F]{8}$`), resp.BookingID)
	assert.True(t, resp.TotalAmount.Equal(decimal.RequireFromString("1050.00")),
		"350.00 x 3 huéspedes, got %s", resp.TotalAmount)
	assert.Equal(t, entity.BookingPending, resp.Status)
	assert.Equal(t, entity.PaymentPending, resp.PaymentStatus)
}

func TestCreate_CamposObligatorios(t *testing.T) {
	uc, _, _ := fixture()

	in := createReq()
	in.CustomerEmail = ""
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = createReq()
	in.GuestCount = 0
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Un paquete en borrador no es reservable desde el sitio público.
func TestCreate_PaqueteNoPublicado(t *testing.T) {
	uc, _, _ := fixture()

	in := createReq()
	in.PackageID = "pkg-draft"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// El paquete debe pertenecer al root user indicado en la URL pública.
func TestCreate_PaqueteDeOtroTenant(t *testing.T) {
	uc, _, _ := fixture()

	in := createReq()
	in.RootUserID = "root-2"
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transiciones de estado
// ─────────────────────────────────────────────────────────────────────────────

func TestUpdateStatus_TransicionValida(t *testing.T) {
	uc, _, _ := fixture()
	created, err := uc.Create(context.Background(), createReq())
	require.NoError(t, err)

	resp, err := uc.UpdateStatus(context.Background(), rootCtx(), created.ID, entity.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingConfirmed, resp.Status)
}

// Salir de un estado terminal devuelve ErrConflict, no un 404 ni un 400.
func TestUpdateStatus_TransicionIlegal_Conflict(t *testing.T) {
	uc, _, _ := fixture()
	created, err := uc.Create(context.Background(), createReq())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), rootCtx(), created.ID, entity.BookingCancelled)
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), rootCtx(), created.ID, entity.BookingConfirmed)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateStatus_EstadoDesconocido(t *testing.T) {
	uc, _, _ := fixture()
	created, err := uc.Create(context.Background(), createReq())
	require.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), rootCtx(), created.ID, "archivada")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_MemberSinPermiso(t *testing.T) {
	uc, _, _ := fixture()
	created, err := uc.Create(context.Background(), createReq())
	require.NoError(t, err)

	member := rootCtx()
	member.UserID = "member-1"
	member.Role = domain.RoleMember
	_, err = uc.UpdateStatus(context.Background(), member, created.ID, entity.BookingConfirmed)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Una reserva de otro tenant es invisible: (nil, nil), el handler la convierte
// en 404.
func TestUpdateStatus_OtroTenant_Invisible(t *testing.T) {
	uc, _, _ := fixture()
	created, err := uc.Create(context.Background(), createReq())
	require.NoError(t, err)

	other := rootCtx()
	other.UserID = "root-2"
	other.RootUserID = "root-2"
	resp, err := uc.UpdateStatus(context.Background(), other, created.ID, entity.BookingConfirmed)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

// ─────────────────────────────────────────────────────────────────────────────
// Voucher
// ─────────────────────────────────────────────────────────────────────────────

func TestVoucher_DatosCompletos(t *testing.T) {
	uc, _, voucher := fixture()
	created, err := uc.Create(context.Background(), createReq())
	require.NoError(t, err)

	pdf, err := uc.Voucher(context.Background(), rootCtx(), created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	assert.Equal(t, created.BookingID, voucher.last.BookingCode)
	assert.Equal(t, "Magcin Tours", voucher.last.SiteName)
	assert.Equal(t, "Eje Cafetero 4 días", voucher.last.PackageName)
	assert.Equal(t, 3, voucher.last.GuestCount)
}

func TestVoucher_ReservaInexistente(t *testing.T) {
	uc, _, _ := fixture()

	_, err := uc.Voucher(context.Background(), rootCtx(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
