// Package booking contiene los casos de uso de reservas: alta pública,
// gestión de estados desde el admin y voucher PDF.
package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/malithvisio/magcin-api/internal/application/dto"
	"github.com/malithvisio/magcin-api/internal/domain"
	"github.com/malithvisio/magcin-api/internal/domain/entity"
	"github.com/malithvisio/magcin-api/internal/domain/repository"
)

// UseCase casos de uso de reservas.
type UseCase struct {
	bookings repository.BookingRepository
	packages repository.PackageRepository
	users    repository.UserRepository
	voucher  VoucherGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(bookings repository.BookingRepository, packages repository.PackageRepository, users repository.UserRepository, voucher VoucherGenerator) *UseCase {
	return &UseCase{bookings: bookings, packages: packages, users: users, voucher: voucher}
}

// newBookingCode genera el código humano globalmente único, ej: BK-4F7A21C9.
func newBookingCode() string {
	raw := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "BK-" + strings.ToUpper(raw[:8])
}

// Create alta pública de una reserva. El tenant sale del paquete referido y
// de la cuenta root dueña del sitio; nada del body fija el scope.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	if in.PackageID == "" || in.RootUserID == "" || in.CustomerName == "" || in.CustomerEmail == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.GuestCount < 1 {
		return nil, domain.ErrInvalidInput
	}
	pkg, err := uc.packages.GetByID(ctx, domain.ScopeForRoot(in.RootUserID), in.PackageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil || !pkg.Published {
		return nil, domain.ErrNotFound
	}
	owner, err := uc.users.GetByID(ctx, in.RootUserID)
	if err != nil {
		return nil, err
	}
	if owner == nil || !owner.IsRootUser || !owner.IsActive {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	b := &entity.Booking{
		ID:            uuid.New().String(),
		BookingID:     newBookingCode(),
		RootUserID:    owner.ID,
		CompanyID:     owner.CompanyID,
		TenantID:      owner.TenantID,
		PackageID:     pkg.ID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		TravelDate:    in.TravelDate,
		GuestCount:    in.GuestCount,
		TotalAmount:   pkg.Price.Mul(decimal.NewFromInt(int64(in.GuestCount))),
		Status:        entity.BookingPending,
		PaymentStatus: entity.PaymentPending,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return toBookingResponse(b), nil
}

// GetByID obtiene una reserva dentro del scope del caller.
func (uc *UseCase) GetByID(ctx context.Context, tc domain.TenantContext, id string) (*dto.BookingResponse, error) {
	b, err := uc.bookings.GetByID(ctx, domain.ScopeFromContext(tc), id)
	if err != nil {
		return nil, err
	}
	return toBookingResponse(b), nil
}

// List lista reservas del tenant, con filtro opcional por estado.
func (uc *UseCase) List(ctx context.Context, tc domain.TenantContext, status string, limit, offset int) (*dto.BookingListResponse, error) {
	if status != "" && !entity.ValidBookingStatus(status) {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.bookings.List(ctx, domain.ScopeFromContext(tc), status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BookingResponse, 0, len(list))
	for _, b := range list {
		items = append(items, *toBookingResponse(b))
	}
	return &dto.BookingListResponse{Items: items, Page: dto.PageResponse{Limit: limit, Offset: offset}}, nil
}

// UpdateStatus aplica una transición de estado. Las ilegales (salir de un
// estado terminal, saltos no previstos) devuelven ErrConflict.
func (uc *UseCase) UpdateStatus(ctx context.Context, tc domain.TenantContext, id, next string) (*dto.BookingResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidBookingStatus(next) {
		return nil, domain.ErrInvalidInput
	}
	scope := domain.ScopeFromContext(tc)
	b, err := uc.bookings.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	if !b.CanTransition(next) {
		return nil, domain.ErrConflict
	}
	b.Status = next
	b.UpdatedAt = time.Now()
	if err := uc.bookings.Update(ctx, scope, b); err != nil {
		return nil, err
	}
	return toBookingResponse(b), nil
}

// UpdatePaymentStatus cambia el estado de pago.
func (uc *UseCase) UpdatePaymentStatus(ctx context.Context, tc domain.TenantContext, id, next string) (*dto.BookingResponse, error) {
	if !tc.CanManageContent() {
		return nil, domain.ErrForbidden
	}
	if !entity.ValidPaymentStatus(next) {
		return nil, domain.ErrInvalidInput
	}
	scope := domain.ScopeFromContext(tc)
	b, err := uc.bookings.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, nil
	}
	b.PaymentStatus = next
	b.UpdatedAt = time.Now()
	if err := uc.bookings.Update(ctx, scope, b); err != nil {
		return nil, err
	}
	return toBookingResponse(b), nil
}

// Delete elimina una reserva del tenant.
func (uc *UseCase) Delete(ctx context.Context, tc domain.TenantContext, id string) error {
	if !tc.CanManageContent() {
		return domain.ErrForbidden
	}
	return uc.bookings.Delete(ctx, domain.ScopeFromContext(tc), id)
}

// Voucher genera el PDF de confirmación de una reserva del tenant.
func (uc *UseCase) Voucher(ctx context.Context, tc domain.TenantContext, id string) ([]byte, error) {
	scope := domain.ScopeFromContext(tc)
	b, err := uc.bookings.GetByID(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	pkg, err := uc.packages.GetByID(ctx, domain.ScopeForRoot(b.RootUserID), b.PackageID)
	if err != nil {
		return nil, err
	}
	pkgName := ""
	if pkg != nil {
		pkgName = pkg.Name
	}
	owner, err := uc.users.GetByID(ctx, b.RootUserID)
	if err != nil {
		return nil, err
	}
	siteName := ""
	if owner != nil {
		siteName = owner.Name
	}
	return uc.voucher.GenerateVoucher(VoucherData{
		BookingCode:   b.BookingID,
		SiteName:      siteName,
		PackageName:   pkgName,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		TravelDate:    b.TravelDate,
		GuestCount:    b.GuestCount,
		TotalAmount:   b.TotalAmount,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		IssuedAt:      time.Now(),
	})
}

func toBookingResponse(b *entity.Booking) *dto.BookingResponse {
	if b == nil {
		return nil
	}
	return &dto.BookingResponse{
		ID:            b.ID,
		BookingID:     b.BookingID,
		PackageID:     b.PackageID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		CustomerPhone: b.CustomerPhone,
		TravelDate:    b.TravelDate,
		GuestCount:    b.GuestCount,
		TotalAmount:   b.TotalAmount,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
