package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	// ErrNotFound cubre tanto el recurso inexistente como el recurso de otro
	// tenant: ambos casos deben ser indistinguibles hacia afuera para no
	// revelar la existencia de datos ajenos.
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUnauthenticated    = errors.New("no autenticado")
	ErrAccountNotFound    = errors.New("cuenta no encontrada")
	ErrAccountInactive    = errors.New("cuenta inactiva")
	ErrTenantMismatch     = errors.New("la cuenta no pertenece a la empresa indicada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnknownKind        = errors.New("tipo de recurso desconocido")
)

// QuotaExceededError indica que el plan de suscripción no permite crear más
// recursos del tipo indicado. Lleva kind y plan para que la capa HTTP pueda
// armar un mensaje accionable (invitación a upgrade).
type QuotaExceededError struct {
	Kind ResourceKind
	Plan SubscriptionPlan
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("límite del plan %s alcanzado para %s", e.Plan, e.Kind)
}

// IsQuotaExceeded informa si err es un QuotaExceededError y lo devuelve.
func IsQuotaExceeded(err error) (*QuotaExceededError, bool) {
	var qe *QuotaExceededError
	if errors.As(err, &qe) {
		return qe, true
	}
	return nil, false
}
