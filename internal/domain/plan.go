package domain

// ResourceKind enumeración cerrada de los tipos de contenido sujetos a cuota.
// Un string suelto ("packages", "blogs"...) entra al dominio solo vía
// ParseResourceKind, nunca directo de la request.
type ResourceKind string

const (
	KindPackages     ResourceKind = "packages"
	KindDestinations ResourceKind = "destinations"
	KindActivities   ResourceKind = "activities"
	KindBlogs        ResourceKind = "blogs"
	KindTeamMembers  ResourceKind = "teamMembers"
	KindTestimonials ResourceKind = "testimonials"
)

// AllKinds lista estable de los kinds con cuota (orden fijo para reportes).
func AllKinds() []ResourceKind {
	return []ResourceKind{
		KindPackages, KindDestinations, KindActivities,
		KindBlogs, KindTeamMembers, KindTestimonials,
	}
}

// ParseResourceKind valida un string contra la enumeración.
// Devuelve ErrUnknownKind si no corresponde a ningún kind conocido.
func ParseResourceKind(s string) (ResourceKind, error) {
	k := ResourceKind(s)
	switch k {
	case KindPackages, KindDestinations, KindActivities,
		KindBlogs, KindTeamMembers, KindTestimonials:
		return k, nil
	}
	return "", ErrUnknownKind
}

// SubscriptionPlan planes de suscripción disponibles.
type SubscriptionPlan string

const (
	PlanFree   SubscriptionPlan = "free"
	PlanPro    SubscriptionPlan = "pro"
	PlanProMax SubscriptionPlan = "pro_max"
)

// Unlimited sentinela: el plan no impone límite para el kind.
const Unlimited = -1

// PlanLimits límites por kind de un plan. Unlimited (-1) = sin límite.
type PlanLimits map[ResourceKind]int

// PlanTable tabla inmutable plan -> límites, inyectada al ledger de cuotas
// en su construcción para que los tests puedan sustituirla.
type PlanTable map[SubscriptionPlan]PlanLimits

// DefaultPlanTable devuelve la tabla de límites de producción.
// Se construye nueva en cada llamada para que nadie mute la compartida.
func DefaultPlanTable() PlanTable {
	return PlanTable{
		PlanFree: {
			KindPackages:     3,
			KindDestinations: 5,
			KindActivities:   10,
			KindBlogs:        5,
			KindTeamMembers:  2,
			KindTestimonials: 5,
		},
		PlanPro: {
			KindPackages:     15,
			KindDestinations: 15,
			KindActivities:   50,
			KindBlogs:        25,
			KindTeamMembers:  10,
			KindTestimonials: 20,
		},
		PlanProMax: {
			KindPackages:     Unlimited,
			KindDestinations: Unlimited,
			KindActivities:   Unlimited,
			KindBlogs:        Unlimited,
			KindTeamMembers:  Unlimited,
			KindTestimonials: Unlimited,
		},
	}
}

// Limit devuelve el límite del plan para el kind. Un plan desconocido cae al
// plan free (el más restrictivo); un kind sin entrada cuenta como 0.
func (t PlanTable) Limit(plan SubscriptionPlan, kind ResourceKind) int {
	limits, ok := t[plan]
	if !ok {
		limits = t[PlanFree]
	}
	return limits[kind]
}
