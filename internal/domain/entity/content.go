package entity

import "time"

// Destination destino turístico del catálogo.
type Destination struct {
	ID          string
	RootUserID  string
	Name        string
	Slug        string
	Country     string
	Description string
	Images      []string
	Published   bool
	Highlighted bool
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Dificultades válidas para Activity.
const (
	DifficultyEasy     = "easy"
	DifficultyModerate = "moderate"
	DifficultyHard     = "hard"
)

// Activity actividad ofrecida dentro de los tours (caminata, rafting, etc.).
type Activity struct {
	ID          string
	RootUserID  string
	Name        string
	Slug        string
	Description string
	Duration    string // texto libre: "4 horas", "día completo"
	Difficulty  string
	Published   bool
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Blog entrada del blog del sitio público.
type Blog struct {
	ID          string
	RootUserID  string
	Title       string
	Slug        string
	Author      string
	Content     string
	Tags        []string
	Published   bool
	PublishedAt *time.Time // nil mientras sea borrador
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Testimonial reseña de un cliente, opcionalmente ligada a un paquete.
type Testimonial struct {
	ID         string
	RootUserID string
	Author     string
	PackageID  string // opcional
	Rating     int    // 1..5
	Body       string
	Published  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TeamMember integrante del equipo mostrado en el sitio.
type TeamMember struct {
	ID         string
	RootUserID string
	Name       string
	RoleTitle  string
	Bio        string
	Photo      string
	Published  bool
	Position   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Category agrupa paquetes; no está sujeta a cuota pero sí al scope.
type Category struct {
	ID         string
	RootUserID string
	Name       string
	Slug       string
	Position   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
