package models

import (
	"time"

	"gorm.io/gorm"
)

// Cita status values
const (
	EstadoPendiente = "pendiente"
	EstadoAtendida  = "atendida"
	EstadoCancelada = "cancelada"
)

// Role names (seeded at startup)
const (
	RolPaciente  = "ROLE_PACIENTE"
	RolPsicologo = "ROLE_PSICOLOGO"
	RolAdmin     = "ROLE_ADMIN"
)

// Rol represents roles table
type Rol struct {
	ID     uint   `gorm:"primaryKey;column:id_rol" json:"idRol"`
	Nombre string `gorm:"uniqueIndex;size:30;not null" json:"nombre"`
}

func (Rol) TableName() string {
	return "roles"
}

// Usuario represents usuarios table (login identity).
// The hashed credential lives here and only here.
type Usuario struct {
	ID        uint      `gorm:"primaryKey;column:id_usuario" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Dni       string    `gorm:"size:8" json:"dni"`
	Roles     []Rol     `gorm:"many2many:usuario_roles" json:"roles"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Usuario) TableName() string {
	return "usuarios"
}

// RolNames returns the role names of the usuario
func (u *Usuario) RolNames() []string {
	names := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		names[i] = r.Nombre
	}
	return names
}

// UsuarioResponse DTO
type UsuarioResponse struct {
	ID    uint     `json:"id"`
	Email string   `json:"email"`
	Dni   string   `json:"dni"`
	Roles []string `json:"roles"`
}

func (u *Usuario) ToResponse() *UsuarioResponse {
	return &UsuarioResponse{
		ID:    u.ID,
		Email: u.Email,
		Dni:   u.Dni,
		Roles: u.RolNames(),
	}
}

// Paciente represents pacientes table
type Paciente struct {
	ID              uint      `gorm:"primaryKey;column:id_paciente" json:"idPaciente"`
	Nombre          string    `gorm:"size:100;not null" json:"nombre"`
	Apellido        string    `gorm:"size:100;not null" json:"apellido"`
	Dni             string    `gorm:"uniqueIndex;size:8;not null" json:"dni"`
	FechaNacimiento time.Time `gorm:"type:date;not null" json:"fechaNacimiento"`
	Genero          string    `gorm:"size:20" json:"genero"`
	Distrito        string    `gorm:"size:100" json:"distrito"`
	Direccion       string    `gorm:"size:200" json:"direccion"`
	Telefono        string    `gorm:"uniqueIndex;size:9;not null" json:"telefono"`
	Email           string    `gorm:"size:100;not null" json:"email"`
	Activo          bool      `gorm:"default:true" json:"activo"`
	UsuarioID       uint      `gorm:"uniqueIndex;not null" json:"-"`
	Usuario         Usuario   `gorm:"foreignKey:UsuarioID" json:"usuario"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Paciente) TableName() string {
	return "pacientes"
}

// PacienteResponse DTO
type PacienteResponse struct {
	ID              uint   `json:"idPaciente"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Dni             string `json:"dni"`
	FechaNacimiento string `json:"fechaNacimiento"`
	Genero          string `json:"genero"`
	Distrito        string `json:"distrito"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	Activo          bool   `json:"activo"`
}

func (p *Paciente) ToResponse() *PacienteResponse {
	return &PacienteResponse{
		ID:              p.ID,
		Nombre:          p.Nombre,
		Apellido:        p.Apellido,
		Dni:             p.Dni,
		FechaNacimiento: p.FechaNacimiento.Format("2006-01-02"),
		Genero:          p.Genero,
		Distrito:        p.Distrito,
		Direccion:       p.Direccion,
		Telefono:        p.Telefono,
		Email:           p.Email,
		Activo:          p.Activo,
	}
}

// Psicologo represents psicologos table (reference data, read-only here)
type Psicologo struct {
	ID        uint      `gorm:"primaryKey;column:id_psicologo" json:"idPsicologo"`
	Nombre    string    `gorm:"size:100;not null" json:"nombre"`
	Apellido  string    `gorm:"size:100;not null" json:"apellido"`
	Dni       string    `gorm:"uniqueIndex;size:8" json:"dni"`
	Genero    string    `gorm:"size:20" json:"genero"`
	Telefono  string    `gorm:"size:9" json:"telefono"`
	Email     string    `gorm:"size:100" json:"email"`
	Activo    bool      `gorm:"default:true" json:"activo"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Psicologo) TableName() string {
	return "psicologos"
}

// Especialidad represents especialidades table (reference data, read-only here)
type Especialidad struct {
	ID        uint   `gorm:"primaryKey;column:id_especialidad" json:"idEspecialidad"`
	Nombre    string `gorm:"uniqueIndex;size:100;not null" json:"nombre"`
	Categoria string `gorm:"size:100" json:"categoria"`
	Activo    bool   `gorm:"default:true" json:"activo"`
}

func (Especialidad) TableName() string {
	return "especialidades"
}

// Cita represents citas table
type Cita struct {
	ID             uint         `gorm:"primaryKey;column:id_cita" json:"idCita"`
	Codigo         uint64       `gorm:"not null" json:"codigo"`
	PacienteID     uint         `gorm:"not null" json:"-"`
	Paciente       Paciente     `gorm:"foreignKey:PacienteID" json:"paciente"`
	PsicologoID    uint         `gorm:"not null" json:"-"`
	Psicologo      Psicologo    `gorm:"foreignKey:PsicologoID" json:"psicologo"`
	EspecialidadID uint         `gorm:"not null" json:"-"`
	Especialidad   Especialidad `gorm:"foreignKey:EspecialidadID" json:"especialidad"`
	Hora           string       `gorm:"size:5;not null" json:"hora"`
	Precio         float64      `gorm:"type:decimal(10,2);not null" json:"precio"`
	Descripcion    string       `gorm:"type:text;not null" json:"descripcion"`
	Estado         string       `gorm:"size:20;not null;default:'pendiente'" json:"estado"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (Cita) TableName() string {
	return "citas"
}

// CitaResponse DTO
type CitaResponse struct {
	ID           uint              `json:"idCita"`
	Codigo       uint64            `json:"codigo"`
	Paciente     *PacienteResponse `json:"paciente"`
	Psicologo    *Psicologo        `json:"psicologo"`
	Especialidad *Especialidad     `json:"especialidad"`
	Hora         string            `json:"hora"`
	Precio       float64           `json:"precio"`
	Descripcion  string            `json:"descripcion"`
	Estado       string            `json:"estado"`
}

func (c *Cita) ToResponse() *CitaResponse {
	return &CitaResponse{
		ID:           c.ID,
		Codigo:       c.Codigo,
		Paciente:     c.Paciente.ToResponse(),
		Psicologo:    &c.Psicologo,
		Especialidad: &c.Especialidad,
		Hora:         c.Hora,
		Precio:       c.Precio,
		Descripcion:  c.Descripcion,
		Estado:       c.Estado,
	}
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UsuarioID uint       `gorm:"index;not null" json:"usuario_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	Usuario   Usuario    `gorm:"foreignKey:UsuarioID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// AutoMigrate creates/updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Rol{},
		&Usuario{},
		&Paciente{},
		&Psicologo{},
		&Especialidad{},
		&Cita{},
		&RefreshToken{},
	)
}
