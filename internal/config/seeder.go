package config

import (
	"errors"
	"log"

	"psiconnect-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// SeedMasterData seeds roles and reference data. Roles are process-wide
// configuration: patient registration cannot work without ROLE_PACIENTE,
// so a seeding failure here is fatal at startup.
func SeedMasterData(db *gorm.DB) error {
	if err := seedRoles(db); err != nil {
		return err
	}

	if err := seedEspecialidades(db); err != nil {
		return err
	}

	if err := seedPsicologos(db); err != nil {
		return err
	}

	log.Println("✅ Master data seeded successfully")
	return nil
}

func seedRoles(db *gorm.DB) error {
	roles := []models.Rol{
		{Nombre: models.RolPaciente},
		{Nombre: models.RolPsicologo},
		{Nombre: models.RolAdmin},
	}

	for _, rol := range roles {
		var existing models.Rol
		if err := db.Where("nombre = ?", rol.Nombre).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := db.Create(&rol).Error; err != nil {
					return err
				}
				log.Printf("   Created rol: %s", rol.Nombre)
			} else {
				return err
			}
		}
	}
	return nil
}

func seedEspecialidades(db *gorm.DB) error {
	especialidades := []models.Especialidad{
		{Nombre: "Terapia Cognitivo-Conductual", Categoria: "Clínica", Activo: true},
		{Nombre: "Terapia de Pareja", Categoria: "Familiar", Activo: true},
		{Nombre: "Psicología Infantil", Categoria: "Infantil", Activo: true},
		{Nombre: "Terapia de Ansiedad", Categoria: "Clínica", Activo: true},
		{Nombre: "Orientación Vocacional", Categoria: "Educativa", Activo: true},
	}

	for _, esp := range especialidades {
		var existing models.Especialidad
		if err := db.Where("nombre = ?", esp.Nombre).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := db.Create(&esp).Error; err != nil {
					return err
				}
				log.Printf("   Created especialidad: %s", esp.Nombre)
			} else {
				return err
			}
		}
	}
	return nil
}

func seedPsicologos(db *gorm.DB) error {
	psicologos := []models.Psicologo{
		{Nombre: "María", Apellido: "Torres", Dni: "41256789", Genero: "Femenino", Telefono: "987654321", Email: "maria.torres@psiconnect.pe", Activo: true},
		{Nombre: "Jorge", Apellido: "Salazar", Dni: "40897123", Genero: "Masculino", Telefono: "912345678", Email: "jorge.salazar@psiconnect.pe", Activo: true},
	}

	for _, psi := range psicologos {
		var existing models.Psicologo
		if err := db.Where("dni = ?", psi.Dni).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := db.Create(&psi).Error; err != nil {
					return err
				}
				log.Printf("   Created psicologo: %s %s", psi.Nombre, psi.Apellido)
			} else {
				return err
			}
		}
	}
	return nil
}
