package database

import (
	"log"

	"github.com/lib/pq"

	"satellite-recruit-backend/internal/model"
)

// defaultDepartments is the catalogue the site launches with. The seed runs
// once during process initialization, before any request is served.
func defaultDepartments() []model.Department {
	return []model.Department{
		{
			Name:        "Engineering",
			Description: "Design and build cutting-edge satellite hardware and systems that operate in the harsh conditions of space.",
			Icon:        "cogs",
			Color:       "#4D9DE0",
			Requirements: pq.StringArray{
				"Bachelor's degree in Aerospace/Mechanical Engineering",
				"Experience with CAD software",
				"Knowledge of spacecraft systems",
			},
			Responsibilities: pq.StringArray{
				"Design satellite components",
				"Test hardware performance",
				"Collaborate with interdisciplinary teams",
			},
		},
		{
			Name:        "Communications",
			Description: "Develop and maintain advanced communication systems that connect our satellites with ground stations.",
			Icon:        "satellite-dish",
			Color:       "#F46036",
			Requirements: pq.StringArray{
				"Degree in Electrical Engineering or related field",
				"RF communications experience",
				"Signal processing knowledge",
			},
			Responsibilities: pq.StringArray{
				"Design communication protocols",
				"Implement signal processing algorithms",
				"Maintain ground station links",
			},
		},
		{
			Name:        "Data Science",
			Description: "Analyze and interpret the vast amounts of data collected by our satellite systems for valuable insights.",
			Icon:        "chart-bar",
			Color:       "#7B5EA7",
			Requirements: pq.StringArray{
				"Statistics or Computer Science degree",
				"Experience with Python and data analysis",
				"Machine learning expertise",
			},
			Responsibilities: pq.StringArray{
				"Develop data processing pipelines",
				"Create ML models for satellite data",
				"Generate insights from collected data",
			},
		},
	}
}

// SeedDepartments inserts the default departments when the table is empty.
// The check-then-insert makes the bootstrap idempotent across restarts.
func (d *DBinstanceStruct) SeedDepartments() error {
	var count int64
	if err := d.Model(&model.Department{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	departments := defaultDepartments()
	if err := d.Create(&departments).Error; err != nil {
		return err
	}
	log.Printf("Seeded %d initial departments", len(departments))
	return nil
}
