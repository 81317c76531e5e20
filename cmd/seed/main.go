package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"pulso/internal/infra"
	"pulso/internal/models/db_models"
)

// Seeds a demo tenant with a roster, one active climate survey and a
// batch of in-window responses so the dashboard has data to show.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	db := infra.InitPostgresql()
	defer infra.ClosePostgresql(db)

	if err := infra.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	tenant := seedTenant(db)
	employees := seedEmployees(db, tenant)
	survey := seedSurvey(db, tenant)
	seedResponses(db, survey, employees)

	log.Println("Seed complete.")
}

func seedTenant(db *gorm.DB) *db_models.Tenant {
	var tenant db_models.Tenant
	err := db.First(&tenant, "clerk_org_id = ?", "org_demo_123").Error
	if err == nil {
		log.Printf("organization: %s (%s)", tenant.Name, tenant.ID)
		return &tenant
	}

	tenant = db_models.Tenant{ClerkOrgID: "org_demo_123", Name: "Demo Company"}
	if err := db.Create(&tenant).Error; err != nil {
		log.Fatalf("creating tenant: %v", err)
	}
	log.Printf("created organization: %s (%s)", tenant.Name, tenant.ID)
	return &tenant
}

func seedEmployees(db *gorm.DB, tenant *db_models.Tenant) []db_models.Employee {
	var count int64
	db.Model(&db_models.Employee{}).Where("company_id = ?", tenant.ID).Count(&count)

	if count >= 5 {
		log.Printf("found %d employees, skipping creation", count)
		var existing []db_models.Employee
		db.Where("company_id = ?", tenant.ID).Find(&existing)
		return existing
	}

	departments := []string{"Tecnologia", "Vendas", "RH", "Operações"}
	employees := make([]db_models.Employee, 0, 20)

	log.Println("creating 20 employees...")
	for i := 0; i < 20; i++ {
		email := fmt.Sprintf("employee%d@demo.com", i+1)
		dept := departments[rand.Intn(len(departments))]
		employee := db_models.Employee{
			CompanyID:  tenant.ID,
			FullName:   fmt.Sprintf("Employee %d", i+1),
			Email:      &email,
			Department: &dept,
		}
		if err := db.Create(&employee).Error; err != nil {
			log.Fatalf("creating employee: %v", err)
		}
		employees = append(employees, employee)
	}
	return employees
}

func seedSurvey(db *gorm.DB, tenant *db_models.Tenant) *db_models.Survey {
	var existing db_models.Survey
	err := db.Preload("Questions").
		First(&existing, "company_id = ? AND title = ?", tenant.ID, "Pesquisa de Clima Q1 2026").Error
	if err == nil {
		log.Println("survey already exists, skipping creation")
		return &existing
	}

	survey := db_models.Survey{
		CompanyID: tenant.ID,
		Title:     "Pesquisa de Clima Q1 2026",
		Status:    db_models.SurveyStatusActive,
		Questions: []db_models.Question{
			{
				Text:  "Em uma escala de 0 a 10, o quanto você recomendaria a empresa como um bom lugar para trabalhar?",
				Type:  db_models.QuestionTypeRating,
				Order: 1,
			},
			{
				Text:  "Como você avalia o ambiente de trabalho?",
				Type:  db_models.QuestionTypeRating,
				Order: 2,
			},
			{
				Text:  "Você sente que tem as ferramentas necessárias para realizar seu trabalho?",
				Type:  db_models.QuestionTypeBoolean,
				Order: 3,
			},
			{
				Text:  "O que poderíamos melhorar?",
				Type:  db_models.QuestionTypeText,
				Order: 4,
			},
		},
	}
	if err := db.Create(&survey).Error; err != nil {
		log.Fatalf("creating survey: %v", err)
	}
	log.Printf("created survey %s", survey.ID)
	return &survey
}

func seedResponses(db *gorm.DB, survey *db_models.Survey, employees []db_models.Employee) {
	comments := []string{
		"Mais comunicação entre os times.",
		"Gostaria de mais flexibilidade de horário.",
		"Tudo ótimo por aqui!",
		"Melhorar o onboarding de novos colaboradores.",
	}

	created := 0
	for i, employee := range employees {
		// Roughly three quarters of the roster responds.
		if i%4 == 3 {
			continue
		}

		var count int64
		db.Model(&db_models.SurveyResponse{}).
			Where("survey_id = ? AND employee_id = ?", survey.ID, employee.ID).
			Count(&count)
		if count > 0 {
			continue
		}

		answers := make([]db_models.SurveyAnswer, 0, len(survey.Questions))
		for _, q := range survey.Questions {
			answer := db_models.SurveyAnswer{QuestionID: q.ID}
			switch q.Type {
			case db_models.QuestionTypeRating:
				value := float64(5 + rand.Intn(6)) // lean positive, 5-10
				answer.ValueNumber = &value
			case db_models.QuestionTypeBoolean:
				value := rand.Intn(4) > 0
				answer.ValueBoolean = &value
			default:
				comment := comments[rand.Intn(len(comments))]
				answer.ValueString = &comment
			}
			answers = append(answers, answer)
		}

		response := db_models.SurveyResponse{
			SurveyID:    survey.ID,
			EmployeeID:  employee.ID,
			SubmittedAt: time.Now().UTC().AddDate(0, 0, -rand.Intn(25)),
			Answers:     answers,
		}
		if err := db.Create(&response).Error; err != nil {
			log.Fatalf("creating response: %v", err)
		}
		created++
	}

	log.Printf("created %d responses", created)
}
