package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bwbackbone/internal/database"
	"bwbackbone/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "backbone.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM qc_events")
	db.Exec("DELETE FROM time_punches")
	db.Exec("DELETE FROM operations")
	db.Exec("DELETE FROM parts")
	db.Exec("DELETE FROM jobs")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM staff")
	db.Exec("DELETE FROM customers")

	log.Println("Creating staff...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	admin := domain.Staff{
		ID:         uuid.NewString(),
		Email:      "admin@bwcoatings.example",
		FirstName:  "Pat",
		LastName:   "Walsh",
		EmployeeID: "EMP-001",
		PinHash:    string(adminHash),
		Roles:      []domain.StaffRole{domain.RoleAdmin},
		Status:     domain.StaffActive,
		HourlyRate: 0,
	}
	db.Create(&admin)
	log.Println("Admin created: EMP-001 / 1234")

	operators := []struct {
		first, last, emp string
		rate             float64
	}{
		{"Dana", "Ruiz", "EMP-014", 24.5},
		{"Marcus", "Lee", "EMP-015", 22.0},
		{"Ira", "Volkov", "EMP-016", 26.0},
	}
	for _, o := range operators {
		hash, _ := bcrypt.GenerateFromPassword([]byte("4821"), bcrypt.DefaultCost)
		db.Create(&domain.Staff{
			ID:         uuid.NewString(),
			Email:      o.first + "@bwcoatings.example",
			FirstName:  o.first,
			LastName:   o.last,
			EmployeeID: o.emp,
			PinHash:    string(hash),
			Roles:      []domain.StaffRole{domain.RoleOperator},
			Department: "finishing",
			Status:     domain.StaffActive,
			HourlyRate: o.rate,
		})
	}

	qaHash, _ := bcrypt.GenerateFromPassword([]byte("4821"), bcrypt.DefaultCost)
	db.Create(&domain.Staff{
		ID:         uuid.NewString(),
		Email:      "quinn@bwcoatings.example",
		FirstName:  "Quinn",
		LastName:   "Meyer",
		EmployeeID: "EMP-020",
		PinHash:    string(qaHash),
		Roles:      []domain.StaffRole{domain.RoleQA, domain.RoleManager},
		Status:     domain.StaffActive,
		HourlyRate: 30,
	})

	log.Println("Creating customers...")

	ridgeline := domain.Customer{
		ID:           uuid.NewString(),
		CompanyName:  "Ridgeline Fabrication",
		ContactName:  "Sam Porter",
		Email:        "sam@ridgelinefab.example",
		Phone:        "555-0100",
		PaymentTerms: "net30",
	}
	db.Create(&ridgeline)
	db.Create(&domain.Customer{
		ID:          uuid.NewString(),
		CompanyName: "Harbor Marine Supply",
		ContactName: "Lee Chang",
		Email:       "lee@harbormarine.example",
		Phone:       "555-0142",
	})

	log.Println("Creating a demo job...")

	now := time.Now().UTC()
	jobID := uuid.NewString()
	db.Create(&domain.Job{
		ID:          jobID,
		JobNumber:   "BW2608-0001",
		CustomerID:  ridgeline.ID,
		Description: "Handrail sections, satin black",
		Status:      domain.JobEstimate,
		Priority:    domain.PriorityStandard,
		DueDate:     ptrTime(now.AddDate(0, 0, 14)),
		CreatedBy:   admin.ID,
	})
	partID := uuid.NewString()
	db.Create(&domain.Part{
		ID:         partID,
		JobID:      jobID,
		PartName:   "Handrail section",
		Quantity:   12,
		FinishType: "powder satin black",
	})
	for i, opType := range []domain.OperationType{domain.OpSandblast, domain.OpPowderCoat, domain.OpCure} {
		db.Create(&domain.Operation{
			ID:               uuid.NewString(),
			PartID:           partID,
			Sequence:         i + 1,
			OperationType:    opType,
			Status:           domain.OperationPending,
			EstimatedMinutes: ptrInt(45),
		})
	}

	log.Println("Creating equipment...")

	db.Create(&domain.Equipment{
		ID:              uuid.NewString(),
		EquipmentName:   "Cure Oven 2",
		EquipmentType:   "oven",
		MeterType:       domain.MeterHours,
		CurrentMeter:    ptrFloat(4800),
		ServiceInterval: ptrFloat(1000),
		NextServiceDue:  ptrFloat(5000),
		Status:          domain.EquipmentOperational,
	})
	db.Create(&domain.Equipment{
		ID:            uuid.NewString(),
		EquipmentName: "Blast Cabinet",
		EquipmentType: "blast",
		MeterType:     domain.MeterNone,
		Status:        domain.EquipmentOperational,
	})

	log.Println("Seed complete.")
}

func ptrTime(t time.Time) *time.Time { return &t }
func ptrFloat(f float64) *float64    { return &f }
func ptrInt(i int) *int              { return &i }
