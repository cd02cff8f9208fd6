package app

import (
	"os"
	"strconv"

	"staffcore/internal/attendance"
	"staffcore/internal/company"
	"staffcore/internal/department"
	"staffcore/internal/employee"
	"staffcore/internal/messaging/kafka"
	"staffcore/internal/middleware"
	"staffcore/internal/payroll"
	"staffcore/internal/position"
	"staffcore/internal/salaryrule"
	"staffcore/internal/shared/counter"
	"staffcore/internal/taxbracket"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&company.Company{},
		&department.Department{},
		&position.Position{},
		&employee.Employee{},
		&attendance.Attendance{},
		&salaryrule.SalaryRule{},
		&salaryrule.RuleAssignment{},
		&taxbracket.TaxBracket{},
		&payroll.PayrollPeriod{},
		&payroll.Payslip{},
		&counter.CompanyCounter{},
		&kafka.OutboxEvent{},
	)
}

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	if err := autoMigrate(db); err != nil {
		return err
	}

	// --- Repositories ---
	companyRepo := company.NewRepository(db)
	departmentRepo := department.NewRepository(db)
	positionRepo := position.NewRepository(db)
	employeeRepo := employee.NewRepository(db)
	attendanceRepo := attendance.NewRepository(db)
	salaryRuleRepo := salaryrule.NewRepository(db)
	taxBracketRepo := taxbracket.NewRepository(db)
	payrollRepo := payroll.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)
	counterRepo := counter.NewRepository(db)

	// --- Services ---
	companyService := company.NewService(companyRepo)
	departmentService := department.NewService(departmentRepo)
	positionService := position.NewService(positionRepo)
	employeeService := employee.NewService(employeeRepo)
	attendanceService := attendance.NewService(attendanceRepo)
	salaryRuleService := salaryrule.NewService(salaryRuleRepo)
	taxBracketService := taxbracket.NewService(taxBracketRepo)

	calculator := payroll.NewCalculator(attendanceRepo, salaryRuleRepo, taxBracketRepo)
	payrollService := payroll.NewService(db, payrollRepo, employeeRepo, calculator, outboxRepo, counterRepo)

	workers, _ := strconv.Atoi(os.Getenv("PAYROLL_WORKERS"))
	processor := payroll.NewProcessor(employeeRepo, payrollRepo, payrollService, outboxRepo, workers)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	departmentHandler := department.NewHandler(departmentService)
	positionHandler := position.NewHandler(positionService)
	employeeHandler := employee.NewHandler(employeeService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	salaryRuleHandler := salaryrule.NewHandler(salaryRuleService)
	taxBracketHandler := taxbracket.NewHandler(taxBracketService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, processor, rdb)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(
		middleware.ContextLogger(zap.L()),
		middleware.ResolveTenant(companyService),
	)
	{
		company.RegisterRoutes(api, companyHandler)
		department.RegisterRoutes(api, departmentHandler)
		position.RegisterRoutes(api, positionHandler)
		employee.RegisterRoutes(api, employeeHandler)
		attendance.RegisterRoutes(api, attendanceHandler)
		salaryrule.RegisterRoutes(api, salaryRuleHandler)
		taxbracket.RegisterRoutes(api, taxBracketHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
	}

	return nil
}
