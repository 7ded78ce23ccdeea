package api

import (
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/docs"
	v1 "github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/handler/v1"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/api/middleware"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/config"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/qrimg"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/repository"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/repository/dao"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/schedule"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/service"
	"github.com/bos-com/BUGEMAUNIV-CAFETERIA-MANAGEMENT-SYSTEM/internal/storage"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB, sched *schedule.Schedule) (*Server, error) {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	images, err := storage.NewLocalStore(conf.Storage.ImageDir, conf.Storage.PublicBase)
	if err != nil {
		return nil, fmt.Errorf("storage.NewLocalStore -> %w", err)
	}

	authHandler := s.initAuthHandler(db)
	studentHandler := s.initStudentHandler(db, sched, images)
	scanHandler := s.initScanHandler(db)
	paymentHandler := s.initPaymentHandler(db)
	s.MountHandlers(images, authHandler, studentHandler, scanHandler, paymentHandler)

	return s, nil
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	students := repository.NewStudentRepository(dao.NewStudentDAO(db))
	staff := repository.NewStaffRepository(dao.NewStaffDAO(db))
	svc := service.NewAuthService(students, staff)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initStudentHandler(db *gorm.DB, sched *schedule.Schedule, images *storage.LocalStore) *v1.StudentHandler {
	students := repository.NewStudentRepository(dao.NewStudentDAO(db))
	creds := repository.NewCredentialRepository(dao.NewQRCodeDAO(db))
	mealLogs := repository.NewMealLogRepository(dao.NewMealLogDAO(db))
	payments := repository.NewPaymentRepository(dao.NewPaymentDAO(db))

	ledger := service.NewLedgerService(payments, mealLogs, students)
	credSvc := service.NewCredentialService(sched, students, creds, qrimg.NewRenderer(), images)
	handler := v1.NewStudentHandler(ledger, credSvc, s.Config.Meals.RefreshInterval)

	return handler
}

func (s *Server) initScanHandler(db *gorm.DB) *v1.ScanHandler {
	students := repository.NewStudentRepository(dao.NewStudentDAO(db))
	creds := repository.NewCredentialRepository(dao.NewQRCodeDAO(db))
	mealLogs := repository.NewMealLogRepository(dao.NewMealLogDAO(db))

	svc := service.NewRedemptionService(students, creds, mealLogs)
	handler := v1.NewScanHandler(svc)

	return handler
}

func (s *Server) initPaymentHandler(db *gorm.DB) *v1.PaymentHandler {
	students := repository.NewStudentRepository(dao.NewStudentDAO(db))
	mealLogs := repository.NewMealLogRepository(dao.NewMealLogDAO(db))
	payments := repository.NewPaymentRepository(dao.NewPaymentDAO(db))

	ledger := service.NewLedgerService(payments, mealLogs, students)
	handler := v1.NewPaymentHandler(ledger)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	images *storage.LocalStore,
	authHandler *v1.AuthHandler,
	studentHandler *v1.StudentHandler,
	scanHandler *v1.ScanHandler,
	paymentHandler *v1.PaymentHandler,
) {
	const basePath = "/api/v1"

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/login/student", authHandler.HandleStudentLogin)
		auth.POST("/auth/login/staff", authHandler.HandleStaffLogin)
	}

	students := s.Router.Group(basePath, verifyJWT)
	{
		students.GET("/students/:studentID/balance", studentHandler.HandleGetBalance)
		students.GET("/students/:studentID/meals", studentHandler.HandleGetMeals)
		students.GET("/students/:studentID/credential", studentHandler.HandleGetCredential)
		students.GET("/students/:studentID/credential/feed", studentHandler.HandleCredentialFeed)
	}

	scan := s.Router.Group(basePath, verifyJWT, middleware.RequireRole("staff", "admin"))
	{
		scan.POST("/scan", scanHandler.HandleScan)
	}

	admin := s.Router.Group(basePath, verifyJWT, middleware.RequireRole("admin"))
	{
		admin.POST("/students", authHandler.HandleEnrollStudent)
		admin.GET("/students", authHandler.HandleListStudents)
		admin.POST("/staff", authHandler.HandleCreateStaff)
		admin.POST("/payments", paymentHandler.HandleRecordPayment)
		admin.GET("/payments", paymentHandler.HandleListPayments)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Rendered QR images are served straight off disk.
	s.Router.Static(s.Config.Storage.PublicBase, images.Dir())

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Bugema University Cafeteria API"
	docs.SwaggerInfo.Description = "Meal credit tracking and QR meal redemption."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
