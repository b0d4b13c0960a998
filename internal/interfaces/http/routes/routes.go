package routes

import (
	"os"

	"github.com/aarlint/wokeometer-api/internal/application/usecases"
	"github.com/aarlint/wokeometer-api/internal/domain/repositories"
	"github.com/aarlint/wokeometer-api/internal/infrastructure/tmdb"
	"github.com/aarlint/wokeometer-api/internal/interfaces/http/handlers"
	"github.com/aarlint/wokeometer-api/internal/interfaces/http/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Add performance middleware
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	// Add ETag support for efficient caching
	app.Use(etag.New())

	// Auth middleware resolves the caller identity on every request; reads
	// stay open, routes that mutate additionally require an identity.
	app.Use(middleware.NewAuthMiddleware(os.Getenv("SUPABASE_JWT_SECRET")))
	requireIdentity := middleware.RequireIdentity

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Repositories
	assessmentRepo := repositories.NewAssessmentRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	// Collaborators
	tmdbClient := tmdb.NewClient()

	// Use Cases
	assessmentUseCase := usecases.NewAssessmentUseCase(assessmentRepo)
	aggregateUseCase := usecases.NewAggregateUseCase(assessmentRepo)
	commentUseCase := usecases.NewCommentUseCase(commentRepo)
	searchUseCase := usecases.NewSearchUseCase(tmdbClient)
	transferUseCase := usecases.NewTransferUseCase(assessmentRepo)

	// Handlers
	assessmentHandler := handlers.NewAssessmentHandler(assessmentUseCase, aggregateUseCase)
	commentHandler := handlers.NewCommentHandler(commentUseCase)
	searchHandler := handlers.NewSearchHandler(searchUseCase)
	catalogHandler := handlers.NewCatalogHandler()
	transferHandler := handlers.NewTransferHandler(transferUseCase)

	// Catalog routes
	app.Get("/catalog", catalogHandler.GetCatalog)
	app.Get("/catalog/legacy", catalogHandler.GetLegacyCatalog)

	// Assessment routes ("mine" before ":id" so the literal path wins)
	app.Get("/assessments", assessmentHandler.GetAssessments)
	app.Get("/assessments/mine", requireIdentity, assessmentHandler.GetMyAssessments)
	app.Get("/assessments/:id", assessmentHandler.GetAssessment)
	app.Post("/assessments", requireIdentity, assessmentHandler.CreateAssessment)
	app.Put("/assessments/:id", requireIdentity, assessmentHandler.UpdateAssessment)
	app.Delete("/assessments/:id", requireIdentity, assessmentHandler.DeleteAssessment)

	// Aggregation routes
	app.Get("/titles/:title/aggregate", assessmentHandler.GetTitleAggregate)

	// Search routes
	app.Get("/search", searchHandler.SearchTitles)

	// Comment routes
	app.Get("/comments", commentHandler.GetComments)
	app.Post("/comments", requireIdentity, commentHandler.CreateComment)
	app.Delete("/comments/:id", requireIdentity, commentHandler.DeleteComment)

	// Export/import routes
	app.Get("/export/mine", requireIdentity, transferHandler.ExportAssessments)
	app.Post("/import", requireIdentity, transferHandler.ImportAssessments)
}
