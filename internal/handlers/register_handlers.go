package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	portssvc "github.com/fintrackr/personal_finance_app/internal/core/ports/services"
	"github.com/fintrackr/personal_finance_app/internal/platform/config"
)

var monthKeyPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	RegisterCustomValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	RegisterTransactionRoutes(v1, services.Transaction)
	RegisterExpenseRoutes(v1, services.Expense)
	RegisterCategoryRoutes(v1, services.Category)
	RegisterAccountRoutes(v1, services.Account)
	RegisterAssetRoutes(v1, services.Asset)
	RegisterReportRoutes(v1, services.Reporting, services.Analysis)
}

// RegisterCustomValidators wires the `monthkey` binding tag used by the
// month-scoped query and path parameters.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("monthkey", func(fl validator.FieldLevel) bool {
			return monthKeyPattern.MatchString(fl.Field().String())
		})
	}
}
