package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/asfiqazi/expense-tracker/internal/analytics"
	"github.com/asfiqazi/expense-tracker/internal/auth"
	"github.com/asfiqazi/expense-tracker/internal/category"
	"github.com/asfiqazi/expense-tracker/internal/expense"
	"github.com/asfiqazi/expense-tracker/internal/reports"
)

type Router struct {
	AuthHandler      *auth.Handler
	CategoryHandler  *category.Handler
	ExpenseHandler   *expense.Handler
	AnalyticsHandler *analytics.Handler
	ReportsHandler   *reports.Handler
	AuthMW           fiber.Handler
}

func (r *Router) RegisterRoutes(app *fiber.App) {
	authLimit := RateLimitAuth()
	writeLimit := RateLimitWrite()

	app.Post("/api/auth/signup", authLimit, r.AuthHandler.Signup)
	app.Post("/api/auth/signin", authLimit, r.AuthHandler.Signin)

	app.Post("/api/categories", r.AuthMW, writeLimit, r.CategoryHandler.CreateCategory)
	app.Get("/api/categories", r.AuthMW, r.CategoryHandler.ListCategories)

	app.Post("/api/expenses", r.AuthMW, writeLimit, r.ExpenseHandler.CreateExpense)
	app.Get("/api/expenses", r.AuthMW, r.ExpenseHandler.ListExpenses)

	// Registered before /api/expenses/:id so "analytics" and "report" are not
	// captured as ids.
	app.Get("/api/expenses/analytics", r.AuthMW, r.AnalyticsHandler.GetAnalytics)
	app.Get("/api/expenses/report", r.AuthMW, r.ReportsHandler.SpendReport)

	app.Get("/api/expenses/:id", r.AuthMW, r.ExpenseHandler.GetExpense)
	app.Patch("/api/expenses/:id", r.AuthMW, writeLimit, r.ExpenseHandler.UpdateExpense)
	app.Delete("/api/expenses/:id", r.AuthMW, writeLimit, r.ExpenseHandler.DeleteExpense)
}
