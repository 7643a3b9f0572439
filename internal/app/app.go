package app

import (
	"collegereminders/internal/app/deps"
	"collegereminders/internal/app/services"
	"collegereminders/internal/http/handlers/auth"
	loginwithemail "collegereminders/internal/http/handlers/auth/log_in_with_email"
	logout "collegereminders/internal/http/handlers/auth/log_out"
	signupwithemail "collegereminders/internal/http/handlers/auth/sign_up_with_email"
	createbasereminder "collegereminders/internal/http/handlers/catalogue/create_base_reminder"
	createcategory "collegereminders/internal/http/handlers/catalogue/create_category"
	createtestdate "collegereminders/internal/http/handlers/catalogue/create_test_date"
	createtesttype "collegereminders/internal/http/handlers/catalogue/create_test_type"
	createtimeframe "collegereminders/internal/http/handlers/catalogue/create_timeframe"
	listbasereminders "collegereminders/internal/http/handlers/catalogue/list_base_reminders"
	listcategories "collegereminders/internal/http/handlers/catalogue/list_categories"
	listtestdates "collegereminders/internal/http/handlers/catalogue/list_test_dates"
	listtimeframes "collegereminders/internal/http/handlers/catalogue/list_timeframes"
	generatereminders "collegereminders/internal/http/handlers/reminders/generate_reminders"
	createschool "collegereminders/internal/http/handlers/schools/create_school"
	deleteschool "collegereminders/internal/http/handlers/schools/delete_school"
	listuserschools "collegereminders/internal/http/handlers/schools/list_user_schools"
	updateschool "collegereminders/internal/http/handlers/schools/update_school"
	changepassword "collegereminders/internal/http/handlers/user/change_password"
	"collegereminders/internal/http/handlers/user/me"
	updateuser "collegereminders/internal/http/handlers/user/update_user"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signupwithemail.New(s.SignUpWithEmail))
	authRouter.Method(http.MethodPost, "/login", loginwithemail.New(s.LogInWithEmail))
	authRouter.Method(http.MethodPost, "/logout", logout.New(s.LogOut))

	profileRouter := chi.NewRouter()
	profileRouter.Method(http.MethodGet, "/me", me.New(s.GetUserBySessionToken))
	profileRouter.Method(http.MethodPatch, "/me", updateuser.New(s.UpdateUser))
	profileRouter.Method(http.MethodPut, "/password", changepassword.New(s.ChangePassword))

	schoolRouter := chi.NewRouter()
	schoolRouter.Method(http.MethodGet, "/", listuserschools.New(s.ListUserSchools))
	schoolRouter.Method(http.MethodPost, "/", createschool.New(s.CreateSchool))
	schoolRouter.Method(http.MethodPatch, "/{schoolID:[0-9]+}", updateschool.New(s.UpdateSchool))
	schoolRouter.Method(http.MethodDelete, "/{schoolID:[0-9]+}", deleteschool.New(s.DeleteSchool))

	reminderRouter := chi.NewRouter()
	reminderRouter.Method(http.MethodGet, "/", generatereminders.New(s.GenerateReminders))

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	router.Use(auth.SetAuthTokenToContext)
	router.Mount("/auth", authRouter)
	router.Mount("/profile", profileRouter)
	router.Mount("/schools", schoolRouter)
	router.Mount("/reminders", reminderRouter)

	// Catalogue reads are public, writes require an admin session.
	router.Method(http.MethodGet, "/categories", listcategories.New(s.ListCategories))
	router.Method(http.MethodPost, "/categories", createcategory.New(s.CreateCategory))
	router.Method(http.MethodGet, "/timeframes", listtimeframes.New(s.ListTimeframes))
	router.Method(http.MethodPost, "/timeframes", createtimeframe.New(s.CreateTimeframe))
	router.Method(http.MethodGet, "/base_reminders", listbasereminders.New(s.ListBaseReminders))
	router.Method(http.MethodPost, "/base_reminders", createbasereminder.New(s.CreateBaseReminder))
	router.Method(http.MethodPost, "/tests", createtesttype.New(s.CreateTestType))
	router.Method(http.MethodGet, "/test_dates", listtestdates.New(s.ListTestDates))
	router.Method(http.MethodPost, "/test_dates", createtestdate.New(s.CreateTestDate))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           router,
		Addr:              address,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
