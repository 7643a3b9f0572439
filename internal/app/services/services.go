package services

import (
	"collegereminders/internal/app/deps"
	drl "collegereminders/internal/core/domain/rate_limiter"
	"collegereminders/internal/core/services"
	"collegereminders/internal/core/services/auth"
	changepassword "collegereminders/internal/core/services/change_password"
	createbasereminder "collegereminders/internal/core/services/create_base_reminder"
	createcategory "collegereminders/internal/core/services/create_category"
	createschool "collegereminders/internal/core/services/create_school"
	createtestdate "collegereminders/internal/core/services/create_test_date"
	createtesttype "collegereminders/internal/core/services/create_test_type"
	createtimeframe "collegereminders/internal/core/services/create_timeframe"
	deleteschool "collegereminders/internal/core/services/delete_school"
	generatereminders "collegereminders/internal/core/services/generate_reminders"
	getuserbysessiontoken "collegereminders/internal/core/services/get_user_by_session_token"
	listbasereminders "collegereminders/internal/core/services/list_base_reminders"
	listcategories "collegereminders/internal/core/services/list_categories"
	listtestdates "collegereminders/internal/core/services/list_test_dates"
	listtimeframes "collegereminders/internal/core/services/list_timeframes"
	listuserschools "collegereminders/internal/core/services/list_user_schools"
	loginwithemail "collegereminders/internal/core/services/log_in_with_email"
	logout "collegereminders/internal/core/services/log_out"
	ratelimiting "collegereminders/internal/core/services/rate_limiting"
	scheduledigests "collegereminders/internal/core/services/schedule_digests"
	senddigest "collegereminders/internal/core/services/send_digest"
	signupwithemail "collegereminders/internal/core/services/sign_up_with_email"
	updateschool "collegereminders/internal/core/services/update_school"
	updateuser "collegereminders/internal/core/services/update_user"
)

type Services struct {
	SignUpWithEmail       services.Service[signupwithemail.Input, signupwithemail.Result]
	LogInWithEmail        services.Service[loginwithemail.Input, loginwithemail.Result]
	LogOut                services.Service[logout.Input, logout.Result]
	GetUserBySessionToken services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	UpdateUser            services.Service[updateuser.Input, updateuser.Result]
	ChangePassword        services.Service[changepassword.Input, changepassword.Result]

	CreateSchool    services.Service[createschool.Input, createschool.Result]
	ListUserSchools services.Service[listuserschools.Input, listuserschools.Result]
	UpdateSchool    services.Service[updateschool.Input, updateschool.Result]
	DeleteSchool    services.Service[deleteschool.Input, deleteschool.Result]

	CreateCategory     services.Service[createcategory.Input, createcategory.Result]
	ListCategories     services.Service[listcategories.Input, listcategories.Result]
	CreateTimeframe    services.Service[createtimeframe.Input, createtimeframe.Result]
	ListTimeframes     services.Service[listtimeframes.Input, listtimeframes.Result]
	CreateBaseReminder services.Service[createbasereminder.Input, createbasereminder.Result]
	ListBaseReminders  services.Service[listbasereminders.Input, listbasereminders.Result]
	CreateTestType     services.Service[createtesttype.Input, createtesttype.Result]
	CreateTestDate     services.Service[createtestdate.Input, createtestdate.Result]
	ListTestDates      services.Service[listtestdates.Input, listtestdates.Result]

	// GenerateReminders resolves the user from the session token.
	// ScheduleDigests uses its own unauthenticated instance.
	GenerateReminders services.Service[generatereminders.Input, generatereminders.Result]
	ScheduleDigests   services.Service[scheduledigests.Input, scheduledigests.Result]
	SendDigest        services.Service[senddigest.Input, senddigest.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUpWithEmail = signupwithemail.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.UserSessionTokenGenerator,
		deps.Now,
	)
	s.LogInWithEmail = ratelimiting.WithRateLimiting(
		deps.Logger,
		deps.RateLimiter,
		drl.Limit{Interval: drl.Hour, Value: 10},
		loginwithemail.New(
			deps.Logger,
			deps.UserRepository,
			deps.SessionRepository,
			deps.PasswordHasher,
			deps.UserSessionTokenGenerator,
			deps.Now,
		),
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.UpdateUser = auth.WithAuthentication(
		deps.SessionRepository,
		updateuser.New(
			deps.Logger,
			deps.UserRepository,
		),
	)
	s.ChangePassword = auth.WithAuthentication(
		deps.SessionRepository,
		changepassword.New(
			deps.Logger,
			deps.UserRepository,
			deps.PasswordHasher,
		),
	)

	s.CreateSchool = auth.WithAuthentication(
		deps.SessionRepository,
		createschool.New(
			deps.Logger,
			deps.SchoolRepository,
			deps.Now,
		),
	)
	s.ListUserSchools = auth.WithAuthentication(
		deps.SessionRepository,
		listuserschools.New(
			deps.Logger,
			deps.SchoolRepository,
		),
	)
	s.UpdateSchool = auth.WithAuthentication(
		deps.SessionRepository,
		updateschool.New(
			deps.Logger,
			deps.SchoolRepository,
		),
	)
	s.DeleteSchool = auth.WithAuthentication(
		deps.SessionRepository,
		deleteschool.New(
			deps.Logger,
			deps.SchoolRepository,
		),
	)

	s.CreateCategory = auth.WithAuthentication(
		deps.SessionRepository,
		createcategory.New(
			deps.Logger,
			deps.CategoryRepository,
		),
	)
	s.ListCategories = listcategories.New(
		deps.Logger,
		deps.CategoryRepository,
	)
	s.CreateTimeframe = auth.WithAuthentication(
		deps.SessionRepository,
		createtimeframe.New(
			deps.Logger,
			deps.TimeframeRepository,
		),
	)
	s.ListTimeframes = listtimeframes.New(
		deps.Logger,
		deps.TimeframeRepository,
	)
	s.CreateBaseReminder = auth.WithAuthentication(
		deps.SessionRepository,
		createbasereminder.New(
			deps.Logger,
			deps.UnitOfWork,
			deps.CategoryRepository,
		),
	)
	s.ListBaseReminders = listbasereminders.New(
		deps.Logger,
		deps.BaseReminderRepository,
	)
	s.CreateTestType = auth.WithAuthentication(
		deps.SessionRepository,
		createtesttype.New(
			deps.Logger,
			deps.TestDateRepository,
		),
	)
	s.CreateTestDate = auth.WithAuthentication(
		deps.SessionRepository,
		createtestdate.New(
			deps.Logger,
			deps.TestDateRepository,
		),
	)
	s.ListTestDates = listtestdates.New(
		deps.Logger,
		deps.TestDateRepository,
		deps.Now,
	)

	generateReminders := generatereminders.New(
		deps.Logger,
		deps.SchoolRepository,
		deps.BaseReminderRepository,
		deps.TestDateRepository,
		deps.Now,
	)
	s.GenerateReminders = auth.WithAuthentication(deps.SessionRepository, generateReminders)
	s.ScheduleDigests = scheduledigests.New(
		deps.Logger,
		deps.UserRepository,
		generateReminders,
		deps.DigestPublisher,
		deps.Now,
	)
	s.SendDigest = senddigest.New(
		deps.Logger,
		deps.UserRepository,
		deps.SMSSender,
		deps.EmailSender,
	)

	return s
}
