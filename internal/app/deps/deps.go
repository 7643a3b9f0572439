package deps

import (
	"collegereminders/internal/config"
	"collegereminders/internal/core/domain/category"
	dl "collegereminders/internal/core/domain/logging"
	drl "collegereminders/internal/core/domain/rate_limiter"
	"collegereminders/internal/core/domain/reminder"
	"collegereminders/internal/core/domain/school"
	"collegereminders/internal/core/domain/testdate"
	"collegereminders/internal/core/domain/timeframe"
	duow "collegereminders/internal/core/domain/unit_of_work"
	"collegereminders/internal/core/domain/user"
	dbbasereminder "collegereminders/internal/db/base_reminder"
	dbcategory "collegereminders/internal/db/category"
	dbschool "collegereminders/internal/db/school"
	dbtestdate "collegereminders/internal/db/testdate"
	dbtimeframe "collegereminders/internal/db/timeframe"
	uow "collegereminders/internal/db/unit_of_work"
	dbuser "collegereminders/internal/db/user"
	digestsender "collegereminders/internal/implementations/digest_sender"
	"collegereminders/internal/implementations/logging"
	passwordhasher "collegereminders/internal/implementations/password_hasher"
	ratelimiter "collegereminders/internal/implementations/rate_limiter"
	"collegereminders/internal/implementations/session"
	"collegereminders/internal/rabbitmq"
	digestpublisher "collegereminders/internal/rabbitmq/publishers/digest_publisher"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
)

type Deps struct {
	Config    *config.Config
	AwsConfig aws.Config
	Logger    dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection

	Now func() time.Time

	UnitOfWork             duow.UnitOfWork
	UserRepository         user.UserRepository
	SessionRepository      user.SessionRepository
	SchoolRepository       school.Repository
	CategoryRepository     category.Repository
	TimeframeRepository    timeframe.Repository
	BaseReminderRepository reminder.Repository
	TestDateRepository     testdate.Repository

	RateLimiter drl.RateLimiter

	PasswordHasher            user.PasswordHasher
	UserSessionTokenGenerator user.SessionTokenGenerator

	DigestPublisher reminder.DigestPublisher
	SMSSender       reminder.SMSSender
	EmailSender     reminder.EmailSender
}

func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	deps.initAwsConfig()

	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.UserRepository = dbuser.NewPgxRepository(deps.DB)
	deps.SessionRepository = dbuser.NewPgxSessionRepository(deps.DB)
	deps.SchoolRepository = dbschool.NewPgxRepository(deps.DB)
	deps.CategoryRepository = dbcategory.NewPgxRepository(deps.DB)
	deps.TimeframeRepository = dbtimeframe.NewPgxRepository(deps.DB)
	deps.BaseReminderRepository = dbbasereminder.NewPgxRepository(deps.DB)
	deps.TestDateRepository = dbtestdate.NewPgxRepository(deps.DB)

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	deps.UserSessionTokenGenerator = session.NewUUID()

	closeDigestPublisher := deps.initRabbitmqDigestPublisher()

	deps.SMSSender = digestsender.NewTwilioSMSSender(
		deps.Config.TwilioAccountSid,
		deps.Config.TwilioAuthToken,
		deps.Config.TwilioFromNumber,
	)
	deps.EmailSender = digestsender.NewSESEmailSender(deps.AwsConfig, deps.Config.AwsEmailSender)

	flushSentry := deps.initSentry()

	return deps, func() {
		closeFuncs := []func(){
			closeDigestPublisher,
			closeRabbitmqConn,
			closeRedisClient,
			closePgxPool,
			closeLogger,
			flushSentry,
		}

		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initAwsConfig() {
	cfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(deps.Config.AwsRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				deps.Config.AwsAccessKey,
				deps.Config.AwsSecretKey,
				"",
			),
		),
		awsConfig.WithRetryer(func() aws.Retryer {
			return retry.AddWithMaxAttempts(
				retry.AddWithMaxBackoffDelay(retry.NewStandard(), time.Second*5),
				3,
			)
		}),
	)
	if err != nil {
		panic(err)
	}
	deps.AwsConfig = cfg
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger()
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not parse Redis URL.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqDigestPublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqDigestQueue
	if err := rabbitmqChannel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not declare RabbitMQ queue.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.DigestPublisher = digestpublisher.NewRabbitMQ(deps.Logger, rabbitmqChannel, queue)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down digest publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Digest publisher shut down.")
	}
}

func (deps *Deps) initSentry() func() {
	if deps.Config.SentryDsn != nil {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              deps.Config.SentryDsn.String(),
			TracesSampleRate: 0.01,
		})
		if err != nil {
			panic(fmt.Sprintf("could not init Sentry: %v\n", err))
		}
		deps.Logger.Info(context.Background(), "Sentry has been successfully initialized.")
		return func() {
			ok := sentry.Flush(5 * time.Second)
			deps.Logger.Info(context.Background(), "Sentry events flushed.", dl.Entry("ok", ok))
		}
	}

	deps.Logger.Info(context.Background(), "Sentry is disabled.")
	return func() {}
}
