package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/felipecouto0101/FastFeet-Deliveryman/config"
	"github.com/felipecouto0101/FastFeet-Deliveryman/internal/domain/event"
	"github.com/felipecouto0101/FastFeet-Deliveryman/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router modules wire themselves from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	publisher   event.Publisher
	jwtManager  *helpers.JWTManager
)

func SetConfig(c *config.Config)      { cfg = c }
func GetConfig() *config.Config       { return cfg }
func SetLogger(l *logrus.Logger)      { logger = l }
func GetLogger() *logrus.Logger       { return logger }
func SetPGPool(p *pgxpool.Pool)       { pgPool = p }
func GetPGPool() *pgxpool.Pool        { return pgPool }
func SetRedis(r *redis.Client)        { redisClient = r }
func GetRedis() *redis.Client         { return redisClient }
func SetPublisher(p event.Publisher)  { publisher = p }
func GetPublisher() event.Publisher   { return publisher }
func SetJWT(m *helpers.JWTManager)    { jwtManager = m }
func GetJWT() *helpers.JWTManager     { return jwtManager }
