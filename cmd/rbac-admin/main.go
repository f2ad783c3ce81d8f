package main

import (
	"context"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	goredis "github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"rbac-admin/config"
	"rbac-admin/internal/code"
	"rbac-admin/internal/ctxw"
	"rbac-admin/internal/router"
	"rbac-admin/internal/service"
	"rbac-admin/internal/service/auth"
	"rbac-admin/internal/service/user"
	"rbac-admin/internal/session"
	"rbac-admin/internal/store/mysql"
	"rbac-admin/pkg/cache"
	"rbac-admin/pkg/logger"
	"rbac-admin/pkg/redis"
	"rbac-admin/pkg/retry"
	"rbac-admin/pkg/routine"
	"rbac-admin/pkg/storage"
	"rbac-admin/pkg/token"
	"rbac-admin/pkg/validator"
)

var configFile = flag.String("f", "./config/rbac.yaml", "the config file")

const DefaultStopTime = 15 * time.Second

func main() {
	flag.Parse()
	// 初始化配置
	if err := config.LoadConfig(*configFile); err != nil {
		log.Fatal(err)
	}
	if err := code.Loading(); err != nil {
		log.Fatal(err)
	}
	if mode := strings.ToLower(viper.GetString("mode")); mode != "" {
		gin.SetMode(mode)
	}
	// 初始化系统日志
	logOpts := []logger.Option{
		logger.WithServerName(viper.GetString("service.name")),
		logger.WithLevel(viper.GetString("log.level")),
		logger.WithWriter(logger.SetWriter(viper.GetBool("log.console"), viper.GetString("log.path"))),
	}
	if viper.GetString("log.format") == "json" {
		logOpts = append(logOpts, logger.WithJSONEncoder())
	}
	l := logger.New(logOpts...)
	zap.ReplaceGlobals(l)
	err := run(logger.With(context.Background(), l))
	_ = l.Sync()
	_ = logger.Close()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	secret := viper.GetString("jwt.secret")
	if secret == "" {
		return errors.New("jwt.secret is required")
	}
	validate, err := validator.New()
	if err != nil {
		return err
	}
	if err = validator.Register(validate); err != nil {
		return err
	}
	binding.Validator = validate
	// 审计字段取当前登录用户
	storage.OperatorSetFunc(ctxw.GetUserID)

	var db *storage.DB
	if err = retry.Do(ctx, func(ctx context.Context) error {
		db, err = mysql.Init(ctx)
		return err
	}, retry.WithNotify(notify(ctx, "mysql"))); err != nil {
		return errors.Wrap(err, "connect mysql")
	}
	defer db.Close()

	g := routine.NewGroup(ctx)
	c, active, err := newCache(ctx, g)
	if err != nil {
		return err
	}

	sessions := session.NewManager(token.NewSigner(secret,
		viper.GetDuration("jwt.expires_in"),
		token.WithIssuer(viper.GetString("jwt.issuer"))), c)
	srv := service.NewService(mysql.New(db), c, sessions,
		service.WithUserOptions(user.WithPasswordLength(viper.GetInt("auth.temp_password_length"))),
		service.WithAuthOptions(auth.WithHideFailureReason(viper.GetBool("auth.hide_login_failure_reason"))),
	)
	httpSrv := &http.Server{
		Addr: viper.GetString("service.addr"),
		Handler: router.New(srv, sessions, c,
			router.WithLogger(logger.From(ctx)),
			router.WithAllowedOrigins(viper.GetStringSlice("cors.allowed_origins")...),
			router.WithRepeatInterval(viper.GetDuration("auth.repeat_submit_interval")),
			router.WithCacheActive(active),
			router.WithHealthProbe(func(ctx context.Context) error {
				sqlDB, err := db.DB.DB()
				if err != nil {
					return err
				}
				return sqlDB.PingContext(ctx)
			}),
		),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}
	// 服务启动流程
	g.Go(func(ctx context.Context) error {
		logger.From(ctx).Info("server started",
			zap.String("addr", httpSrv.Addr), zap.String("mode", gin.Mode()))
		return httpSrv.ListenAndServe()
	})
	// 服务关闭流程
	g.Go(func(ctx context.Context) error {
		return shutdownAction(ctx, httpSrv)
	})
	if err = g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// newCache 按cache.driver选择缓存,redis模式下后台探测可用性
func newCache(ctx context.Context, g *routine.ErrGroup) (cache.Cache, func() bool, error) {
	switch driver := viper.GetString("cache.driver"); driver {
	case cache.DriverMemory:
		return cache.NewMemory(time.Minute), func() bool { return true }, nil
	case cache.DriverRedis:
		var client goredis.UniversalClient
		err := retry.Do(ctx, func(ctx context.Context) error {
			var err error
			client, err = redis.New(ctx, func(o *redis.Option) {
				o.AddrList = viper.GetStringSlice("redis.addrs")
				o.Password = viper.GetString("redis.password")
				o.DB = viper.GetInt("redis.db")
			})
			return err
		}, retry.WithNotify(notify(ctx, "redis")))
		if err != nil {
			return nil, nil, errors.Wrap(err, "connect redis")
		}
		checker := redis.NewChecker(client, 5*time.Second, 3)
		g.Go(func(ctx context.Context) error {
			defer client.Close()
			return checker.Run(ctx)
		})
		return cache.NewRedis(client), checker.Active, nil
	default:
		return nil, nil, errors.Errorf("unsupported cache driver %q", driver)
	}
}

func notify(ctx context.Context, target string) func(error, time.Duration) {
	return func(err error, next time.Duration) {
		logger.From(ctx).Warn("connect failed, retrying",
			zap.String("target", target), zap.Duration("next", next), zap.Error(err))
	}
}

func shutdownAction(ctx context.Context, srv *http.Server) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case <-quit:
	}
	newCtx, cancel := context.WithTimeout(context.Background(), DefaultStopTime)
	defer cancel()
	logger.From(ctx).Info("shutting down server...")
	return multierr.Append(err, srv.Shutdown(newCtx))
}
