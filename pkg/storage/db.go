package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var (
	NotFound           = gorm.ErrRecordNotFound
	ErrNotRowsAffected = errors.New("0 rows affected")
)

type option struct {
	debug       bool
	prepareStmt bool

	maxOpenConn int
	maxIdleConn int

	user     string
	password string
	ip       string
	port     string
	database string
	charset  string

	timeout         time.Duration
	readTimeout     time.Duration
	writeTimeout    time.Duration
	connMaxLifetime time.Duration
	slowThreshold   time.Duration
}

type Option func(*option)

func WithDebug(debug bool) Option {
	return func(o *option) {
		o.debug = debug
	}
}

func WithPrepareStmt(prepareStmt bool) Option {
	return func(o *option) {
		o.prepareStmt = prepareStmt
	}
}

func WithMaxOpenConn(maxOpenConn int) Option {
	return func(o *option) {
		o.maxOpenConn = maxOpenConn
	}
}

func WithMaxIdleConn(maxIdleConn int) Option {
	return func(o *option) {
		o.maxIdleConn = maxIdleConn
	}
}

func WithUser(user string) Option {
	return func(o *option) {
		o.user = user
	}
}

func WithPassword(password string) Option {
	return func(o *option) {
		o.password = password
	}
}

func WithIP(ip string) Option {
	return func(o *option) {
		o.ip = ip
	}
}

func WithPort(port string) Option {
	return func(o *option) {
		o.port = port
	}
}

func WithDatabase(db string) Option {
	return func(o *option) {
		o.database = db
	}
}

func WithCharset(charset string) Option {
	return func(o *option) {
		o.charset = charset
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *option) {
		o.timeout = timeout
	}
}

func WithReadTimeout(readTimeout time.Duration) Option {
	return func(o *option) {
		o.readTimeout = readTimeout
	}
}

func WithWriteTimeout(writeTimeout time.Duration) Option {
	return func(o *option) {
		o.writeTimeout = writeTimeout
	}
}

func WithMaxLifetime(connMaxLifetime time.Duration) Option {
	return func(o *option) {
		o.connMaxLifetime = connMaxLifetime
	}
}

func WithSlowThreshold(slowThreshold time.Duration) Option {
	return func(o *option) {
		o.slowThreshold = slowThreshold
	}
}

func defaultOption() *option {
	return &option{
		prepareStmt:   true,
		maxOpenConn:   100,
		maxIdleConn:   80,
		ip:            "127.0.0.1",
		port:          "3306",
		charset:       "utf8mb4",
		slowThreshold: 200 * time.Millisecond,
	}
}

// New init mysql DB
func New(ctx context.Context, opts ...Option) (*DB, error) {
	o := defaultOption()
	for _, f := range opts {
		f(o)
	}
	return open(ctx, mysql.New(mysql.Config{
		DSN: Dsn(o.user, o.password, o.ip, o.port, o.database, o.charset,
			o.timeout, o.readTimeout, o.writeTimeout),
		DisableWithReturning: true,
	}), o)
}

// Open init DB with any gorm dialector
func Open(ctx context.Context, dialector gorm.Dialector, opts ...Option) (*DB, error) {
	o := defaultOption()
	for _, f := range opts {
		f(o)
	}
	return open(ctx, dialector, o)
}

func open(ctx context.Context, dialector gorm.Dialector, o *option) (*DB, error) {
	level := glogger.Warn
	if o.debug { // 是否显示sql语句
		level = glogger.Info
	}
	client, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: false,
		NamingStrategy: schema.NamingStrategy{
			SingularTable: true, // 不考虑表名单复数变化
		},
		FullSaveAssociations: false,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		PrepareStmt: o.prepareStmt,
		Logger: NewLog(func(c *glogger.Config) {
			c.LogLevel = level
			c.SlowThreshold = o.slowThreshold
		}),
	})
	if err != nil {
		return nil, err
	}
	client = client.WithContext(ctx)

	var sqlDB *sql.DB
	if sqlDB, err = client.DB(); err != nil {
		return nil, err
	}
	// 连接池配置
	sqlDB.SetMaxOpenConns(o.maxOpenConn)        // 默认值0，无限制
	sqlDB.SetMaxIdleConns(o.maxIdleConn)        // 默认值2
	sqlDB.SetConnMaxLifetime(o.connMaxLifetime) // 默认值0，永不过期

	return &DB{DB: client}, nil
}

func Dsn(
	user, password, ip, port, database, charset string,
	timeout, readTimeout, writeTimeout time.Duration,
) string {
	uri := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=%t&loc=%s",
		user, password, ip, port, database, charset, true, "UTC")
	if timeout != 0 {
		uri += fmt.Sprintf("&timeout=%s", timeout)
	}
	if readTimeout != 0 {
		uri += fmt.Sprintf("&readTimeout=%s", readTimeout)
	}
	if writeTimeout != 0 {
		uri += fmt.Sprintf("&writeTimeout=%s", writeTimeout)
	}
	return uri
}

type DB struct {
	*gorm.DB
}

// With 绑定请求context,sql日志随之带上trace_id等字段
func (d *DB) With(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *DB) Close() error {
	s, err := d.DB.DB()
	if err != nil {
		return err
	}
	return s.Close()
}
