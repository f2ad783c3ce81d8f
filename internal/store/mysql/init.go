package mysql

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"rbac-admin/internal/store"
	"rbac-admin/pkg/storage"
)

// Init init database
func Init(ctx context.Context) (*storage.DB, error) {
	return storage.New(ctx,
		storage.WithDebug(viper.GetString("mode") != gin.ReleaseMode),
		storage.WithUser(viper.GetString("mysql.user")),
		storage.WithPassword(viper.GetString("mysql.password")),
		storage.WithIP(viper.GetString("mysql.ip")),
		storage.WithPort(viper.GetString("mysql.port")),
		storage.WithDatabase(viper.GetString("mysql.name")),
		storage.WithCharset(viper.GetString("mysql.charset")),
		storage.WithMaxOpenConn(viper.GetInt("mysql.max_open_conns")),
		storage.WithMaxIdleConn(viper.GetInt("mysql.max_idle_conns")),
		storage.WithMaxLifetime(viper.GetDuration("mysql.conn_max_lifetime")),
		storage.WithPrepareStmt(viper.GetBool("mysql.prepare_stmt")),
		storage.WithTimeout(5*time.Second),
		storage.WithReadTimeout(viper.GetDuration("mysql.read_timeout")),
		storage.WithWriteTimeout(viper.GetDuration("mysql.write_timeout")),
		storage.WithSlowThreshold(viper.GetDuration("mysql.slow_threshold")),
	)
}

// New create mysql store
func New(db *storage.DB) store.Store {
	return &dataStore{db: db}
}

type dataStore struct {
	db *storage.DB
}

func (d *dataStore) Users() store.UserStore {
	return newUser(d.db)
}

func (d *dataStore) Roles() store.RoleStore {
	return newRole(d.db)
}

func (d *dataStore) Permissions() store.PermissionStore {
	return newPermission(d.db)
}

func (d *dataStore) Transaction(ctx context.Context, fn func(store.Store) error) error {
	return d.db.With(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&dataStore{db: &storage.DB{DB: tx}})
	})
}
