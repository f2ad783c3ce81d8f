package config

import (
	"path/filepath"
	"time"

	"rbac-admin/pkg/config"
	"rbac-admin/pkg/utils/v"
)

// defaults 服务的默认配置
var defaults = map[string]interface{}{
	"mode":                           "release",
	"service.name":                   v.ServiceName,
	"service.addr":                   ":8120",
	"log.level":                      "info",
	"log.console":                    true,
	"log.path":                       "",
	"log.format":                     "console",
	"mysql.user":                     "root",
	"mysql.password":                 "",
	"mysql.ip":                       "127.0.0.1",
	"mysql.port":                     "3306",
	"mysql.name":                     "rbac",
	"mysql.charset":                  "utf8mb4",
	"mysql.max_open_conns":           100,
	"mysql.max_idle_conns":           10,
	"mysql.conn_max_lifetime":        time.Hour,
	"mysql.prepare_stmt":             true,
	"mysql.read_timeout":             30 * time.Second,
	"mysql.write_timeout":            30 * time.Second,
	"mysql.slow_threshold":           200 * time.Millisecond,
	"redis.addrs":                    []string{"127.0.0.1:6379"},
	"redis.password":                 "",
	"redis.db":                       0,
	"cache.driver":                   "redis",
	"jwt.secret":                     "",
	"jwt.expires_in":                 168 * time.Hour,
	"jwt.issuer":                     v.ServiceName,
	"auth.hide_login_failure_reason": false,
	"auth.admin_password":            "Admin123!",
	"auth.temp_password_length":      12,
	"auth.repeat_submit_interval":    3 * time.Second,
	"cors.allowed_origins":           []string{"*"},
}

// LoadConfig init Config
func LoadConfig(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	return config.LoadConfig(
		config.WithConfigFile(absPath),
		config.WithDefaults(defaults),
	)
}
