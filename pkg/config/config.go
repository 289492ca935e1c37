/*
 * @Description: 统一配置管理 (ini 文件 + 环境变量覆盖)
 * @Author: 安知鱼
 * @Date: 2025-06-28 00:21:55
 * @LastEditTime: 2026-10-14 11:31:12
 * @LastEditors: 安知鱼
 */
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/anzhiyu-c/fintaa-site/pkg/idgen"
	"github.com/go-ini/ini"
	"github.com/spf13/viper"
)

// DefaultConfigPath 默认配置文件路径
const DefaultConfigPath = "data/conf.ini"

// EnvPrefix 环境变量前缀，例如 FINTAA_DATABASE_HOST
const EnvPrefix = "FINTAA"

// 定义所有已知的配置键
var allKeys = []string{
	KeyServerPort, KeyServerDebug, KeySiteURL, KeySiteName, KeyJWTSecret, KeyIDSeed,
	KeyDBType, KeyDBHost, KeyDBPort, KeyDBUser, KeyDBPassword, KeyDBName, KeyDBDebug,
	KeyRedisAddr, KeyRedisPassword, KeyRedisDB,
	KeyAdminUsername, KeyAdminPasswordHash, KeyAdminPassword,
	KeyStorageType, KeyStorageBucket, KeyStorageRegion, KeyStorageEndpoint,
	KeyStorageAccessKey, KeyStorageSecretKey, KeyStorageBaseURL, KeyStorageLocalDir,
	KeyContactRateLimit, KeyContactRateBurst,
}

const (
	KeyServerPort  = "System.Port"
	KeyServerDebug = "System.Debug"
	KeySiteURL     = "System.SiteURL"
	KeySiteName    = "System.SiteName"
	KeyJWTSecret   = "System.JWTSecret"
	KeyIDSeed      = "System.IDSeed"

	KeyDBType     = "Database.Type"
	KeyDBHost     = "Database.Host"
	KeyDBPort     = "Database.Port"
	KeyDBUser     = "Database.User"
	KeyDBPassword = "Database.Password"
	KeyDBName     = "Database.Name"
	KeyDBDebug    = "Database.Debug"

	KeyRedisAddr     = "Redis.Addr"
	KeyRedisPassword = "Redis.Password"
	KeyRedisDB       = "Redis.DB"

	KeyAdminUsername     = "Admin.Username"
	KeyAdminPasswordHash = "Admin.PasswordHash"
	KeyAdminPassword     = "Admin.Password"

	KeyStorageType      = "Storage.Type"
	KeyStorageBucket    = "Storage.Bucket"
	KeyStorageRegion    = "Storage.Region"
	KeyStorageEndpoint  = "Storage.Endpoint"
	KeyStorageAccessKey = "Storage.AccessKey"
	KeyStorageSecretKey = "Storage.SecretKey"
	KeyStorageBaseURL   = "Storage.BaseURL"
	KeyStorageLocalDir  = "Storage.LocalDir"

	KeyContactRateLimit = "Contact.RateLimitPerMinute"
	KeyContactRateBurst = "Contact.RateLimitBurst"
)

type Config struct {
	vp *viper.Viper
}

// NewConfig 从默认路径加载配置，文件不存在时创建默认配置文件
func NewConfig() (*Config, error) {
	filePath := DefaultConfigPath
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		log.Printf("提示: 未找到 %s，将创建默认配置文件。", filePath)
		if err := createDefaultConfigFile(filePath); err != nil {
			log.Printf("警告: 创建默认配置文件失败: %v，将仅依赖环境变量或内部默认值。", err)
		} else {
			log.Printf("✅ 已创建默认配置文件: %s", filePath)
		}
	}
	return NewConfigFromFile(filePath)
}

// NewConfigFromFile 从指定 ini 文件加载配置，文件不存在时只使用默认值与环境变量
func NewConfigFromFile(filePath string) (*Config, error) {
	vp := viper.New()
	setDefaults(vp)

	// --- 步骤 1: 使用 go-ini 从文件加载配置 ---
	if _, err := os.Stat(filePath); err == nil {
		iniCfg, err := ini.Load(filePath)
		if err != nil {
			return nil, fmt.Errorf("错误: 解析配置文件 '%s' 失败: %w", filePath, err)
		}
		for _, section := range iniCfg.Sections() {
			for _, key := range section.Keys() {
				viperKey := fmt.Sprintf("%s.%s", section.Name(), key.Name())
				if section.Name() == ini.DefaultSection {
					viperKey = key.Name()
				}
				vp.Set(viperKey, key.Value())
			}
		}
		log.Printf("从 %s 文件加载了配置。", filePath)
	}

	// --- 步骤 2: 手动检查并覆盖环境变量 ---
	envReplacer := strings.NewReplacer(".", "_")
	for _, key := range allKeys {
		envVarName := fmt.Sprintf("%s_%s", EnvPrefix, envReplacer.Replace(strings.ToUpper(key)))
		if value, found := os.LookupEnv(envVarName); found {
			vp.Set(key, value)
			log.Printf("发现环境变量: %s, 已覆盖配置 '%s'。", envVarName, key)
		}
	}

	log.Println("✅ 配置加载器初始化完成。")
	return &Config{vp: vp}, nil
}

func setDefaults(vp *viper.Viper) {
	vp.SetDefault(KeyServerPort, "8091")
	vp.SetDefault(KeySiteName, "Fintaa Software House")
	vp.SetDefault(KeySiteURL, "http://localhost:8091")
	vp.SetDefault(KeyDBType, "sqlite")
	vp.SetDefault(KeyDBName, "fintaa_site.db")
	vp.SetDefault(KeyAdminUsername, "admin")
	vp.SetDefault(KeyStorageType, "local")
	vp.SetDefault(KeyStorageLocalDir, "data/media")
	vp.SetDefault(KeyContactRateLimit, 0)
	vp.SetDefault(KeyContactRateBurst, 5)
}

func (c *Config) GetString(key string) string {
	return c.vp.GetString(key)
}

func (c *Config) GetInt(key string) int {
	return c.vp.GetInt(key)
}

func (c *Config) GetBool(key string) bool {
	return c.vp.GetBool(key)
}

// Set 覆盖单个配置项，供命令行参数与测试使用
func (c *Config) Set(key string, value any) {
	c.vp.Set(key, value)
}

// createDefaultConfigFile 创建默认的配置文件
func createDefaultConfigFile(filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("创建目录失败: %w", err)
	}

	seed, err := idgen.GenerateRandomSeed()
	if err != nil {
		return err
	}

	// 默认使用 SQLite 与本地媒体存储
	defaultConfig := `[System]
Port = 8091
Debug = false
SiteURL = http://localhost:8091
SiteName = Fintaa Software House
# 留空时每次启动随机生成，重启后已签发的令牌失效
JWTSecret =
# 公共ID字母表种子，修改后已发出的ID全部失效
IDSeed = ` + seed + `

[Database]
Type = sqlite
Name = fintaa_site.db
Debug = false

# Redis 配置（可选）
# 如果不配置或留空 Addr，系统将自动使用内存缓存
[Redis]
Addr =
Password =
DB = 0

[Admin]
Username = admin
# bcrypt 哈希；仅设置 Password 时启动时自动计算哈希
PasswordHash =
Password =

# 媒体存储: local / s3 / oss / cos / kodo
[Storage]
Type = local
LocalDir = data/media
Bucket =
Region =
Endpoint =
AccessKey =
SecretKey =
BaseURL =

# 联系表单限流，每分钟请求数，0 表示关闭
[Contact]
RateLimitPerMinute = 0
RateLimitBurst = 5
`

	if err := os.WriteFile(filePath, []byte(defaultConfig), 0600); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}
