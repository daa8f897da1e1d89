package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Meta                Meta                `mapstructure:",squash"`
	Render              Render              `mapstructure:",squash"`
	Analytics           Analytics           `mapstructure:",squash"`
	Commerce            Commerce            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	SnapshotSync        SnapshotSync        `mapstructure:",squash"`
	Engine              Engine              `mapstructure:",squash"`
	SecretKey           string              `mapstructure:"secret_key"`
	CommerceMultiClient map[string]Commerce `mapstructure:"-"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Meta struct {
	BaseURL        string    `mapstructure:"meta_base_url"`
	URL            string    `mapstructure:"meta_url"`
	Version        string    `mapstructure:"meta_version"`
	AccessToken    string    `mapstructure:"meta_access_token"`
	AppID          string    `mapstructure:"meta_app_id"`
	AppSecret      string    `mapstructure:"meta_app_secret"`
	LongLivedToken string    `mapstructure:"meta_long_lived_token"`
	TokenExpiresAt time.Time `mapstructure:"-"`
}

// Analytics configura a fonte de web analytics (funil e aquisição por canal)
type Analytics struct {
	URL         string `mapstructure:"analytics_url"`
	AccessToken string `mapstructure:"analytics_access_token"`
	PropertyID  string `mapstructure:"analytics_property_id"`
}

// Commerce configura a fonte de dados do backend de e-commerce (SKUs e pedidos)
type Commerce struct {
	URL         string `mapstructure:"commerce_url"`
	AccessToken string `mapstructure:"commerce_access_token"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// SnapshotSync configura o agendador de pré-computação de análises cognitivas
type SnapshotSync struct {
	CronSchedule        string `mapstructure:"snapshot_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"snapshot_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"snapshot_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"snapshot_sync_enabled"`
	CacheTTLMinutes     int    `mapstructure:"snapshot_cache_ttl_minutes"`
}

// Engine agrupa os limiares de política do motor de análise ajustáveis por
// ambiente. As demais tabelas de regra têm defaults em DefaultPolicy (policy.go).
type Engine struct {
	ROASPauseLevel     float64 `mapstructure:"engine_roas_pause_level"`
	ROASHoldLevel      float64 `mapstructure:"engine_roas_hold_level"`
	CPACeiling         float64 `mapstructure:"engine_cpa_ceiling"`
	MarginFloorPct     float64 `mapstructure:"engine_margin_floor_pct"`
	EscalateStockUnits int     `mapstructure:"engine_escalate_stock_units"`
	MinSpendFloorBRL   float64 `mapstructure:"engine_min_spend_floor_brl"`
	ElasticityDecay    float64 `mapstructure:"engine_elasticity_decay"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/cognitive")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("META_VERSION", "v22.0")
	viper.SetDefault("META_APP_ID", "your_app_id")
	viper.SetDefault("META_APP_SECRET", "your_app_secret")
	viper.SetDefault("META_ACCESS_TOKEN", "your_access_token") // ONLY LOCAL

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("ANALYTICS_URL", "https://analytics.example.com/api/v1")
	viper.SetDefault("ANALYTICS_ACCESS_TOKEN", "your_access_token")
	viper.SetDefault("ANALYTICS_PROPERTY_ID", "")

	viper.SetDefault("COMMERCE_URL", "https://commerce.example.com/api/v1")
	viper.SetDefault("COMMERCE_ACCESS_TOKEN", "your_access_token")

	// Defaults para a pré-computação de snapshots cognitivos
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 5 * * *")        // Todos os dias às 5h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_REQUEST_DELAY_SECONDS", 2) // 2 segundos entre contas
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3)   // 3 contas em paralelo
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)
	viper.SetDefault("SNAPSHOT_CACHE_TTL_MINUTES", 30)

	// Limiares de política do motor de análise
	viper.SetDefault("ENGINE_ROAS_PAUSE_LEVEL", 5.0)
	viper.SetDefault("ENGINE_ROAS_HOLD_LEVEL", 7.0)
	viper.SetDefault("ENGINE_CPA_CEILING", 80.0)
	viper.SetDefault("ENGINE_MARGIN_FLOOR_PCT", 25.0)
	viper.SetDefault("ENGINE_ESCALATE_STOCK_UNITS", 20)
	viper.SetDefault("ENGINE_MIN_SPEND_FLOOR_BRL", 100.0)
	viper.SetDefault("ENGINE_ELASTICITY_DECAY", 0.3)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// Tokens por loja do backend de e-commerce, resolvidos a partir dos secrets
	// do serviço quando disponíveis
	secretsByCode := make(map[string]string)
	if config.Render.ServiceID != "" {
		renderClient := NewRenderClient(config)
		secretsByCode, err = renderClient.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}
	}

	metaAccessToken, secretHasMetaAccessToken := secretsByCode["meta_access_token"]
	if config.Meta.AccessToken == "" && secretHasMetaAccessToken {
		config.Meta.AccessToken = metaAccessToken
	}

	config.Meta.URL = fmt.Sprintf("%s/%s", config.Meta.BaseURL, config.Meta.Version)
	config.CommerceMultiClient = make(map[string]Commerce)
	for key, token := range secretsByCode {
		config.CommerceMultiClient[key] = Commerce{
			URL:         config.Commerce.URL,
			AccessToken: token,
		}
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
