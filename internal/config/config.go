package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App   App   `mapstructure:",squash"`
	Auth  Auth  `mapstructure:",squash"`
	Store Store `mapstructure:",squash"`
}

type App struct {
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"log_level"`
}

type Auth struct {
	AdminPassword    string `mapstructure:"admin_password"`
	MaxLoginAttempts int    `mapstructure:"max_login_attempts"`
}

type Store struct {
	DataFile   string `mapstructure:"data_file"`
	ReportsDir string `mapstructure:"reports_dir"`
}

func SetDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")

	// Senha padrão apenas para a primeira execução local
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("MAX_LOGIN_ATTEMPTS", 3)

	viper.SetDefault("DATA_FILE", "sales_data.json")
	viper.SetDefault("REPORTS_DIR", "reports")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Debug("Arquivo .env lido pelo Viper com sucesso")
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

	// O laço de login precisa de pelo menos uma tentativa
	if config.Auth.MaxLoginAttempts < 1 {
		config.Auth.MaxLoginAttempts = 1
	}

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

	// Tentar as localizações usuais do arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado; usando variáveis de ambiente e padrões")
}
