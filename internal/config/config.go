package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DriverSqlite = "sqlite"
	DriverBolt   = "bolt"
	DriverMemory = "memory"
)

type TgBot struct {
	Enabled          bool   `toml:"tg_bot_enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
}

type Server struct {
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
	Debug   bool   `toml:"debug_mode"`
	TLSCert string `toml:"tls_cert"`
	TLSKey  string `toml:"tls_key"`
}

type Storage struct {
	Driver     string `toml:"driver"`
	SqliteFile string `toml:"sqlite_file"`
	BoltFile   string `toml:"bolt_file"`
}

type serverFile struct {
	Server  Server  `toml:"server"`
	Storage Storage `toml:"storage"`
}

type Config struct {
	TgBot   TgBot
	Server  Server
	Storage Storage
}

func defaults() Config {
	return Config{
		Server: Server{
			Host: "0.0.0.0",
			Port: 3000,
		},
		Storage: Storage{
			Driver:     DriverSqlite,
			SqliteFile: "scoreboard.sqlite",
			BoltFile:   "scoreboard.db",
		},
	}
}

// New reads the server and bot config files on top of the defaults. A
// missing bot file leaves the bot disabled. A .env file, when present, is
// loaded into the environment before the overrides are applied.
func New(serverPath, botPath string) (Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	cfg := defaults()
	file := serverFile{
		Server:  cfg.Server,
		Storage: cfg.Storage,
	}
	_, err = toml.DecodeFile(serverPath, &file)
	if err != nil {
		return Config{}, err
	}
	cfg.Server = file.Server
	cfg.Storage = file.Storage

	_, err = toml.DecodeFile(botPath, &cfg.TgBot)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		cfg.TgBot.TelegramApiToken = token
	}
	if driver := os.Getenv("SCOREBOARD_STORAGE_DRIVER"); driver != "" {
		cfg.Storage.Driver = driver
	}
	if port := os.Getenv("SCOREBOARD_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return errors.New("SCOREBOARD_PORT must be a number")
		}
		cfg.Server.Port = p
	}
	return nil
}

func (c Config) Validate() error {
	var err error
	switch c.Storage.Driver {
	case DriverSqlite, DriverBolt, DriverMemory:
	default:
		err = errors.Join(err, errors.New("unknown storage driver "+strconv.Quote(c.Storage.Driver)))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		err = errors.Join(err, errors.New("server port out of range"))
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		err = errors.Join(err, errors.New("tls_cert and tls_key must be set together"))
	}
	if c.TgBot.Enabled && c.TgBot.TelegramApiToken == "" {
		err = errors.Join(err, errors.New("telegram bot enabled without a token"))
	}
	return err
}
