package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo .env).
type Config struct {
	App          AppConfig
	HTTP         HTTPConfig
	Persistencia PersistenciaConfig
	DB           DBConfig
	Cuentas      CuentasConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env     string // development, staging, production
	Name    string
	Version string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Drivers de persistencia soportados.
const (
	DriverArchivo  = "file"
	DriverPostgres = "postgres"
)

// PersistenciaConfig selecciona y parametriza el almacén de snapshots.
type PersistenciaConfig struct {
	Driver  string // file | postgres
	DataDir string // directorio de datos para el driver file
}

// DBConfig configuración de PostgreSQL (solo con Driver = postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DatabaseURL si está definido, si
// no el construido con el resto de los campos.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// CuentasConfig claves de las cuentas bancarias del negocio. Ventas, Fletes y
// Utilidades son las cuentas designadas del reparto de una venta; Caja es la
// cuenta operativa por defecto.
type CuentasConfig struct {
	Ventas     string
	Fletes     string
	Utilidades string
	Caja       string
}

// Claves devuelve todas las cuentas configuradas, para sembrarlas al arrancar.
func (c CuentasConfig) Claves() []string {
	return []string{c.Ventas, c.Fletes, c.Utilidades, c.Caja}
}

// Load lee la configuración desde variables de entorno (y opcionalmente
// desde archivo .env). Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env en el directorio de trabajo
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:     getString(v, "APP_ENV", "development"),
			Name:    getString(v, "APP_NAME", "gestor-comercial"),
			Version: getString(v, "APP_VERSION", "1.0.0"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Persistencia: PersistenciaConfig{
			Driver:  getString(v, "PERSISTENCE_DRIVER", DriverArchivo),
			DataDir: getString(v, "DATA_DIR", "./data"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "gestor_comercial"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Cuentas: CuentasConfig{
			Ventas:     getString(v, "CUENTA_VENTAS", "ventas"),
			Fletes:     getString(v, "CUENTA_FLETES", "fletes"),
			Utilidades: getString(v, "CUENTA_UTILIDADES", "utilidades"),
			Caja:       getString(v, "CUENTA_CAJA", "caja"),
		},
	}

	if cfg.Persistencia.Driver != DriverArchivo && cfg.Persistencia.Driver != DriverPostgres {
		return nil, fmt.Errorf("PERSISTENCE_DRIVER desconocido: %q", cfg.Persistencia.Driver)
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
