package config

const (
	EnvPrefix = "MZANSIMARKET"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "MZANSIMARKET_DB_DSN"
	EnvDBHost = "MZANSIMARKET_DB_HOST"
	EnvDBUser = "MZANSIMARKET_DB_USER"
	EnvDBName = "MZANSIMARKET_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
