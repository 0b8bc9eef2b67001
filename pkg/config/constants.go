package config

const (
	EnvPrefix = "savoria"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)
