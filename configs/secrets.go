package configs

type Secrets struct {
	JwtSecret string `yaml:"jwt_secret"`
}
