package cmd

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	PaymentGatewayURL  string
	StaleOrderTTLMins  int
	StaleSweepSchedule string
}
