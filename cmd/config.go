package cmd

type Config struct {
	HTTPPort               string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSslMode              string
	KafkaHost              string
	KafkaOrderChangedTopic string
	NotifierURL            string
	DispatchChatID         int64
	AdminChatID            int64
	CommissionRate         float64
}
