package cmd

type Config struct {
	HTTPPort              string
	DBHost                string
	DBPort                string
	DBUser                string
	DBPassword            string
	DBName                string
	DBSslMode             string
	RedisAddr             string
	CartTTLHours          string
	GeoServiceURL         string
	KafkaHost             string
	KafkaOrderStatusTopic string
	KafkaCartBadgeTopic   string
	AutoAssignSchedule    string
}
