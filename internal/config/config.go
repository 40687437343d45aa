package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	celoNodeEnvKey     = "CELO_NODE_URL"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	jwtSecretEnvKey    = "JWT_SECRET"
	relayerKeyEnvKey   = "RELAYER_PRIVATE_KEY"
	electionEnvKey     = "ELECTION_CONTRACT_ADDRESS"
	redisAddrEnvKey    = "REDIS_ADDR"
	kafkaBrokersEnvKey = "KAFKA_BROKERS"
	kafkaTopicEnvKey   = "KAFKA_TOPIC"
	metricsAddrEnvKey  = "METRICS_ADDR"
	otelEndpointEnvKey = "OTEL_EXPORTER_OTLP_ENDPOINT"
)

// Defaults for the optional variables. The election contract is the
// mainnet proxy address, overridable for Alfajores or a fork.
const (
	defaultElectionContract = "0x8D6677192144292870907E3Fa8A5527fE55A7ff6"
	defaultKafkaTopic       = "mondo.activations"
)

type App struct {
	Port             string
	NodeURL          string
	DBConnectionURL  string
	JWTSecret        string
	RelayerKey       string
	ElectionContract string
	RedisAddr        string
	KafkaBrokers     []string
	KafkaTopic       string
	MetricsAddr      string
	OtelEndpoint     string
}

func NewApp() (App, error) {

	if err := loadDotEnv(); err != nil {
		return App{}, fmt.Errorf("loading dotenv file: %w", err)
	}

	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	nodeURL, ok := os.LookupEnv(celoNodeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, celoNodeEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	jwtSecret, ok := os.LookupEnv(jwtSecretEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, jwtSecretEnvKey)
	}

	relayerKey, ok := os.LookupEnv(relayerKeyEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, relayerKeyEnvKey)
	}

	election, ok := os.LookupEnv(electionEnvKey)
	if !ok || election == "" {
		election = defaultElectionContract
	}

	topic, ok := os.LookupEnv(kafkaTopicEnvKey)
	if !ok || topic == "" {
		topic = defaultKafkaTopic
	}

	var brokers []string
	if raw, ok := os.LookupEnv(kafkaBrokersEnvKey); ok {
		for _, broker := range strings.Split(raw, ",") {
			if broker = strings.TrimSpace(broker); broker != "" {
				brokers = append(brokers, broker)
			}
		}
	}

	return App{
		Port:             port,
		NodeURL:          nodeURL,
		DBConnectionURL:  dbConn,
		JWTSecret:        jwtSecret,
		RelayerKey:       relayerKey,
		ElectionContract: election,
		RedisAddr:        strings.TrimSpace(os.Getenv(redisAddrEnvKey)),
		KafkaBrokers:     brokers,
		KafkaTopic:       topic,
		MetricsAddr:      strings.TrimSpace(os.Getenv(metricsAddrEnvKey)),
		OtelEndpoint:     strings.TrimSpace(os.Getenv(otelEndpointEnvKey)),
	}, nil
}
