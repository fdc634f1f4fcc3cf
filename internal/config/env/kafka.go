package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers              []string `env:"KAFKA_BROKERS,required"`
	StockEventsTopicName string   `env:"STOCK_EVENTS_TOPIC_NAME,required"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string        { return cfg.raw.Brokers }
func (cfg *kafka) StockEventsTopic() string { return cfg.raw.StockEventsTopicName }

func (cfg *kafka) StockEventsProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true

	return config
}
