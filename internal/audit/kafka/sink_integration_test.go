//go:build integration

package kafka_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	"dsa-onboarding/internal/audit"
	"dsa-onboarding/internal/audit/kafka"
	"dsa-onboarding/internal/platform/config"
	"dsa-onboarding/pkg/testutil/containers"
)

type SinkSuite struct {
	suite.Suite
	broker string
	sink   *kafka.Sink
}

func TestSinkSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(SinkSuite))
}

func (s *SinkSuite) SetupSuite() {
	s.broker = containers.GetManager().GetRedpanda(s.T()).Broker
	sink, err := kafka.NewSink(config.KafkaConfig{Brokers: []string{s.broker}, AuditTopic: "onboarding.audit.test"})
	s.Require().NoError(err)
	s.sink = sink

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	s.Require().NoError(s.sink.EnsureTopic(ctx, 1, 1))
	s.Require().NoError(s.sink.EnsureTopic(ctx, 1, 1), "ensuring an existing topic is a no-op")
}

func (s *SinkSuite) TearDownSuite() {
	s.sink.Close()
}

func (s *SinkSuite) TestAppendIsConsumable() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	event := audit.Event{
		Timestamp:     time.Now().UTC(),
		Action:        string(audit.EventVerificationDecided),
		ApplicationID: "app-kafka",
		Step:          "bank",
		Decision:      "flag",
		Warnings:      []string{"name match below auto-approval threshold"},
	}
	s.Require().NoError(s.sink.Append(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(s.broker),
		kgo.ConsumeTopics("onboarding.audit.test"),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	s.Require().NoError(err)
	defer consumer.Close()

	var got audit.Event
	for got.ApplicationID == "" {
		fetches := consumer.PollFetches(ctx)
		s.Require().NoError(ctx.Err())
		fetches.EachRecord(func(r *kgo.Record) {
			if string(r.Key) == "app-kafka" {
				s.Require().NoError(json.Unmarshal(r.Value, &got))
			}
		})
	}
	s.Equal("flag", got.Decision)
	s.Equal(event.Warnings, got.Warnings)
}
