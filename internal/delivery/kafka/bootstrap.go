package kafka

import (
	"context"
	"fmt"
	"strings"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kgo"
)

func EnsureTopics(ctx context.Context, client *kgo.Client) error {
	adm := kadm.NewClient(client)

	resp, err := adm.CreateTopics(ctx, defaultPartitions, defaultReplicationFactor, nil, TopicOrderCreated)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", TopicOrderCreated, err)
	}
	for _, detail := range resp {
		if detail.Err != nil && !strings.Contains(detail.Err.Error(), "already exists") {
			return fmt.Errorf("create topic %s: %w", detail.Topic, detail.Err)
		}
	}
	return nil
}
