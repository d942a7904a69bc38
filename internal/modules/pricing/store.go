// README: Quote cache backed by Redis with a short TTL.
package pricing

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"railway/internal/types"
)

const (
	quoteKeyPrefix = "pricing:quote:%s:%s:%d:%s"
	// Quotes track a fixed timetable, so a short TTL only guards against
	// catalog edits.
	quoteTTL = 15 * time.Minute
)

// QuoteCache memoizes computed prices. A nil client disables caching and
// every lookup misses.
type QuoteCache struct {
	redis *redis.Client
}

func NewQuoteCache(redis *redis.Client) *QuoteCache {
	return &QuoteCache{redis: redis}
}

func quoteKey(trainID types.ID, ticketType types.TicketType, p types.Passenger) string {
	return fmt.Sprintf(quoteKeyPrefix, trainID, ticketType, p.Age, p.Railcard)
}

func (c *QuoteCache) Get(ctx context.Context, trainID types.ID, ticketType types.TicketType, p types.Passenger) (float64, bool, error) {
	if c.redis == nil {
		return 0, false, nil
	}
	raw, err := c.redis.Get(ctx, quoteKey(trainID, ticketType, p)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	return price, true, nil
}

func (c *QuoteCache) Set(ctx context.Context, trainID types.ID, ticketType types.TicketType, p types.Passenger, price float64) error {
	if c.redis == nil {
		return nil
	}
	return c.redis.Set(ctx, quoteKey(trainID, ticketType, p),
		strconv.FormatFloat(price, 'f', 2, 64), quoteTTL).Err()
}
