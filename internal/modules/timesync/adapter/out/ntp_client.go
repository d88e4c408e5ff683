package out

import (
	"context"
	"fmt"
	"time"

	"github.com/beevik/ntp"

	timesyncout "focusd/internal/modules/timesync/port/out"
)

// NTPClient queries SNTP servers. The library bounds each query with its own
// dial/read deadline, so the context is not threaded through.
type NTPClient struct{}

func NewNTPClient() timesyncout.ReferenceClient {
	return &NTPClient{}
}

func (c *NTPClient) Query(_ context.Context, server string, timeout time.Duration) (time.Duration, error) {
	response, err := ntp.QueryWithOptions(server, ntp.QueryOptions{Timeout: timeout})
	if err != nil {
		return 0, fmt.Errorf("query %s: %w", server, err)
	}
	if err := response.Validate(); err != nil {
		return 0, fmt.Errorf("validate %s response: %w", server, err)
	}
	return response.ClockOffset, nil
}
