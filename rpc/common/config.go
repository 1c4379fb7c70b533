package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Deployment Modes
// --------------------------------------------------------------------------

// DeploymentMode names the kind of deployment a client talks to. It is
// fixed at client construction and selects the topology resolution
// strategy, never re-derived per call.
type DeploymentMode string

const (
	// DeploymentStandalone - a single node owns every key, replies are
	// plain values.
	DeploymentStandalone DeploymentMode = "standalone"
	// DeploymentCluster - keys are partitioned over shards, replies arrive
	// as per-shard maps and have to be resolved.
	DeploymentCluster DeploymentMode = "cluster"
)

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all configuration parameters for a document store
// client. Retry and timeout values are forwarded to the transport, the
// client itself never retries.
type ClientConfig struct {
	// Deployment the client connects to
	Mode DeploymentMode

	// Transport parameters
	Endpoints     []string
	TimeoutSecond int
	RetryCount    int

	// Number of shards for clustered in-process deployments
	ShardCount int

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// General client settings
	addSection("Client Configuration")
	addField("Deployment Mode", string(c.Mode))
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))
	addField("Retry Count", strconv.Itoa(c.RetryCount))
	if c.Mode == DeploymentCluster {
		addField("Shards", strconv.Itoa(c.ShardCount))
	}

	// Logging configuration
	addSection("Logging")
	addField("Log Level", c.LogLevel)

	// Endpoints
	if len(c.Endpoints) > 0 {
		addSection("Endpoints")
		for i, endpoint := range c.Endpoints {
			addField(strconv.Itoa(i), endpoint)
		}
	}

	return sb.String()
}
