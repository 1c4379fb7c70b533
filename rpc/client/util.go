package client

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"

	"github.com/docukv/djson/rpc/common"
	"github.com/docukv/djson/rpc/transport"
)

var (
	Logger = logger.GetLogger("client")
)

// --------------------------------------------------------------------------
// Dispatch
// --------------------------------------------------------------------------

// sender dispatches one encoded argument vector to the deployment and
// resolves the raw reply through the topology layer. The concrete sender
// is selected once at store construction based on the configured
// deployment mode, never per call.
type sender interface {
	invoke(args [][]byte, agg common.AggregationMode) (common.Reply, error)
	close() error
}

// newSender selects the sender capability matching the deployment mode.
// A transport that cannot serve the configured mode, or an unrecognized
// mode, is a configuration error.
func newSender(config common.ClientConfig, t transport.ITransport) (sender, error) {
	switch config.Mode {
	case common.DeploymentStandalone:
		e, ok := t.(transport.IExecutor)
		if !ok {
			return nil, common.NewError(common.RetCConfig,
				"transport %T cannot serve a standalone deployment", t)
		}
		return &standaloneSender{transport: e}, nil

	case common.DeploymentCluster:
		e, ok := t.(transport.IClusterExecutor)
		if !ok {
			return nil, common.NewError(common.RetCConfig,
				"transport %T cannot serve a clustered deployment", t)
		}
		return &clusterSender{transport: e}, nil

	default:
		return nil, common.NewError(common.RetCConfig,
			"unsupported deployment mode %q", config.Mode)
	}
}

// standaloneSender talks to a single node; topology resolution is the
// identity function.
type standaloneSender struct {
	transport transport.IExecutor
}

func (s *standaloneSender) invoke(args [][]byte, _ common.AggregationMode) (common.Reply, error) {
	countRequest(args)
	reply, err := s.transport.Send(args)
	if err != nil {
		countFailure(args)
		return nil, common.NewError(common.RetCProtocol, "%s", err)
	}
	return reply, nil
}

func (s *standaloneSender) close() error {
	return s.transport.Close()
}

// clusterSender talks to a sharded deployment and resolves the per-shard
// reply maps before normalization.
type clusterSender struct {
	transport transport.IClusterExecutor
}

func (s *clusterSender) invoke(args [][]byte, agg common.AggregationMode) (common.Reply, error) {
	countRequest(args)

	var replies common.ShardReplies
	var err error
	if agg == common.AggMultiValue {
		replies, err = s.transport.SendAll(args)
	} else {
		replies, err = s.transport.Send(args)
	}
	if err != nil {
		countFailure(args)
		return nil, common.NewError(common.RetCProtocol, "%s", err)
	}

	return resolveShardReplies(replies, agg)
}

func (s *clusterSender) close() error {
	return s.transport.Close()
}

// --------------------------------------------------------------------------
// Metrics
// --------------------------------------------------------------------------

// countRequest increments the per-command request counter.
func countRequest(args [][]byte) {
	if len(args) == 0 {
		return
	}
	metrics.GetOrCreateCounter(
		fmt.Sprintf(`djson_client_requests_total{command=%q}`, string(args[0]))).Inc()
}

// countFailure increments the per-command failure counter.
func countFailure(args [][]byte) {
	if len(args) == 0 {
		return
	}
	metrics.GetOrCreateCounter(
		fmt.Sprintf(`djson_client_failures_total{command=%q}`, string(args[0]))).Inc()
}
