package memory

import (
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/lni/dragonboat/v4/logger"

	"github.com/docukv/djson/lib/docstore"
	"github.com/docukv/djson/rpc/common"
	"github.com/docukv/djson/rpc/transport"
)

var Logger = logger.GetLogger("transport/memory")

// --------------------------------------------------------------------------
// Standalone Transport
// --------------------------------------------------------------------------

// serverTransport executes argument vectors against one in-process
// document store. It implements transport.IExecutor.
type serverTransport struct {
	store docstore.IDocStore
}

// NewServerTransport creates an in-process standalone deployment.
func NewServerTransport() transport.IExecutor {
	return &serverTransport{store: docstore.NewStore()}
}

func (t *serverTransport) Send(args [][]byte) (common.Reply, error) {
	return execute(t.store, args)
}

func (t *serverTransport) Close() error {
	return nil
}

// --------------------------------------------------------------------------
// Cluster Transport
// --------------------------------------------------------------------------

// clusterTransport partitions keys over several in-process document
// stores. It implements transport.IClusterExecutor: every reply is a map
// of shard id to raw reply, as a real clustered deployment produces.
type clusterTransport struct {
	shards []docstore.IDocStore
}

// NewClusterTransport creates an in-process clustered deployment with the
// given number of shards.
func NewClusterTransport(shards int) transport.IClusterExecutor {
	if shards < 1 {
		shards = 1
	}
	t := &clusterTransport{shards: make([]docstore.IDocStore, shards)}
	for i := range t.shards {
		t.shards[i] = docstore.NewStore()
	}
	Logger.Debugf("created in-process cluster with %d shards", shards)
	return t
}

func (t *clusterTransport) Send(args [][]byte) (common.ShardReplies, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("ERR missing key argument")
	}

	// Single-key commands are owned by exactly one shard.
	shard := int(xxhash.Sum64(args[1]) % uint64(len(t.shards)))
	reply, err := execute(t.shards[shard], args)
	if err != nil {
		return nil, err
	}
	return common.ShardReplies{shardID(shard): reply}, nil
}

func (t *clusterTransport) SendAll(args [][]byte) (common.ShardReplies, error) {
	replies := make(common.ShardReplies, len(t.shards))
	for i, s := range t.shards {
		reply, err := execute(s, args)
		if err != nil {
			return nil, err
		}
		replies[shardID(i)] = reply
	}
	return replies, nil
}

func (t *clusterTransport) Close() error {
	return nil
}

// shardID renders the identifier a shard's replies are keyed by.
func shardID(i int) string {
	return "shard-" + strconv.Itoa(i)
}

// --------------------------------------------------------------------------
// Command Execution
// --------------------------------------------------------------------------

// execute decodes one argument vector and runs it against a store. The
// reply shaping (scalar vs per-match array) mirrors what the production
// server does, since the client's normalization depends on it.
func execute(s docstore.IDocStore, args [][]byte) (common.Reply, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("ERR empty command")
	}
	cmd := string(args[0])

	if cmd == common.CmdStoreInfo {
		return s.Info().Documents, nil
	}

	if len(args) < 2 {
		return nil, fmt.Errorf("ERR wrong number of arguments for '%s' command", cmd)
	}
	key := string(args[1])
	rest := args[2:]

	switch cmd {
	case common.CmdSet:
		return execSet(s, key, rest)

	case common.CmdGet:
		return execGet(s, key, rest)

	case common.CmdArrAppend:
		if len(rest) < 2 {
			return nil, fmt.Errorf("ERR wrong number of arguments for '%s' command", cmd)
		}
		counts, err := s.ArrAppend(key, string(rest[0]), rest[1:]...)
		if err != nil {
			return nil, err
		}
		return countsReply(counts), nil

	case common.CmdArrInsert:
		if len(rest) < 3 {
			return nil, fmt.Errorf("ERR wrong number of arguments for '%s' command", cmd)
		}
		index, err := strconv.Atoi(string(rest[1]))
		if err != nil {
			return nil, fmt.Errorf("ERR index is not an integer")
		}
		counts, err := s.ArrInsert(key, string(rest[0]), index, rest[2:]...)
		if err != nil {
			return nil, err
		}
		return countsReply(counts), nil

	case common.CmdArrLen:
		counts, found, err := s.ArrLen(key, optionalPath(rest))
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		return countsReply(counts), nil

	case common.CmdObjLen:
		counts, found, err := s.ObjLen(key, optionalPath(rest))
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		return countsReply(counts), nil

	case common.CmdObjKeys:
		keys, found, err := s.ObjKeys(key, optionalPath(rest))
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		return keysReply(keys), nil

	case common.CmdDel, common.CmdForget:
		return s.Del(key, optionalPath(rest))

	case common.CmdToggle:
		toggles, found, err := s.Toggle(key, optionalPath(rest))
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		return togglesReply(toggles), nil

	default:
		return nil, fmt.Errorf("ERR unknown command '%s'", cmd)
	}
}

// execSet handles JSON.SET key path value [XX|NX].
func execSet(s docstore.IDocStore, key string, rest [][]byte) (common.Reply, error) {
	if len(rest) < 2 {
		return nil, fmt.Errorf("ERR wrong number of arguments for '%s' command", common.CmdSet)
	}
	cond := docstore.SetAlways
	if len(rest) == 3 {
		switch string(rest[2]) {
		case "XX":
			cond = docstore.SetIfExists
		case "NX":
			cond = docstore.SetIfNotExists
		default:
			return nil, fmt.Errorf("ERR syntax error")
		}
	} else if len(rest) > 3 {
		return nil, fmt.Errorf("ERR syntax error")
	}

	written, err := s.Set(key, string(rest[0]), rest[1], cond)
	if err != nil {
		return nil, err
	}
	if !written {
		// unmet write condition
		return nil, nil
	}
	return "OK", nil
}

// execGet handles JSON.GET key [INDENT i] [NEWLINE n] [SPACE sp] [path...].
func execGet(s docstore.IDocStore, key string, rest [][]byte) (common.Reply, error) {
	format := docstore.DefaultFormat()

	i := 0
options:
	for i < len(rest) {
		var target *string
		switch string(rest[i]) {
		case "INDENT":
			target = &format.Indent
		case "NEWLINE":
			target = &format.Newline
		case "SPACE":
			target = &format.Space
		default:
			break options
		}
		if i+1 >= len(rest) {
			return nil, fmt.Errorf("ERR syntax error")
		}
		*target = string(rest[i+1])
		i += 2
	}

	// remaining tokens are paths
	var paths []string
	for ; i < len(rest); i++ {
		paths = append(paths, string(rest[i]))
	}

	value, found, err := s.Get(key, format, paths...)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return value, nil
}

// --------------------------------------------------------------------------
// Reply Shaping Helpers
// --------------------------------------------------------------------------

// optionalPath returns the single optional path argument, defaulting to
// the document root when the command was sent without a path token.
func optionalPath(rest [][]byte) string {
	if len(rest) > 0 {
		return string(rest[0])
	}
	return "."
}

func countsReply(c docstore.Counts) common.Reply {
	if !c.Multi {
		return c.Single
	}
	reply := make([]common.Reply, len(c.PerMatch))
	for i, n := range c.PerMatch {
		if n != nil {
			reply[i] = *n
		}
	}
	return reply
}

func togglesReply(t docstore.Toggles) common.Reply {
	if !t.Multi {
		return t.Single
	}
	reply := make([]common.Reply, len(t.PerMatch))
	for i, b := range t.PerMatch {
		if b != nil {
			reply[i] = *b
		}
	}
	return reply
}

func keysReply(k docstore.Keys) common.Reply {
	names := func(keys []string) []common.Reply {
		out := make([]common.Reply, len(keys))
		for i, name := range keys {
			out[i] = []byte(name)
		}
		return out
	}

	if !k.Multi {
		return names(k.Single)
	}
	reply := make([]common.Reply, len(k.PerMatch))
	for i, keys := range k.PerMatch {
		if keys != nil {
			reply[i] = names(keys)
		}
	}
	return reply
}
