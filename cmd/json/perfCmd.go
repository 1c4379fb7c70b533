package json

import (
	"fmt"
	"time"

	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
)

var perfTestCmd = &cobra.Command{
	Use:   "perf",
	Short: "Runs a write/read latency benchmark against the configured deployment",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		iterations, _ := cmd.Flags().GetInt("iterations")

		setTimer := gometrics.NewTimer()
		getTimer := gometrics.NewTimer()

		document := `{"a": 1, "b": {"c": [1, 2, 3]}, "d": true}`
		start := time.Now()

		for i := 0; i < iterations; i++ {
			key := fmt.Sprintf("perf-%d", i)

			setStart := time.Now()
			if _, err := store.Set(key, ".", document); err != nil {
				return err
			}
			setTimer.UpdateSince(setStart)

			getStart := time.Now()
			if _, _, err := store.Get(key); err != nil {
				return err
			}
			getTimer.UpdateSince(getStart)
		}

		elapsed := time.Since(start)
		printTimer("JSON.SET", setTimer)
		printTimer("JSON.GET", getTimer)
		fmt.Printf("\ntotal: %d ops in %v (%.0f ops/sec)\n",
			2*iterations, elapsed.Round(time.Millisecond),
			float64(2*iterations)/elapsed.Seconds())
		return nil
	},
}

func init() {
	perfTestCmd.Flags().Int("iterations", 10000, "Number of set/get pairs to run")
}

// printTimer prints one command's latency distribution.
func printTimer(name string, t gometrics.Timer) {
	ps := t.Percentiles([]float64{0.5, 0.95, 0.99})
	fmt.Printf("%-12s count=%d mean=%v p50=%v p95=%v p99=%v max=%v\n",
		name, t.Count(),
		time.Duration(int64(t.Mean())),
		time.Duration(int64(ps[0])),
		time.Duration(int64(ps[1])),
		time.Duration(int64(ps[2])),
		time.Duration(t.Max()))
}
