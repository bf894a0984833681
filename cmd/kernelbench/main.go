// Command kernelbench exercises corekernel's kernel families end to end
// against synthetic columns: filter+gather, groupby-sum, inner/left join,
// rolling-min, argsort, and hashing. It follows the same "one subcommand
// per demo" shape as go-highway's ML-demo mains (examples/basic,
// examples/gelu, examples/softmax), applied to a columnar-engine domain.
package main

import (
	"fmt"
	"log"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/vectorframe/corekernel/filters"
	"github.com/vectorframe/corekernel/gather"
	"github.com/vectorframe/corekernel/groupby"
	"github.com/vectorframe/corekernel/hashing"
	"github.com/vectorframe/corekernel/internal/cpuinfo"
	"github.com/vectorframe/corekernel/joins"
	"github.com/vectorframe/corekernel/sorting"
	"github.com/vectorframe/corekernel/window"
)

var rowCount int

func main() {
	root := &cobra.Command{
		Use:   "kernelbench",
		Short: "Exercise corekernel's kernel families against synthetic columns",
	}
	root.PersistentFlags().IntVar(&rowCount, "rows", 16, "number of synthetic rows to generate")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		log.Printf("cpu: detected SIMD level %s (kernels still run the pure-Go unrolled path)", cpuinfo.Detected())
	}

	root.AddCommand(
		filterGatherCmd(),
		groupbySumCmd(),
		joinCmd(),
		rollingMinCmd(),
		argsortCmd(),
		hashCmd(),
		cpuInfoCmd(),
	)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func syntheticColumn(n int) []float64 {
	return lo.Map(lo.Range(n), func(i, _ int) float64 {
		return float64((i*2654435761 + 17) % 997)
	})
}

func filterGatherCmd() *cobra.Command {
	var threshold float64
	cmd := &cobra.Command{
		Use:   "filter-gather",
		Short: "Filter a column by threshold, then gather the surviving rows",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := syntheticColumn(rowCount)
			outIdx := make([]int32, len(data))
			count := filters.FilterGreaterThan(data, threshold, outIdx)
			gathered := make([]float64, count)
			gather.Gather(data, outIdx[:count], gathered)
			fmt.Printf("matched %d/%d rows > %.2f: %v\n", count, len(data), threshold, gathered)
			return nil
		},
	}
	cmd.Flags().Float64Var(&threshold, "threshold", 500, "filter threshold")
	return cmd
}

func groupbySumCmd() *cobra.Command {
	var numGroups int
	cmd := &cobra.Command{
		Use:   "groupby-sum",
		Short: "Group synthetic rows by key and sum a value column",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := make([]int64, rowCount)
			values := syntheticColumn(rowCount)
			for i := range keys {
				keys[i] = int64(i % numGroups)
			}
			result := groupby.SumI64KeyF64Value(keys, values)
			for g, k := range result.Keys {
				fmt.Printf("group %d: sum=%.2f\n", k, result.Sums[g])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&numGroups, "groups", 4, "number of distinct keys")
	return cmd
}

func joinCmd() *cobra.Command {
	var left bool
	cmd := &cobra.Command{
		Use:   "join",
		Short: "Run an inner or left hash join over two synthetic key columns",
		RunE: func(cmd *cobra.Command, args []string) error {
			leftKeys := make([]int64, rowCount)
			rightKeys := make([]int64, rowCount/2+1)
			for i := range leftKeys {
				leftKeys[i] = int64(i % 5)
			}
			for i := range rightKeys {
				rightKeys[i] = int64(i % 3)
			}
			var l, r []int32
			if left {
				l, r = joins.LeftJoinChained(leftKeys, rightKeys)
			} else {
				l, r = joins.InnerJoinChained(leftKeys, rightKeys)
			}
			fmt.Printf("%d matched rows\n", len(l))
			for i := range l {
				fmt.Printf("left[%d]=%d right[%d]=%s\n", l[i], leftKeys[l[i]], r[i], rightValueOrNull(rightKeys, r[i]))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&left, "left", false, "perform a left join instead of inner")
	return cmd
}

func rightValueOrNull(rightKeys []int64, idx int32) string {
	if idx < 0 {
		return "NULL"
	}
	return fmt.Sprintf("%d", rightKeys[idx])
}

func rollingMinCmd() *cobra.Command {
	var windowSize, minPeriods int
	cmd := &cobra.Command{
		Use:   "rolling-min",
		Short: "Compute a rolling minimum over a synthetic column",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := syntheticColumn(rowCount)
			out := make([]float64, len(data))
			window.RollingMinF64(data, windowSize, minPeriods, out)
			fmt.Println(out)
			return nil
		},
	}
	cmd.Flags().IntVar(&windowSize, "window", 3, "rolling window size")
	cmd.Flags().IntVar(&minPeriods, "min-periods", 1, "minimum observations required")
	return cmd
}

func argsortCmd() *cobra.Command {
	var descending bool
	cmd := &cobra.Command{
		Use:   "argsort",
		Short: "Argsort a synthetic int64 column",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := make([]int64, rowCount)
			for i := range data {
				data[i] = int64((i*48271 + 11) % 1000)
			}
			var idx []int32
			if descending {
				idx = sorting.ArgsortDescendingI64(data)
			} else {
				idx = sorting.ArgsortI64(data)
			}
			fmt.Println(idx)
			return nil
		},
	}
	cmd.Flags().BoolVar(&descending, "desc", false, "sort descending")
	return cmd
}

func cpuInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cpuinfo",
		Short: "Print the diagnostic SIMD level the running CPU appears to support",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(cpuinfo.Detected())
			return nil
		},
	}
}

func hashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash",
		Short: "Hash a synthetic int64 column with the fast hash path, in parallel",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := make([]int64, rowCount)
			for i := range data {
				data[i] = int64(i)
			}
			out := make([]uint64, len(data))
			hashing.HashColumnParallel(data, out)
			fmt.Println(out)
			return nil
		},
	}
	return cmd
}
