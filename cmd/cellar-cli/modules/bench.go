package cmd

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cellar-dev/cellar-node/pkg/util/rand"
	"github.com/mr-tron/base58"
	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
)

const (
	benchCountFlag       = "count"
	benchConcurrencyFlag = "concurrency"
	benchSizeFlag        = "size"
)

var (
	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Load benchmarks against a node",
		Long: `Load benchmarks against a node.

Every run stores its objects under a fresh random prefix, so repeated runs
do not interfere with each other. Stored objects are not cleaned up.`,
	}

	benchPutCmd = &cobra.Command{
		Use:   "put",
		Short: "Concurrent writes of distinct keys",
		Long:  "Concurrent writes of distinct keys",
		Run:   benchPut,
	}

	benchGetCmd = &cobra.Command{
		Use:   "get",
		Short: "Concurrent reads of a single shared key",
		Long:  "Concurrent reads of a single shared key",
		Run:   benchGet,
	}

	benchMixedCmd = &cobra.Command{
		Use:   "mixed",
		Short: "Mixed workload of writes, reads and removals",
		Long:  "Mixed workload of writes, reads and removals",
		Run:   benchMixed,
	}
)

func init() {
	benchChildCommands := []*cobra.Command{
		benchPutCmd,
		benchGetCmd,
		benchMixedCmd,
	}

	rootCmd.AddCommand(benchCmd)
	benchCmd.AddCommand(benchChildCommands...)

	for _, benchCommand := range benchChildCommands {
		flags := benchCommand.Flags()

		flags.IntP(benchCountFlag, "n", 100, "Number of operations to run")
		flags.Int(benchConcurrencyFlag, 100, "Number of concurrent workers")
		flags.Int(benchSizeFlag, 10<<10, "Payload size in bytes")
	}
}

type benchResult struct {
	tasks    int
	failures uint64
	elapsed  time.Duration
}

func (r benchResult) print(cmd *cobra.Command) {
	cmd.Printf("Tasks: %d\n", r.tasks)
	cmd.Printf("Failures: %d\n", r.failures)
	cmd.Printf("Total time: %s\n", r.elapsed)
	cmd.Printf("Throughput: %.2f ops/sec\n", float64(r.tasks)/r.elapsed.Seconds())
	cmd.Printf("Avg latency: %.2fms\n", r.elapsed.Seconds()*1000/float64(r.tasks))
}

// runBench feeds count tasks into a worker pool of the requested size
// and waits for all of them to finish.
func runBench(cmd *cobra.Command, count, concurrency int, task func(i int) error) benchResult {
	pool, err := ants.NewPool(concurrency)
	exitOnErr(cmd, errf("can't create worker pool: %w", err))

	defer pool.Release()

	var (
		wg       sync.WaitGroup
		failures atomic.Uint64
	)

	start := time.Now()

	for i := 0; i < count; i++ {
		wg.Add(1)

		err := pool.Submit(func() {
			defer wg.Done()

			if err := task(i); err != nil {
				failures.Add(1)
				printVerbose("task %d: %v", i, err)
			}
		})
		if err != nil {
			wg.Done()
			failures.Add(1)
		}
	}

	wg.Wait()

	return benchResult{
		tasks:    count,
		failures: failures.Load(),
		elapsed:  time.Since(start),
	}
}

// benchPrefix returns a random namespace for a single benchmark run.
func benchPrefix() string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], rand.Uint64())

	return "bench/" + base58.Encode(buf[:])
}

func benchPayload(size int) []byte {
	payload := make([]byte, size)
	for i := range payload {
		payload[i] = 0xAB
	}

	return payload
}

func benchPut(cmd *cobra.Command, _ []string) {
	cli, err := newNodeClient()
	exitOnErr(cmd, err)

	count, _ := cmd.Flags().GetInt(benchCountFlag)
	concurrency, _ := cmd.Flags().GetInt(benchConcurrencyFlag)
	size, _ := cmd.Flags().GetInt(benchSizeFlag)

	prefix := benchPrefix()
	payload := benchPayload(size)

	cmd.Println("=== Concurrent Writes (Different Keys) ===")

	res := runBench(cmd, count, concurrency, func(i int) error {
		return cli.putObject(fmt.Sprintf("%s/object-%d", prefix, i), bytes.NewReader(payload))
	})

	res.print(cmd)
}

func benchGet(cmd *cobra.Command, _ []string) {
	cli, err := newNodeClient()
	exitOnErr(cmd, err)

	count, _ := cmd.Flags().GetInt(benchCountFlag)
	concurrency, _ := cmd.Flags().GetInt(benchConcurrencyFlag)
	size, _ := cmd.Flags().GetInt(benchSizeFlag)

	shared := benchPrefix() + "/shared-object"

	err = cli.putObject(shared, bytes.NewReader(benchPayload(size)))
	exitOnErr(cmd, errf("can't store the shared object: %w", err))

	cmd.Println("=== Concurrent Reads (Same Key) ===")

	res := runBench(cmd, count, concurrency, func(int) error {
		n, err := cli.getObject(shared, io.Discard)
		if err != nil {
			return err
		}

		if n != int64(size) {
			return fmt.Errorf("unexpected payload size %d", n)
		}

		return nil
	})

	res.print(cmd)
}

func benchMixed(cmd *cobra.Command, _ []string) {
	cli, err := newNodeClient()
	exitOnErr(cmd, err)

	count, _ := cmd.Flags().GetInt(benchCountFlag)
	concurrency, _ := cmd.Flags().GetInt(benchConcurrencyFlag)
	size, _ := cmd.Flags().GetInt(benchSizeFlag)

	prefix := benchPrefix()
	payload := benchPayload(size)

	preload := count / 2
	if preload == 0 {
		preload = 1
	}

	for i := 0; i < preload; i++ {
		err = cli.putObject(fmt.Sprintf("%s/existing-%d", prefix, i), bytes.NewReader(payload))
		exitOnErr(cmd, errf("can't pre-populate objects: %w", err))
	}

	cmd.Println("=== Mixed Workload ===")
	cmd.Println("Mix: 50% PUT, 30% GET, 20% DELETE")

	res := runBench(cmd, count, concurrency, func(i int) error {
		switch {
		case i%10 < 5:
			return cli.putObject(fmt.Sprintf("%s/new-%d", prefix, i), bytes.NewReader(payload))
		case i%10 < 8:
			// Reads race with removals of the same keys, a missing
			// object is not a failure here.
			_, _ = cli.getObject(fmt.Sprintf("%s/existing-%d", prefix, i%preload), io.Discard)
			return nil
		default:
			_ = cli.deleteObject(fmt.Sprintf("%s/existing-%d", prefix, i%preload))
			return nil
		}
	})

	res.print(cmd)
}
