// Command hybridvssdemo runs a single HybridVSS sharing round entirely
// in-process, routing every Send/Echo/Ready message between simulated
// participants directly instead of over a network. It exists to exercise
// the vss package end-to-end from a CLI, in the spirit of
// luxfi-threshold's threshold-cli.
package main

import (
	"crypto/rand"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poupas/hybridvss/curve/bls"
	"github.com/poupas/hybridvss/vss"
)

var (
	numParties  int
	threshold   int
	failures    int
	dealerIndex int
	weightsCSV  string
	secretHex   string

	rootCmd = &cobra.Command{
		Use:   "hybridvssdemo",
		Short: "Run a HybridVSS sharing round locally",
	}

	shareCmd = &cobra.Command{
		Use:   "share",
		Short: "Deal a secret and run the protocol to completion among simulated participants",
		RunE:  runShare,
	}
)

func init() {
	shareCmd.Flags().IntVarP(&numParties, "parties", "n", 7, "number of participants")
	shareCmd.Flags().IntVarP(&threshold, "threshold", "t", 2, "reconstruction threshold t")
	shareCmd.Flags().IntVarP(&failures, "failures", "f", 1, "tolerated Byzantine failures f")
	shareCmd.Flags().IntVarP(&dealerIndex, "dealer", "d", 0, "dealer's participant index")
	shareCmd.Flags().StringVarP(&weightsCSV, "weights", "w", "", "comma-separated per-party weights, default all 1")
	shareCmd.Flags().StringVarP(&secretHex, "secret", "s", "", "hex-encoded secret scalar, default random")

	rootCmd.AddCommand(shareCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseWeights(csv string, n int) ([]uint32, error) {
	if csv == "" {
		w := make([]uint32, n)
		for i := range w {
			w[i] = 1
		}
		return w, nil
	}
	parts := strings.Split(csv, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d weights, got %d", n, len(parts))
	}
	w := make([]uint32, n)
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		w[i] = uint32(v)
	}
	return w, nil
}

func runShare(cmd *cobra.Command, args []string) error {
	weights, err := parseWeights(weightsCSV, numParties)
	if err != nil {
		return err
	}
	params, err := vss.NewParams(failures, threshold, weights, dealerIndex)
	if err != nil {
		return fmt.Errorf("building parameters: %w", err)
	}

	contexts := make([]*vss.Context, numParties)
	for i := range contexts {
		ctx, err := vss.NewContext(params, i)
		if err != nil {
			return fmt.Errorf("building participant %d: %w", i, err)
		}
		contexts[i] = ctx
	}

	var secret bls.Scalar
	if secretHex != "" {
		b, err := hexDecode(secretHex)
		if err != nil {
			return fmt.Errorf("decoding secret: %w", err)
		}
		s, ok := bls.ScalarFromCanonicalBytes(b)
		if !ok {
			return fmt.Errorf("secret out of range")
		}
		secret = s
	} else {
		secret, err = bls.RandomScalar(rand.Reader)
		if err != nil {
			return fmt.Errorf("sampling secret: %w", err)
		}
	}

	sends, err := contexts[dealerIndex].Share(rand.Reader, vss.Share{S: secret})
	if err != nil {
		return fmt.Errorf("dealer failed to share: %w", err)
	}

	type echoBatch struct {
		from     int
		messages []vss.Echo
	}

	var pendingEchoes []echoBatch
	for i, send := range sends {
		echoes, ok := contexts[i].HandleSend(send)
		if !ok {
			fmt.Printf("participant %d rejected the dealer's Send\n", i)
			continue
		}
		pendingEchoes = append(pendingEchoes, echoBatch{from: i, messages: echoes})
	}

	type readyBatch struct {
		from     int
		messages []vss.Ready
	}

	var pendingReadies []readyBatch
	for _, batch := range pendingEchoes {
		for j, echo := range batch.messages {
			readies, ok := contexts[j].HandleEcho(batch.from, echo)
			if ok {
				pendingReadies = append(pendingReadies, readyBatch{from: j, messages: readies})
			}
		}
	}

	for len(pendingReadies) > 0 {
		var next []readyBatch
		for _, batch := range pendingReadies {
			for j, ready := range batch.messages {
				relayed, shared := contexts[j].HandleReady(batch.from, ready)
				if shared != nil {
					fmt.Printf("participant %d reached Shared\n", j)
				}
				if relayed != nil {
					next = append(next, readyBatch{from: j, messages: relayed})
				}
			}
		}
		pendingReadies = next
	}

	completed := 0
	for i, ctx := range contexts {
		if _, ok := ctx.FinalShare(); ok {
			completed++
		}
		_ = i
	}
	fmt.Printf("%d/%d participants completed sharing\n", completed, numParties)
	return nil
}

func hexDecode(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		var v byte
		if _, err := fmt.Sscanf(s[2*i:2*i+2], "%02x", &v); err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
